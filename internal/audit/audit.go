package audit

import "time"

// Intent declares the purpose of a mutating persistence call and decides
// which audit fields get populated before the write goes out.
type Intent int

const (
	IntentCreate Intent = iota
	IntentModify
)

// Fields carries creation and modification metadata. Entities embed it to
// become Auditable; the embedded pointer method satisfies the interface
// without any runtime field lookup.
type Fields struct {
	CreatedAt time.Time
	CreatedBy int64
	UpdatedAt time.Time
	UpdatedBy int64
}

// Audit exposes the embedded fields for stamping.
func (f *Fields) Audit() *Fields {
	return f
}

// Auditable is implemented by every entity that carries audit metadata.
type Auditable interface {
	Audit() *Fields
}

// Stamp computes the audit fields for a write with the given intent. It is a
// pure function; merging into the record happens in the interceptor.
func Stamp(intent Intent, actor int64, now time.Time) Fields {
	stamped := Fields{UpdatedAt: now, UpdatedBy: actor}
	if intent == IntentCreate {
		stamped.CreatedAt = now
		stamped.CreatedBy = actor
	}
	return stamped
}

// merge applies stamped values onto existing fields. Created* survive every
// MODIFY untouched.
func merge(dst *Fields, intent Intent, stamped Fields) {
	if intent == IntentCreate {
		dst.CreatedAt = stamped.CreatedAt
		dst.CreatedBy = stamped.CreatedBy
	}
	dst.UpdatedAt = stamped.UpdatedAt
	dst.UpdatedBy = stamped.UpdatedBy
}
