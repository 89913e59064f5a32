package usecase

import (
	"context"

	domainErrors "github.com/restomart/restomart/internal/domain/errors"
	"github.com/restomart/restomart/internal/domain/model"
	"github.com/restomart/restomart/internal/domain/repository"
)

// checkDeletable decides whether the whole batch of menu items may be
// deleted. One ineligible item blocks the batch. The status check runs first:
// it is cheaper and its failure is more meaningful to the operator than a
// combo conflict. Callers must run it in the same transaction as the delete;
// GetStatuses locks the rows so the verdict cannot be invalidated before the
// delete commits.
func checkDeletable(ctx context.Context, menu repository.MenuRepository, ids []int64) error {
	statuses, err := menu.GetStatuses(ctx, ids)
	if err != nil {
		return err
	}
	for _, id := range ids {
		status, ok := statuses[id]
		if !ok {
			return domainErrors.ErrNotFound
		}
		if status == model.ItemStatusEnabled {
			return domainErrors.ErrItemOnSale
		}
	}

	assocs, err := menu.ListComboAssociations(ctx, ids)
	if err != nil {
		return err
	}
	if len(assocs) > 0 {
		return domainErrors.ErrItemReferencedByCombo
	}
	return nil
}
