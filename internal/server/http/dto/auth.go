package dto

// AuthRequest describes login/password payload.
type AuthRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// StaffRequest describes an admin-created staff account.
type StaffRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// StaffUpdateRequest describes a staff profile change.
type StaffUpdateRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StaffResponse describes a staff account as returned to admins.
type StaffResponse struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Name  string `json:"name"`
}
