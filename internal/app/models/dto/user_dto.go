package dto

// UpdateUserRequest is the admin-panel profile update payload.
type UpdateUserRequest struct {
	FullName string `json:"nombreCompleto"`
	Email    string `json:"email"`
	DNI      string `json:"dni"`
	Role     string `json:"rol"`
	Course   string `json:"curso"`
	Status   string `json:"estadoCuenta"`
}

// ChangeOwnPasswordRequest is the self-service password change
// payload; the current password is verified before the overwrite.
type ChangeOwnPasswordRequest struct {
	CurrentPassword string `json:"passwordActual"`
	NewPassword     string `json:"passwordNueva"`
}

// SetPasswordRequest is the unconditional admin password overwrite
// payload.
type SetPasswordRequest struct {
	Password string `json:"password"`
}
