package api

// Common request/response structures

// SignUpRequest defines the payload for the user sign-up endpoint.
type SignUpRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	// Token is the signed JWT presented as a bearer credential on
	// protected routes. It expires after the configured token lifetime.
	Token string `json:"token"`
}

// RecoverPasswordRequest defines the payload for the password recovery
// endpoint. The temporary password is delivered to this address.
type RecoverPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RecoverPasswordResponse confirms that a temporary password was dispatched.
type RecoverPasswordResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ResetPasswordRequest defines the payload for the authenticated-by-password
// reset endpoint. CurrentPassword is re-verified through the same path as
// login before the new password is stored.
type ResetPasswordRequest struct {
	Email           string `json:"email"           validate:"required,email"`
	CurrentPassword string `json:"currentPassword" validate:"required,min=1"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8,max=72"`
}

// TaskRequest defines the payload for the task create and update endpoints.
type TaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// CreateTaskResponse carries the store-assigned ID of a new task.
type CreateTaskResponse struct {
	ID int64 `json:"id"`
}
