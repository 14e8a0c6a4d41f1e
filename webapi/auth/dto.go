package auth

// RegisterInput is the request body of POST /api/register.
type RegisterInput struct {
	FullName string `json:"fullName" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
}

// LoginInput is the request body of POST /api/login.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the session token issued at login.
type LoginResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	UserName string `json:"user_name"`
}
