package dto

import (
	"time"

	"github.com/spec-kit/medequip-service/internal/domain"
)

// UserRegisterRequest payload for new users.
type UserRegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate checks required fields and resolves the requested role.
func (r UserRegisterRequest) Validate() (domain.Role, error) {
	errs := fieldErrors{}
	errs.required("username", r.Username)
	errs.email("email", r.Email)
	errs.required("password", r.Password)
	role, err := domain.ParseRole(r.Role)
	if err != nil {
		errs["role"] = "must be admin or user"
	}
	return role, errs.err()
}

// UserLoginRequest payload for login.
type UserLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks required fields.
func (r UserLoginRequest) Validate() error {
	errs := fieldErrors{}
	errs.required("username", r.Username)
	errs.required("password", r.Password)
	return errs.err()
}

// UserResponse is the public view of an account. It never includes the password hash.
type UserResponse struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewUserResponse builds the public view of user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// LoginResponse is returned by the login endpoint.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}
