//go:build unit || e2e

package builder

import (
	"webhooknest/internal/handler/dto/request"
	"webhooknest/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	Password string
	APIKey   string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "test@example.com",
		Password: "password123",
		APIKey:   "key_ci2jw4tn05bau",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildReadModel() *queries.UserView {
	return &queries.UserView{
		ID:     u.ID,
		Email:  u.Email,
		APIKey: u.APIKey,
	}
}

func (u *UserBuilder) BuildRegisterDTO() request.RegisterRequest {
	return request.RegisterRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildLoginDTO() request.LoginRequest {
	return request.LoginRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}
