package response

import "webhooknest/internal/usecase/queries"

type AuthResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    *queries.UserView `json:"user"`
}
