package response

import (
	"log/slog"

	"rentacar/internal/domain/user"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

func FromUser(u user.User) UserResponse {
	var resp UserResponse
	if err := copier.Copy(&resp, &u); err != nil {
		slog.Warn("failed to map user response", "error", err)
	}
	return resp
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
