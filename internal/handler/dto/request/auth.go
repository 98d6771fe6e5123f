package request

import (
	"rentacar/internal/domain/user"
)

// Field rules (lengths, email shape, password match) live in the domain so
// the binding layer only checks JSON shape here.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (r *LoginRequest) ToDomain() user.Credentials {
	return user.Credentials{
		Identifier: r.Identifier,
		Password:   r.Password,
	}
}

type RegisterRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r *RegisterRequest) ToDomain() user.Registration {
	return user.Registration{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}
