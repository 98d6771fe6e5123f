package user

import "net/mail"

const minPasswordLen = 8

// Credentials is the login form. Identifier accepts a username or an email
// address; the auth providers decide which.
type Credentials struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Validate returns a field-to-message map; empty means the form is acceptable.
func (c Credentials) Validate() map[string]string {
	errs := map[string]string{}
	if c.Identifier == "" {
		errs["identifier"] = "Username or email is required"
	}
	if len(c.Password) < minPasswordLen {
		errs["password"] = "Password must be at least 8 characters"
	}
	return errs
}

// Registration is the account-creation form.
type Registration struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r Registration) Validate() map[string]string {
	errs := map[string]string{}
	if len(r.FirstName) < 2 {
		errs["firstName"] = "First name must be at least 2 characters"
	}
	if len(r.LastName) < 2 {
		errs["lastName"] = "Last name must be at least 2 characters"
	}
	if r.Email == "" {
		errs["email"] = "Email is required"
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		errs["email"] = "Please enter a valid email"
	}
	if len(r.Password) < minPasswordLen {
		errs["password"] = "Password must be at least 8 characters"
	}
	if len(r.ConfirmPassword) < minPasswordLen {
		errs["confirmPassword"] = "Please confirm your password"
	} else if r.Password != r.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}
	return errs
}
