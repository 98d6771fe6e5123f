package user

import "strings"

// User is the identity record handed back by the external auth providers.
// IDs are opaque strings; DummyJSON issues numbers, the mock CRUD API issues
// string ids, and nothing downstream should care which.
type User struct {
	ID       string
	Name     string
	Username string
	Email    string
	Phone    string
}

// FirstName returns the leading word of the full name.
func (u User) FirstName() string {
	first, _ := SplitName(u.Name)
	return first
}

// LastName returns everything after the first word of the full name.
func (u User) LastName() string {
	_, last := SplitName(u.Name)
	return last
}

// SplitName splits a display name into first/rest, matching how the booking
// form seeds its personal-info fields.
func SplitName(full string) (first, last string) {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

// FullName joins the provider's first/last fields, falling back to the
// username when both are absent.
func FullName(firstName, lastName, username string) string {
	parts := make([]string, 0, 2)
	if firstName != "" {
		parts = append(parts, firstName)
	}
	if lastName != "" {
		parts = append(parts, lastName)
	}
	if len(parts) == 0 {
		return username
	}
	return strings.Join(parts, " ")
}
