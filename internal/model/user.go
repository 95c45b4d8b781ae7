package model

// User is an account on the prayer-request service. Read-only from the
// client's perspective except for the admin toggle.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"nome_completo"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// DisplayName prefers the full name, falling back to the username.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// Profile carries the fields sent when registering a new account.
// Registration never establishes a session; a login must follow.
type Profile struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	FullName string `json:"nome_completo"`
}
