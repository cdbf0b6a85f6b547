package models

import "strings"

// Theme modes
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Session represents the mock-authenticated user record
type Session struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Avatar         string `json:"avatar,omitempty"`
	MembershipType string `json:"membershipType,omitempty"`
}

// DisplayName returns the user's full name
func (s Session) DisplayName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// ProfilePatch carries the editable profile fields; empty fields are left unchanged
// Example: {"firstName": "Ana", "lastName": "Gómez", "email": "ana@example.com"}
type ProfilePatch struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
}

// LoginRequest represents the login form
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the fields collected by the registration wizard
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// SessionResponse represents the current authentication state
type SessionResponse struct {
	Authenticated bool     `json:"authenticated"`
	User          *Session `json:"user"`
	DisplayName   string   `json:"displayName,omitempty"`
}

// ThemeResponse represents the current theme preference
type ThemeResponse struct {
	Mode       string `json:"mode"`
	ThemeColor string `json:"themeColor"` // Value for the theme-color meta tag
}
