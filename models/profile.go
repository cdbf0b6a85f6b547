package models

// Membership describes the visitor's zoo membership card
type Membership struct {
	Type       string   `json:"type"`
	Number     string   `json:"number"`
	ValidUntil string   `json:"validUntil"` // e.g. "December 31, 2025"
	Benefits   []string `json:"benefits"`
}

// ProfileResponse represents the profile page of a signed-in visitor
type ProfileResponse struct {
	User        Session    `json:"user"`
	DisplayName string     `json:"displayName"`
	Membership  Membership `json:"membership"`
	Favorites   []Animal   `json:"favorites"`
}
