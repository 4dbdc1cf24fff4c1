// Package entities contains core business entities.
package entities

// RosterMember is an entry of the static team roster.
type RosterMember struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department *string `json:"department,omitempty"`
}

// ValueTag names one of the organizational values a kudos celebrates.
type ValueTag struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
}
