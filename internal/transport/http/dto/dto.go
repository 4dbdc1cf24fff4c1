// Package dto holds the JSON request and response bodies of the HTTP API.
package dto

import "time"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// User is the public view of an account.
type User struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Image        *string `json:"image"`
	TeamMemberID *string `json:"teamMemberId"`
	IsAdmin      bool    `json:"isAdmin"`
}

// TeamMember is a roster entry.
type TeamMember struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department *string `json:"department,omitempty"`
}

// AddressableUser is one entry of the recipient picker.
type AddressableUser struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Image        *string `json:"image,omitempty"`
	TeamMemberID *string `json:"teamMemberId,omitempty"`
	Department   *string `json:"department,omitempty"`
}

// UsersResponse is returned by GET /users.
type UsersResponse struct {
	Users []AddressableUser `json:"users"`
}

// Value is a value tag of the catalog.
type Value struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
}

// ValuesResponse is returned by GET /values.
type ValuesResponse struct {
	Values []Value `json:"values"`
}

// CreateKudosRequest is the body of POST /kudos.
type CreateKudosRequest struct {
	RecipientIDs []string `json:"recipientIds"`
	ValueID      string   `json:"valueId"`
	Message      string   `json:"message"`
}

// Recipient links a kudos to one recipient.
type Recipient struct {
	KudosID   string    `json:"kudosId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	User      User      `json:"user"`
}

// Kudos is one recorded recognition.
type Kudos struct {
	ID         string      `json:"id"`
	Value      string      `json:"value"`
	Message    string      `json:"message"`
	SenderID   string      `json:"senderId"`
	CreatedAt  time.Time   `json:"createdAt"`
	EmailSent  bool        `json:"emailSent"`
	Sender     User        `json:"sender"`
	Recipients []Recipient `json:"recipients"`
}

// CreateKudosResponse is returned by POST /kudos.
type CreateKudosResponse struct {
	Kudos      Kudos    `json:"kudos"`
	Unresolved []string `json:"unresolved,omitempty"`
}

// KudosListResponse is returned by GET /kudos/list.
type KudosListResponse struct {
	Kudos []Kudos `json:"kudos"`
	Total int64   `json:"total"`
}

// UserCount is a leaderboard row.
type UserCount struct {
	User  User  `json:"user"`
	Count int64 `json:"count"`
}

// ValueCount is a value leaderboard row.
type ValueCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// UserStats summarises account linkage.
type UserStats struct {
	TotalUsers    int64 `json:"totalUsers"`
	LinkedUsers   int64 `json:"linkedUsers"`
	UnlinkedUsers int64 `json:"unlinkedUsers"`
}

// StatsResponse is returned by GET /admin/stats.
type StatsResponse struct {
	MostReceived       []UserCount  `json:"mostReceived"`
	MostGiven          []UserCount  `json:"mostGiven"`
	MostValues         []ValueCount `json:"mostValues"`
	TotalKudosThisWeek int64        `json:"totalKudosThisWeek"`
	TotalKudosOverall  int64        `json:"totalKudosOverall"`
	Weeks              int          `json:"weeks"`
	UserStats          UserStats    `json:"userStats"`
}

// SyncUserResponse is returned by POST /admin/sync-user.
type SyncUserResponse struct {
	User                 User        `json:"user"`
	IsLinkedToTeamMember bool        `json:"isLinkedToTeamMember"`
	TeamMember           *TeamMember `json:"teamMember"`
}
