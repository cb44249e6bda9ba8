package domain

import "time"

type UserType string

const (
	UserTypeClient   UserType = "client"
	UserTypeProvider UserType = "provider"
	UserTypeBoth     UserType = "both"
)

// Identity is the resolved user profile confirming that a token is currently
// valid. It exists only while the session is authenticated and is never
// persisted; it is fetched fresh on every bootstrap and login.
type Identity struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	UserType   UserType  `json:"user_type"`
	IsActive   bool      `json:"is_active"`
	DateJoined time.Time `json:"date_joined"`
}

func (i Identity) IsProvider() bool {
	return i.UserType == UserTypeProvider || i.UserType == UserTypeBoth
}

func (i Identity) IsClient() bool {
	return i.UserType == UserTypeClient || i.UserType == UserTypeBoth
}
