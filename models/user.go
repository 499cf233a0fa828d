package models

import "time"

// AuthUser is only used in local auth mode, where the service keeps its own
// credential records instead of delegating to Firebase Auth. It is persisted
// to the document store and never returned over HTTP.
type AuthUser struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

type UserProfile struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}
