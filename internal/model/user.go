// Package model defines domain entities for the application.
package model

import "time"

// DefaultAvatarURL is shown for users that never uploaded an avatar.
const DefaultAvatarURL = "https://openclipart.org/download/238968/user.svg"

// User is a registered player as reported by the backend.
// The landing site only displays users, it never mutates them.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatarURL,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Avatar returns the user's avatar URL, falling back to DefaultAvatarURL.
func (u User) Avatar() string {
	if u.AvatarURL == "" {
		return DefaultAvatarURL
	}
	return u.AvatarURL
}
