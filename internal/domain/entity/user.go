// Package entity contains the core business objects of the project.
package entity

import "time"

// LinkToken is a short lived, single use secret issued by the web profile
// flow so a chat user can prove ownership of a marketplace account.
type LinkToken struct {
	Token     string
	ExpiresAt time.Time
}

// IsExpired reports whether the token can no longer be redeemed at now.
func (t *LinkToken) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

// ChatIdentity is the chat platform identity bound to a marketplace user.
type ChatIdentity struct {
	ChatUserID   string  `json:"chat_user_id"`
	ChatUsername *string `json:"chat_username,omitempty"`
}

// User is the read shape of a marketplace account.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	ChatIdentity *ChatIdentity `json:"chat_identity,omitempty"`
	LinkToken    *LinkToken    `json:"-"`

	// NotificationsEnabled is nil when the user never toggled the preference.
	NotificationsEnabled *bool    `json:"notifications_enabled,omitempty"`
	WeeklyDigest         bool     `json:"weekly_digest"`
	Favorites            []string `json:"favorites,omitempty"`
}

// IsLinked reports whether the user has a chat identity.
func (u *User) IsLinked() bool {
	return u.ChatIdentity != nil && u.ChatIdentity.ChatUserID != ""
}

// WantsNotifications treats an unset preference as enabled.
func (u *User) WantsNotifications() bool {
	return u.NotificationsEnabled == nil || *u.NotificationsEnabled
}

// DisplayName falls back to the email when the account has no name.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}

	return u.Email
}
