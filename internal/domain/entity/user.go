// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record of the system.
// A user is authenticatable by password (PasswordHash set), by Google
// Sign-In (GoogleID set), or by both, never by neither.
type User struct {
	ID           uuid.UUID  // The unique identifier for the user.
	Email        string     // Primary login identifier, stored lowercased.
	Name         string     // Display name.
	Phone        string     // Contact phone number in E.164 form.
	PasswordHash string     // bcrypt hash; empty for OAuth-only accounts.
	GoogleID     string     // Google 'sub' claim; empty for password-only accounts.
	Role         Role       // Access role: user, admin or moderator.
	IsVerified   bool       // True once the email address has been proven via OTP.
	IsActive     bool       // False when the account has been soft-disabled by an admin.
	OTPHash      string     // Currently outstanding email verification code, if any.
	OTPExpiresAt *time.Time // Expiry of the outstanding code; nil when no challenge is live.
	FCMToken     string     // Latest push notification token, rotated at login.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasCredential reports whether the user has at least one way to authenticate.
func (u *User) HasCredential() bool {
	return u.PasswordHash != "" || u.GoogleID != ""
}

// HasLiveChallenge reports whether an unexpired verification code is outstanding.
func (u *User) HasLiveChallenge(now time.Time) bool {
	return u.OTPHash != "" && u.OTPExpiresAt != nil && now.Before(*u.OTPExpiresAt)
}

// ClearChallenge removes the outstanding verification code.
// A consumed or expired code must never validate again.
func (u *User) ClearChallenge() {
	u.OTPHash = ""
	u.OTPExpiresAt = nil
}
