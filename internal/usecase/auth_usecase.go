// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"voyago/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// VerifyEmailInput defines the data required to verify an email challenge.
type VerifyEmailInput struct {
	Email string
	Code  string
}

// ResendOTPInput defines the data required to re-issue a verification code.
type ResendOTPInput struct {
	Email string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
	FCMToken string
}

// LogoutInput defines the data required to end a session.
type LogoutInput struct {
	Token string
}

// GoogleSignInInput defines the data required for Google sign-in.
type GoogleSignInInput struct {
	IDToken  string
	FCMToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
// The verification code itself travels by email, never through the API.
type RegisterOutput struct {
	User *entity.User
}

// AuthOutput returns the session token after successful authentication.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the interface for credential and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	VerifyEmail(ctx context.Context, input *VerifyEmailInput) (*AuthOutput, error)
	ResendOTP(ctx context.Context, input *ResendOTPInput) error
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	GoogleSignIn(ctx context.Context, input *GoogleSignInInput) (*AuthOutput, error)
}
