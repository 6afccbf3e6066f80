package handler

import (
	"log/slog"
	"net/http"

	authmw "voyago/internal/delivery/http/middleware"
	"voyago/internal/delivery/http/response"
	"voyago/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for credential and session handlers.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for account registration.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,e164"`
	Password string `json:"password" validate:"required,min=8"`
}

// VerifyEmailRequest represents the request body for OTP verification.
type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// ResendOTPRequest represents the request body for re-issuing a verification code.
type ResendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// LoginRequest represents the request body for password login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	FCMToken string `json:"fcm_token"`
}

// GoogleSignInRequest represents the request body for Google sign-in.
type GoogleSignInRequest struct {
	IDToken  string `json:"id_token" validate:"required"`
	FCMToken string `json:"fcm_token"`
}

// Register handles account registration and dispatches the verification code.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(output.User), "Registration successful, verification code sent")
}

// VerifyEmail handles the OTP verification step and starts a session.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req VerifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.VerifyEmail(c.Request().Context(), &usecase.VerifyEmailInput{
		Email: req.Email,
		Code:  req.Code,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &AuthResponse{
		Token: output.Token,
		User:  newUserResponse(output.User),
	}, "Email verified successfully")
}

// ResendOTP handles re-issuing the email verification code.
func (h *AuthHandler) ResendOTP(c echo.Context) error {
	var req ResendOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resend input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.authUC.ResendOTP(c.Request().Context(), &usecase.ResendOTPInput{Email: req.Email})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Verification code sent"}, "Verification code sent")
}

// Login handles password login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		FCMToken: req.FCMToken,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &AuthResponse{
		Token: output.Token,
		User:  newUserResponse(output.User),
	}, "Login successful")
}

// GoogleSignIn handles Google ID token sign-in.
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	var req GoogleSignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid Google sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.GoogleSignIn(c.Request().Context(), &usecase.GoogleSignInInput{
		IDToken:  req.IDToken,
		FCMToken: req.FCMToken,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &AuthResponse{
		Token: output.Token,
		User:  newUserResponse(output.User),
	}, "Google sign-in successful")
}

// Logout revokes the current session token.
func (h *AuthHandler) Logout(c echo.Context) error {
	tokenVal := c.Get(authmw.ContextKeyToken)
	token, ok := tokenVal.(string)
	if !ok || token == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing session token")
	}

	err := h.authUC.Logout(c.Request().Context(), &usecase.LogoutInput{Token: token})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}
