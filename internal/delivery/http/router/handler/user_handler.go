package handler

import (
	"log/slog"
	"net/http"

	"voyago/internal/delivery/http/response"
	"voyago/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user profile and administration handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// UpdateProfileRequest represents the request body for profile updates.
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone" validate:"omitempty,e164"`
	FCMToken string `json:"fcm_token"`
}

// GetProfile handles the request to get the current user's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "Profile retrieved successfully")
}

// UpdateProfile handles updating the current user's profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		UserID:   userID,
		Name:     req.Name,
		Phone:    req.Phone,
		FCMToken: req.FCMToken,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "Profile updated successfully")
}

// ListUsers handles the administrative user listing.
func (h *UserHandler) ListUsers(c echo.Context) error {
	offset, limit := pagination(c)

	users, err := h.userUC.ListUsers(c.Request().Context(), offset, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponses(users), "Users retrieved successfully")
}

// GetUser handles the administrative lookup of a single user.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "User retrieved successfully")
}

// DeactivateUser handles disabling a user account.
func (h *UserHandler) DeactivateUser(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.userUC.DeactivateUser(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deactivated"}, "User deactivated successfully")
}

// DeleteUser handles removing a user account.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deleted"}, "User deleted successfully")
}
