package handler

import (
	"log/slog"
	"net/http"

	"voyago/internal/delivery/http/response"
	"voyago/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContentHandlerParams holds dependencies for ContentHandler, injected by Fx.
type ContentHandlerParams struct {
	fx.In

	ContentUC usecase.ContentUsecase
	Logger    *slog.Logger
}

// ContentHandler holds dependencies for informational content handlers.
type ContentHandler struct {
	contentUC usecase.ContentUsecase
	logger    *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler.
func NewContentHandler(params ContentHandlerParams) *ContentHandler {
	return &ContentHandler{
		contentUC: params.ContentUC,
		logger:    params.Logger,
	}
}

// FAQRequest represents the request body for creating or updating an FAQ entry.
type FAQRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// PrivacyPolicyRequest represents the request body for replacing the privacy policy.
type PrivacyPolicyRequest struct {
	Content string `json:"content" validate:"required"`
}

// ListFAQs handles the public FAQ listing.
func (h *ContentHandler) ListFAQs(c echo.Context) error {
	faqs, err := h.contentUC.ListFAQs(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newFAQResponses(faqs), "FAQs retrieved successfully")
}

// CreateFAQ handles creating an FAQ entry.
func (h *ContentHandler) CreateFAQ(c echo.Context) error {
	var req FAQRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid FAQ input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	faq, err := h.contentUC.CreateFAQ(c.Request().Context(), &usecase.CreateFAQInput{
		Question: req.Question,
		Answer:   req.Answer,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newFAQResponse(faq), "FAQ created successfully")
}

// UpdateFAQ handles updating an FAQ entry.
func (h *ContentHandler) UpdateFAQ(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req FAQRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid FAQ input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	faq, err := h.contentUC.UpdateFAQ(c.Request().Context(), &usecase.UpdateFAQInput{
		ID:       id,
		Question: req.Question,
		Answer:   req.Answer,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newFAQResponse(faq), "FAQ updated successfully")
}

// DeleteFAQ handles removing an FAQ entry.
func (h *ContentHandler) DeleteFAQ(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.contentUC.DeleteFAQ(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "FAQ deleted"}, "FAQ deleted successfully")
}

// GetPrivacyPolicy handles retrieving the privacy policy.
func (h *ContentHandler) GetPrivacyPolicy(c echo.Context) error {
	policy, err := h.contentUC.GetPrivacyPolicy(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPrivacyPolicyResponse(policy), "Privacy policy retrieved successfully")
}

// UpdatePrivacyPolicy handles replacing the privacy policy content.
func (h *ContentHandler) UpdatePrivacyPolicy(c echo.Context) error {
	var req PrivacyPolicyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid privacy policy input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	policy, err := h.contentUC.UpdatePrivacyPolicy(c.Request().Context(), req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPrivacyPolicyResponse(policy), "Privacy policy updated successfully")
}
