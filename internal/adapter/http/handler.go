// Package http provides the HTTP handler layer for the chat API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/flight-chat/flight-search-chatbot/internal/adapter/http/response"
	"github.com/flight-chat/flight-search-chatbot/internal/domain"
	"github.com/flight-chat/flight-search-chatbot/internal/usecase"
)

// ChatHandler handles HTTP requests for the conversation endpoints.
type ChatHandler struct {
	engine usecase.Engine
	offers usecase.OffersUseCase
}

// NewChatHandler creates a new ChatHandler with the given use cases.
func NewChatHandler(engine usecase.Engine, offers usecase.OffersUseCase) *ChatHandler {
	return &ChatHandler{
		engine: engine,
		offers: offers,
	}
}

// PostMessage handles POST /api/v1/chat/messages
//
// @Summary Send a chat message
// @Description Processes one conversation turn and returns the bot's effects
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatMessageRequest true "Message payload"
// @Success 200 {object} ChatMessageResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 500 {object} response.ErrorDetail "Internal error"
// @Router /chat/messages [post]
func (h *ChatHandler) PostMessage(c echo.Context) error {
	var req ChatMessageRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	// A missing session ID starts a new conversation.
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	effects, err := h.engine.HandleTurn(c.Request().Context(), sessionID, req.ToTurnInput())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.ChatEffects(c, &ChatMessageResponse{
		SessionID: sessionID,
		Effects:   ToEffectDTOs(effects),
	})
}

// SearchOffers handles POST /api/v1/chat/offers
//
// @Summary Search flight offers
// @Description Runs a flight-offers search for a completed questionnaire
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatOffersRequest true "Offers payload"
// @Success 200 {object} OffersResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 409 {object} response.ErrorDetail "Questionnaire not completed"
// @Failure 503 {object} response.ErrorDetail "Offers provider unavailable"
// @Router /chat/offers [post]
func (h *ChatHandler) SearchOffers(c echo.Context) error {
	var req ChatOffersRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.offers.Search(c.Request().Context(), req.SessionID)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OffersResults(c, ToOffersResponse(req.SessionID, result))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ChatHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *ChatHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrIncompleteSearch) {
		return response.IncompleteSearch(c)
	}

	if errors.Is(err, domain.ErrOffersFailed) {
		return response.OffersUnavailable(c)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// Default to internal server error
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *ChatHandler) Health(c echo.Context) error {
	return response.Health(c)
}
