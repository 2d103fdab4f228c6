package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/core/internal/application/services"
	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/ports"
)

// CardHandler handles card-related requests
type CardHandler struct {
	cardService *services.CardService
	logger      *logger.Logger
}

// NewCardHandler creates a new card handler
func NewCardHandler(cardService *services.CardService, logger *logger.Logger) *CardHandler {
	return &CardHandler{
		cardService: cardService,
		logger:      logger,
	}
}

// GetCard handles GET /cards/:id
func (h *CardHandler) GetCard(c echo.Context) error {
	cardID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	card, err := h.cardService.GetCard(c.Request().Context(), cardID, currentUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, card)
}

// UpdateCard handles PUT /cards/:id
func (h *CardHandler) UpdateCard(c echo.Context) error {
	cardID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ports.UpdateCardRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	card, err := h.cardService.UpdateCard(c.Request().Context(), cardID, req, currentUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, card)
}

// DeleteCard handles DELETE /cards/:id
func (h *CardHandler) DeleteCard(c echo.Context) error {
	cardID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.cardService.DeleteCard(c.Request().Context(), cardID, currentUserID(c)); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// MoveCard handles PUT /cards/:id/move
func (h *CardHandler) MoveCard(c echo.Context) error {
	cardID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ports.MoveCardRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	card, err := h.cardService.MoveCard(c.Request().Context(), cardID, req, currentUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, card)
}
