package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/core/internal/application/services"
	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/ports"
)

// ListHandler handles list-related requests
type ListHandler struct {
	listService *services.ListService
	cardService *services.CardService
	logger      *logger.Logger
}

// NewListHandler creates a new list handler
func NewListHandler(listService *services.ListService, cardService *services.CardService, logger *logger.Logger) *ListHandler {
	return &ListHandler{
		listService: listService,
		cardService: cardService,
		logger:      logger,
	}
}

// GetList handles GET /lists/:id
func (h *ListHandler) GetList(c echo.Context) error {
	listID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	list, err := h.listService.GetList(c.Request().Context(), listID, currentUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

// UpdateList handles PUT /lists/:id
func (h *ListHandler) UpdateList(c echo.Context) error {
	listID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ports.UpdateListRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	list, err := h.listService.UpdateList(c.Request().Context(), listID, req, currentUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

// DeleteList handles DELETE /lists/:id
func (h *ListHandler) DeleteList(c echo.Context) error {
	listID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.listService.DeleteList(c.Request().Context(), listID, currentUserID(c)); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// RepositionList handles PUT /lists/:id/position
func (h *ListHandler) RepositionList(c echo.Context) error {
	listID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ports.RepositionRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	list, err := h.listService.RepositionList(c.Request().Context(), listID, req, currentUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

// ListCards handles GET /lists/:id/cards
func (h *ListHandler) ListCards(c echo.Context) error {
	listID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	cards, err := h.cardService.ListCards(c.Request().Context(), listID, currentUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cards)
}

// CreateCard handles POST /lists/:id/cards
func (h *ListHandler) CreateCard(c echo.Context) error {
	listID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ports.CreateCardRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	card, err := h.cardService.CreateCard(c.Request().Context(), listID, req, currentUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, card)
}
