package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/core/internal/application/services"
	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/ports"
)

// BoardHandler handles board-related requests
type BoardHandler struct {
	boardService *services.BoardService
	listService  *services.ListService
	logger       *logger.Logger
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(boardService *services.BoardService, listService *services.ListService, logger *logger.Logger) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
		listService:  listService,
		logger:       logger,
	}
}

// ListBoards handles GET /boards
func (h *BoardHandler) ListBoards(c echo.Context) error {
	boards, err := h.boardService.ListBoards(c.Request().Context(), currentUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, boards)
}

// CreateBoard handles POST /boards
func (h *BoardHandler) CreateBoard(c echo.Context) error {
	var req ports.CreateBoardRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	board, err := h.boardService.CreateBoard(c.Request().Context(), req, currentUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, board)
}

// GetBoard handles GET /boards/:id
func (h *BoardHandler) GetBoard(c echo.Context) error {
	boardID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	board, err := h.boardService.GetBoard(c.Request().Context(), boardID, currentUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, board)
}

// UpdateBoard handles PUT /boards/:id
func (h *BoardHandler) UpdateBoard(c echo.Context) error {
	boardID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ports.UpdateBoardRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	board, err := h.boardService.UpdateBoard(c.Request().Context(), boardID, req, currentUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, board)
}

// DeleteBoard handles DELETE /boards/:id
func (h *BoardHandler) DeleteBoard(c echo.Context) error {
	boardID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.boardService.DeleteBoard(c.Request().Context(), boardID, currentUserID(c)); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ListBoardLists handles GET /boards/:id/lists
func (h *BoardHandler) ListBoardLists(c echo.Context) error {
	boardID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	lists, err := h.listService.ListLists(c.Request().Context(), boardID, currentUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, lists)
}

// CreateBoardList handles POST /boards/:id/lists
func (h *BoardHandler) CreateBoardList(c echo.Context) error {
	boardID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ports.CreateListRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}

	list, err := h.listService.CreateList(c.Request().Context(), boardID, req, currentUserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, list)
}
