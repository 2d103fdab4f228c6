package services

import (
	"context"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/domain/validation"
	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/ports"
)

const nameMaxLen = 255

// BoardService handles board operations. Every single-resource operation is
// gated by the ownership resolver.
type BoardService struct {
	boardRepo ports.BoardRepository
	access    *Access
	logger    *logger.Logger
}

// NewBoardService creates a new board service
func NewBoardService(boardRepo ports.BoardRepository, access *Access, logger *logger.Logger) *BoardService {
	return &BoardService{
		boardRepo: boardRepo,
		access:    access,
		logger:    logger,
	}
}

// ListBoards returns the caller's boards, newest first.
func (s *BoardService) ListBoards(ctx context.Context, userID int) ([]*entities.Board, error) {
	return s.boardRepo.ListByOwner(ctx, userID)
}

// CreateBoard validates the name and persists a board owned by userID.
func (s *BoardService) CreateBoard(ctx context.Context, req ports.CreateBoardRequest, userID int) (*entities.Board, error) {
	name, err := validation.RequiredName(req.Name, "name", nameMaxLen)
	if err != nil {
		return nil, err
	}

	owner := userID
	board := &entities.Board{
		Name:   name,
		UserID: &owner,
	}

	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, err
	}

	s.logger.Info("Board created", "board_id", board.ID, "user_id", userID)

	return board, nil
}

// GetBoard returns a board after the ownership check.
func (s *BoardService) GetBoard(ctx context.Context, boardID, userID int) (*entities.Board, error) {
	return s.access.ResolveBoard(ctx, boardID, userID)
}

// UpdateBoard applies a partial update after the ownership check.
func (s *BoardService) UpdateBoard(ctx context.Context, boardID int, req ports.UpdateBoardRequest, userID int) (*entities.Board, error) {
	board, err := s.access.ResolveBoard(ctx, boardID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name, err := validation.RequiredName(*req.Name, "name", nameMaxLen)
		if err != nil {
			return nil, err
		}
		board.Name = name
	}

	if err := s.boardRepo.Update(ctx, board); err != nil {
		return nil, err
	}

	return board, nil
}

// DeleteBoard removes the board and cascades to its lists and cards.
func (s *BoardService) DeleteBoard(ctx context.Context, boardID, userID int) error {
	if _, err := s.access.ResolveBoard(ctx, boardID, userID); err != nil {
		return err
	}

	if err := s.boardRepo.Delete(ctx, boardID); err != nil {
		return err
	}

	s.logger.Info("Board deleted", "board_id", boardID, "user_id", userID)

	return nil
}
