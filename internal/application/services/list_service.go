package services

import (
	"context"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/domain/validation"
	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/ports"
)

// ListService handles list operations within a board.
type ListService struct {
	listRepo ports.ListRepository
	access   *Access
	logger   *logger.Logger
}

// NewListService creates a new list service
func NewListService(listRepo ports.ListRepository, access *Access, logger *logger.Logger) *ListService {
	return &ListService{
		listRepo: listRepo,
		access:   access,
		logger:   logger,
	}
}

// ListLists returns the board's lists ordered by position.
func (s *ListService) ListLists(ctx context.Context, boardID, userID int) ([]*entities.List, error) {
	if _, err := s.access.ResolveBoard(ctx, boardID, userID); err != nil {
		return nil, err
	}

	return s.listRepo.ListByBoard(ctx, boardID)
}

// CreateList validates the name and persists a list in the board. An omitted
// position appends the list after its siblings.
func (s *ListService) CreateList(ctx context.Context, boardID int, req ports.CreateListRequest, userID int) (*entities.List, error) {
	if _, err := s.access.ResolveBoard(ctx, boardID, userID); err != nil {
		return nil, err
	}

	name, err := validation.RequiredName(req.Name, "name", nameMaxLen)
	if err != nil {
		return nil, err
	}

	var position int
	if req.Position != nil {
		if err := validation.Position(*req.Position); err != nil {
			return nil, err
		}
		position = *req.Position
	} else {
		position, err = s.listRepo.NextPosition(ctx, boardID)
		if err != nil {
			return nil, err
		}
	}

	list := &entities.List{
		BoardID:  boardID,
		Name:     name,
		Position: position,
	}

	if err := s.listRepo.Create(ctx, list); err != nil {
		return nil, err
	}

	s.logger.Info("List created", "list_id", list.ID, "board_id", boardID, "user_id", userID)

	return list, nil
}

// GetList returns a list after resolving board ownership through the chain.
func (s *ListService) GetList(ctx context.Context, listID, userID int) (*entities.List, error) {
	return s.access.ResolveList(ctx, listID, userID)
}

// UpdateList applies a partial update after the ownership check.
func (s *ListService) UpdateList(ctx context.Context, listID int, req ports.UpdateListRequest, userID int) (*entities.List, error) {
	list, err := s.access.ResolveList(ctx, listID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name, err := validation.RequiredName(*req.Name, "name", nameMaxLen)
		if err != nil {
			return nil, err
		}
		list.Name = name
	}

	if err := s.listRepo.Update(ctx, list); err != nil {
		return nil, err
	}

	return list, nil
}

// DeleteList removes the list and cascades to its cards.
func (s *ListService) DeleteList(ctx context.Context, listID, userID int) error {
	if _, err := s.access.ResolveList(ctx, listID, userID); err != nil {
		return err
	}

	if err := s.listRepo.Delete(ctx, listID); err != nil {
		return err
	}

	s.logger.Info("List deleted", "list_id", listID, "user_id", userID)

	return nil
}

// RepositionList overwrites the list's position. Siblings are never
// renumbered; duplicate or gapped positions are tolerated and ties resolve
// by the stable secondary order.
func (s *ListService) RepositionList(ctx context.Context, listID int, req ports.RepositionRequest, userID int) (*entities.List, error) {
	list, err := s.access.ResolveList(ctx, listID, userID)
	if err != nil {
		return nil, err
	}

	if req.Position == nil {
		return nil, entities.NewValidationError("position is required", "position", "required")
	}
	if err := validation.Position(*req.Position); err != nil {
		return nil, err
	}

	list.Position = *req.Position

	if err := s.listRepo.Update(ctx, list); err != nil {
		return nil, err
	}

	return list, nil
}
