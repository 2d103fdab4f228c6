package services

import (
	"context"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/ports"
)

// Access walks the card -> list -> board -> user ownership chain. At every
// hop existence is checked before ownership, so a missing ancestor reports
// NotFound naming the broken link while a wrong owner reports Forbidden.
type Access struct {
	boardRepo ports.BoardRepository
	listRepo  ports.ListRepository
	cardRepo  ports.CardRepository
}

// NewAccess creates an ownership resolver over the three repositories.
func NewAccess(boardRepo ports.BoardRepository, listRepo ports.ListRepository, cardRepo ports.CardRepository) *Access {
	return &Access{
		boardRepo: boardRepo,
		listRepo:  listRepo,
		cardRepo:  cardRepo,
	}
}

// ResolveBoard returns the board if it exists and belongs to userID.
func (a *Access) ResolveBoard(ctx context.Context, boardID, userID int) (*entities.Board, error) {
	board, err := a.boardRepo.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}

	if !board.OwnedBy(userID) {
		return nil, &entities.ForbiddenError{}
	}

	return board, nil
}

// ResolveList returns the list if it exists and its board belongs to userID.
func (a *Access) ResolveList(ctx context.Context, listID, userID int) (*entities.List, error) {
	list, err := a.listRepo.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}

	if _, err := a.ResolveBoard(ctx, list.BoardID, userID); err != nil {
		return nil, err
	}

	return list, nil
}

// ResolveCard returns the card if it exists and the board reached through its
// list belongs to userID. A dangling list or board reference surfaces as
// NotFound for that resource.
func (a *Access) ResolveCard(ctx context.Context, cardID, userID int) (*entities.Card, error) {
	card, err := a.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}

	list, err := a.listRepo.GetByID(ctx, card.ListID)
	if err != nil {
		return nil, err
	}

	if _, err := a.ResolveBoard(ctx, list.BoardID, userID); err != nil {
		return nil, err
	}

	return card, nil
}
