package ports

import (
	"context"

	"github.com/taskboard/core/internal/domain/entities"
)

// UserRepository persists accounts. Lookups return entities.NotFoundError
// with resource "user" when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id int) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	// GetByIdentifier matches either username or email.
	GetByIdentifier(ctx context.Context, identifier string) (*entities.User, error)
}

// BoardRepository persists boards. Delete removes the board together with its
// lists and cards in a single transaction.
type BoardRepository interface {
	Create(ctx context.Context, board *entities.Board) error
	GetByID(ctx context.Context, id int) (*entities.Board, error)
	ListByOwner(ctx context.Context, userID int) ([]*entities.Board, error)
	Update(ctx context.Context, board *entities.Board) error
	Delete(ctx context.Context, id int) error
}

// ListRepository persists lists. Delete removes the list's cards in the same
// transaction. NextPosition yields max(sibling position)+1, or 0 when the
// board has no lists yet.
type ListRepository interface {
	Create(ctx context.Context, list *entities.List) error
	GetByID(ctx context.Context, id int) (*entities.List, error)
	ListByBoard(ctx context.Context, boardID int) ([]*entities.List, error)
	Update(ctx context.Context, list *entities.List) error
	Delete(ctx context.Context, id int) error
	NextPosition(ctx context.Context, boardID int) (int, error)
}

// CardRepository persists cards. NextPosition is scoped to a list.
type CardRepository interface {
	Create(ctx context.Context, card *entities.Card) error
	GetByID(ctx context.Context, id int) (*entities.Card, error)
	ListByList(ctx context.Context, listID int) ([]*entities.Card, error)
	Update(ctx context.Context, card *entities.Card) error
	Delete(ctx context.Context, id int) error
	NextPosition(ctx context.Context, listID int) (int, error)
}
