package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/database"
	"github.com/taskboard/core/internal/ports"
)

// CardRepositoryImpl implements the CardRepository interface
type CardRepositoryImpl struct {
	db *database.DB
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *database.DB) ports.CardRepository {
	return &CardRepositoryImpl{db: db}
}

func (r *CardRepositoryImpl) Create(ctx context.Context, card *entities.Card) error {
	query := `
		INSERT INTO cards (list_id, title, description, due_date, tags, position)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		card.ListID, card.Title, card.Description, card.DueDate, card.Tags, card.Position,
	).Scan(&card.ID, &card.CreatedAt, &card.UpdatedAt)

	if err != nil {
		return &entities.DatabaseError{Op: "create card", Err: err}
	}

	return nil
}

func (r *CardRepositoryImpl) GetByID(ctx context.Context, id int) (*entities.Card, error) {
	query := `
		SELECT id, list_id, title, description, due_date, tags, position, created_at, updated_at
		FROM cards
		WHERE id = $1`

	var card entities.Card
	err := r.db.GetContext(ctx, &card, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &entities.NotFoundError{Resource: "card", ID: id}
		}
		return nil, &entities.DatabaseError{Op: "get card by id", Err: err}
	}

	return &card, nil
}

func (r *CardRepositoryImpl) ListByList(ctx context.Context, listID int) ([]*entities.Card, error) {
	// Secondary order by id keeps position ties stable.
	query := `
		SELECT id, list_id, title, description, due_date, tags, position, created_at, updated_at
		FROM cards
		WHERE list_id = $1
		ORDER BY position, id`

	cards := []*entities.Card{}
	err := r.db.SelectContext(ctx, &cards, query, listID)
	if err != nil {
		return nil, &entities.DatabaseError{Op: "list cards", Err: err}
	}

	return cards, nil
}

// Update persists every mutable card attribute, including the list reference
// so that moves are a single atomic statement.
func (r *CardRepositoryImpl) Update(ctx context.Context, card *entities.Card) error {
	query := `
		UPDATE cards
		SET list_id = $2, title = $3, description = $4, due_date = $5, tags = $6,
			position = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		card.ID, card.ListID, card.Title, card.Description, card.DueDate, card.Tags, card.Position,
	).Scan(&card.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &entities.NotFoundError{Resource: "card", ID: card.ID}
		}
		return &entities.DatabaseError{Op: "update card", Err: err}
	}

	return nil
}

func (r *CardRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return &entities.DatabaseError{Op: "delete card", Err: err}
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return &entities.DatabaseError{Op: "delete card", Err: err}
	}
	if rowsAffected == 0 {
		return &entities.NotFoundError{Resource: "card", ID: id}
	}

	return nil
}

func (r *CardRepositoryImpl) NextPosition(ctx context.Context, listID int) (int, error) {
	query := `SELECT COALESCE(MAX(position) + 1, 0) FROM cards WHERE list_id = $1`

	var position int
	err := r.db.GetContext(ctx, &position, query, listID)
	if err != nil {
		return 0, &entities.DatabaseError{Op: "next card position", Err: err}
	}

	return position, nil
}
