package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/database"
	"github.com/taskboard/core/internal/ports"
)

// ListRepositoryImpl implements the ListRepository interface
type ListRepositoryImpl struct {
	db *database.DB
}

// NewListRepository creates a new list repository
func NewListRepository(db *database.DB) ports.ListRepository {
	return &ListRepositoryImpl{db: db}
}

func (r *ListRepositoryImpl) Create(ctx context.Context, list *entities.List) error {
	query := `
		INSERT INTO lists (board_id, name, position)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		list.BoardID, list.Name, list.Position,
	).Scan(&list.ID, &list.CreatedAt, &list.UpdatedAt)

	if err != nil {
		return &entities.DatabaseError{Op: "create list", Err: err}
	}

	return nil
}

func (r *ListRepositoryImpl) GetByID(ctx context.Context, id int) (*entities.List, error) {
	query := `
		SELECT id, board_id, name, position, created_at, updated_at
		FROM lists
		WHERE id = $1`

	var list entities.List
	err := r.db.GetContext(ctx, &list, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &entities.NotFoundError{Resource: "list", ID: id}
		}
		return nil, &entities.DatabaseError{Op: "get list by id", Err: err}
	}

	return &list, nil
}

func (r *ListRepositoryImpl) ListByBoard(ctx context.Context, boardID int) ([]*entities.List, error) {
	// Secondary order by id keeps position ties stable.
	query := `
		SELECT id, board_id, name, position, created_at, updated_at
		FROM lists
		WHERE board_id = $1
		ORDER BY position, id`

	lists := []*entities.List{}
	err := r.db.SelectContext(ctx, &lists, query, boardID)
	if err != nil {
		return nil, &entities.DatabaseError{Op: "list lists", Err: err}
	}

	return lists, nil
}

func (r *ListRepositoryImpl) Update(ctx context.Context, list *entities.List) error {
	query := `
		UPDATE lists
		SET name = $2, position = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query, list.ID, list.Name, list.Position).Scan(&list.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &entities.NotFoundError{Resource: "list", ID: list.ID}
		}
		return &entities.DatabaseError{Op: "update list", Err: err}
	}

	return nil
}

// Delete removes the list and its cards in one transaction.
func (r *ListRepositoryImpl) Delete(ctx context.Context, id int) error {
	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM cards WHERE list_id = $1`, id); err != nil {
			return &entities.DatabaseError{Op: "delete list cards", Err: err}
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM lists WHERE id = $1`, id)
		if err != nil {
			return &entities.DatabaseError{Op: "delete list", Err: err}
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return &entities.DatabaseError{Op: "delete list", Err: err}
		}
		if rowsAffected == 0 {
			return &entities.NotFoundError{Resource: "list", ID: id}
		}

		return nil
	})

	return err
}

func (r *ListRepositoryImpl) NextPosition(ctx context.Context, boardID int) (int, error) {
	query := `SELECT COALESCE(MAX(position) + 1, 0) FROM lists WHERE board_id = $1`

	var position int
	err := r.db.GetContext(ctx, &position, query, boardID)
	if err != nil {
		return 0, &entities.DatabaseError{Op: "next list position", Err: err}
	}

	return position, nil
}
