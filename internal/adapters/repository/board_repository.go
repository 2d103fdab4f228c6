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

// BoardRepositoryImpl implements the BoardRepository interface
type BoardRepositoryImpl struct {
	db *database.DB
}

// NewBoardRepository creates a new board repository
func NewBoardRepository(db *database.DB) ports.BoardRepository {
	return &BoardRepositoryImpl{db: db}
}

func (r *BoardRepositoryImpl) Create(ctx context.Context, board *entities.Board) error {
	query := `
		INSERT INTO boards (name, user_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		board.Name, board.UserID,
	).Scan(&board.ID, &board.CreatedAt, &board.UpdatedAt)

	if err != nil {
		return &entities.DatabaseError{Op: "create board", Err: err}
	}

	return nil
}

func (r *BoardRepositoryImpl) GetByID(ctx context.Context, id int) (*entities.Board, error) {
	query := `
		SELECT id, name, user_id, created_at, updated_at
		FROM boards
		WHERE id = $1`

	var board entities.Board
	err := r.db.GetContext(ctx, &board, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &entities.NotFoundError{Resource: "board", ID: id}
		}
		return nil, &entities.DatabaseError{Op: "get board by id", Err: err}
	}

	return &board, nil
}

func (r *BoardRepositoryImpl) ListByOwner(ctx context.Context, userID int) ([]*entities.Board, error) {
	query := `
		SELECT id, name, user_id, created_at, updated_at
		FROM boards
		WHERE user_id = $1
		ORDER BY created_at DESC`

	boards := []*entities.Board{}
	err := r.db.SelectContext(ctx, &boards, query, userID)
	if err != nil {
		return nil, &entities.DatabaseError{Op: "list boards", Err: err}
	}

	return boards, nil
}

func (r *BoardRepositoryImpl) Update(ctx context.Context, board *entities.Board) error {
	query := `
		UPDATE boards
		SET name = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query, board.ID, board.Name).Scan(&board.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &entities.NotFoundError{Resource: "board", ID: board.ID}
		}
		return &entities.DatabaseError{Op: "update board", Err: err}
	}

	return nil
}

// Delete removes the board together with its lists and all cards in those
// lists. The deletes run ordered inside one transaction so a failure leaves
// the hierarchy intact.
func (r *BoardRepositoryImpl) Delete(ctx context.Context, id int) error {
	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM cards WHERE list_id IN (SELECT id FROM lists WHERE board_id = $1)`, id); err != nil {
			return &entities.DatabaseError{Op: "delete board cards", Err: err}
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM lists WHERE board_id = $1`, id); err != nil {
			return &entities.DatabaseError{Op: "delete board lists", Err: err}
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM boards WHERE id = $1`, id)
		if err != nil {
			return &entities.DatabaseError{Op: "delete board", Err: err}
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return &entities.DatabaseError{Op: "delete board", Err: err}
		}
		if rowsAffected == 0 {
			return &entities.NotFoundError{Resource: "board", ID: id}
		}

		return nil
	})

	return err
}
