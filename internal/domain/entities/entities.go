package entities

import (
	"time"
)

// User represents a registered account. The password hash never leaves the
// server; it is excluded from JSON serialization.
type User struct {
	ID           int       `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Board is the top-level workspace owned by a single user. UserID is nullable
// only for legacy rows; boards created through the API always get an owner.
type Board struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	UserID    *int      `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// OwnedBy reports whether the board belongs to the given user.
func (b *Board) OwnedBy(userID int) bool {
	return b.UserID != nil && *b.UserID == userID
}

// List is an ordered column within a board. Position establishes sort order
// among sibling lists; ties are legal and resolve by id.
type List struct {
	ID        int       `json:"id" db:"id"`
	BoardID   int       `json:"board_id" db:"board_id"`
	Name      string    `json:"name" db:"name"`
	Position  int       `json:"position" db:"position"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Card is a task unit within a list.
type Card struct {
	ID          int       `json:"id" db:"id"`
	ListID      int       `json:"list_id" db:"list_id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	DueDate     *Date     `json:"due_date" db:"due_date"`
	Tags        Tags      `json:"tags" db:"tags"`
	Position    int       `json:"position" db:"position"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
