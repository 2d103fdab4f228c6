package ports

import (
	"encoding/json"
)

// RegisterRequest carries a new account registration.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest carries credentials. Identifier matches username or email.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// CreateBoardRequest carries a new board. Name is validated and trimmed by
// the service.
type CreateBoardRequest struct {
	Name string `json:"name"`
}

// UpdateBoardRequest is a partial board update; nil fields are left untouched.
type UpdateBoardRequest struct {
	Name *string `json:"name"`
}

// CreateListRequest carries a new list. Position defaults to the end of the
// board when omitted.
type CreateListRequest struct {
	Name     string `json:"name"`
	Position *int   `json:"position"`
}

// UpdateListRequest is a partial list update.
type UpdateListRequest struct {
	Name *string `json:"name"`
}

// RepositionRequest overwrites a list's position. The pointer distinguishes a
// missing field from an explicit zero.
type RepositionRequest struct {
	Position *int `json:"position"`
}

// CreateCardRequest carries a new card. Position defaults to the end of the
// list when omitted. Description, due date and tags are optional; an explicit
// null is treated the same as an absent key.
type CreateCardRequest struct {
	Title       string          `json:"title"`
	Description json.RawMessage `json:"description"`
	DueDate     json.RawMessage `json:"due_date"`
	Tags        json.RawMessage `json:"tags"`
	Position    *int            `json:"position"`
}

// UpdateCardRequest is a partial card update. Description, DueDate and Tags
// use raw JSON so that an absent key, an explicit null (clear the field) and
// a value are three distinguishable states.
type UpdateCardRequest struct {
	Title       *string         `json:"title"`
	Description json.RawMessage `json:"description"`
	DueDate     json.RawMessage `json:"due_date"`
	Tags        json.RawMessage `json:"tags"`
}

// MoveCardRequest reassigns a card to a target list at a given position.
// Pointers distinguish missing fields from explicit zeros.
type MoveCardRequest struct {
	ListID   *int `json:"list_id"`
	Position *int `json:"position"`
}
