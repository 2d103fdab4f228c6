package services

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/domain/validation"
	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/ports"
)

// CardService handles card operations. Ownership is always verified inside
// the service, two hops up the chain, before any read or mutation.
type CardService struct {
	cardRepo ports.CardRepository
	listRepo ports.ListRepository
	access   *Access
	logger   *logger.Logger
}

// NewCardService creates a new card service
func NewCardService(cardRepo ports.CardRepository, listRepo ports.ListRepository, access *Access, logger *logger.Logger) *CardService {
	return &CardService{
		cardRepo: cardRepo,
		listRepo: listRepo,
		access:   access,
		logger:   logger,
	}
}

// ListCards returns the list's cards ordered by position.
func (s *CardService) ListCards(ctx context.Context, listID, userID int) ([]*entities.Card, error) {
	if _, err := s.access.ResolveList(ctx, listID, userID); err != nil {
		return nil, err
	}

	return s.cardRepo.ListByList(ctx, listID)
}

// CreateCard validates the title and persists a card in the list. An omitted
// position appends the card after its siblings.
func (s *CardService) CreateCard(ctx context.Context, listID int, req ports.CreateCardRequest, userID int) (*entities.Card, error) {
	if _, err := s.access.ResolveList(ctx, listID, userID); err != nil {
		return nil, err
	}

	title, err := validation.RequiredName(req.Title, "title", nameMaxLen)
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
		position, err = s.cardRepo.NextPosition(ctx, listID)
		if err != nil {
			return nil, err
		}
	}

	card := &entities.Card{
		ListID:   listID,
		Title:    title,
		Tags:     entities.Tags{},
		Position: position,
	}

	if req.Description != nil && !isJSONNull(req.Description) {
		desc, err := parseDescription(req.Description)
		if err != nil {
			return nil, err
		}
		card.Description = desc
	}

	if req.DueDate != nil && !isJSONNull(req.DueDate) {
		due, err := parseDueDate(req.DueDate)
		if err != nil {
			return nil, err
		}
		card.DueDate = due
	}

	if req.Tags != nil && !isJSONNull(req.Tags) {
		tags, err := parseTags(req.Tags)
		if err != nil {
			return nil, err
		}
		card.Tags = tags
	}

	if err := s.cardRepo.Create(ctx, card); err != nil {
		return nil, err
	}

	s.logger.Info("Card created", "card_id", card.ID, "list_id", listID, "user_id", userID)

	return card, nil
}

// GetCard returns a card after walking the full ownership chain.
func (s *CardService) GetCard(ctx context.Context, cardID, userID int) (*entities.Card, error) {
	return s.access.ResolveCard(ctx, cardID, userID)
}

// UpdateCard applies a partial update. For description, due date and tags an
// absent key leaves the field untouched while an explicit null clears it.
func (s *CardService) UpdateCard(ctx context.Context, cardID int, req ports.UpdateCardRequest, userID int) (*entities.Card, error) {
	card, err := s.access.ResolveCard(ctx, cardID, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title, err := validation.RequiredName(*req.Title, "title", nameMaxLen)
		if err != nil {
			return nil, err
		}
		card.Title = title
	}

	if req.Description != nil {
		if isJSONNull(req.Description) {
			card.Description = nil
		} else {
			desc, err := parseDescription(req.Description)
			if err != nil {
				return nil, err
			}
			card.Description = desc
		}
	}

	if req.DueDate != nil {
		if isJSONNull(req.DueDate) {
			card.DueDate = nil
		} else {
			due, err := parseDueDate(req.DueDate)
			if err != nil {
				return nil, err
			}
			card.DueDate = due
		}
	}

	if req.Tags != nil {
		if isJSONNull(req.Tags) {
			card.Tags = entities.Tags{}
		} else {
			tags, err := parseTags(req.Tags)
			if err != nil {
				return nil, err
			}
			card.Tags = tags
		}
	}

	if err := s.cardRepo.Update(ctx, card); err != nil {
		return nil, err
	}

	return card, nil
}

// DeleteCard removes the card after the ownership check.
func (s *CardService) DeleteCard(ctx context.Context, cardID, userID int) error {
	if _, err := s.access.ResolveCard(ctx, cardID, userID); err != nil {
		return err
	}

	if err := s.cardRepo.Delete(ctx, cardID); err != nil {
		return err
	}

	s.logger.Info("Card deleted", "card_id", cardID, "user_id", userID)

	return nil
}

// MoveCard reassigns the card to the target list at the given position in one
// atomic update. Both the source chain and the target list's board must
// belong to the caller, which blocks moving a card into another user's list.
// Remaining positions in the source list are not compacted.
func (s *CardService) MoveCard(ctx context.Context, cardID int, req ports.MoveCardRequest, userID int) (*entities.Card, error) {
	card, err := s.access.ResolveCard(ctx, cardID, userID)
	if err != nil {
		return nil, err
	}

	if req.ListID == nil {
		return nil, entities.NewValidationError("list_id is required", "list_id", "required")
	}
	if req.Position == nil {
		return nil, entities.NewValidationError("position is required", "position", "required")
	}
	if *req.ListID < 0 {
		return nil, entities.NewValidationError("list_id must be a non-negative integer", "list_id", "non_negative")
	}
	if err := validation.Position(*req.Position); err != nil {
		return nil, err
	}

	targetList, err := s.listRepo.GetByID(ctx, *req.ListID)
	if err != nil {
		return nil, err
	}

	if _, err := s.access.ResolveBoard(ctx, targetList.BoardID, userID); err != nil {
		return nil, err
	}

	card.ListID = targetList.ID
	card.Position = *req.Position

	if err := s.cardRepo.Update(ctx, card); err != nil {
		return nil, err
	}

	s.logger.Info("Card moved", "card_id", card.ID, "list_id", card.ListID, "position", card.Position, "user_id", userID)

	return card, nil
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func parseDescription(raw json.RawMessage) (*string, error) {
	var desc string
	if err := json.Unmarshal(raw, &desc); err != nil {
		return nil, entities.NewValidationError("description must be a string", "description", "type")
	}
	return &desc, nil
}

func parseDueDate(raw json.RawMessage) (*entities.Date, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, entities.NewValidationError("due_date must be a YYYY-MM-DD date", "due_date", "date_format")
	}
	due, err := validation.DueDate(s)
	if err != nil {
		return nil, err
	}
	return &due, nil
}

func parseTags(raw json.RawMessage) (entities.Tags, error) {
	var elems []interface{}
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, entities.NewValidationError("tags must be an array of strings", "tags", "type")
	}
	return validation.TagList(elems)
}
