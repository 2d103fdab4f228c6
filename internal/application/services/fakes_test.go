package services

import (
	"context"
	"sort"
	"time"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/logger"
)

// memStore is a shared in-memory backing store so the fake repositories can
// cascade deletes across entity types the way the SQL layer does.
type memStore struct {
	users  map[int]*entities.User
	boards map[int]*entities.Board
	lists  map[int]*entities.List
	cards  map[int]*entities.Card
	nextID int
}

func newMemStore() *memStore {
	return &memStore{
		users:  make(map[int]*entities.User),
		boards: make(map[int]*entities.Board),
		lists:  make(map[int]*entities.List),
		cards:  make(map[int]*entities.Card),
		nextID: 1,
	}
}

func (s *memStore) id() int {
	id := s.nextID
	s.nextID++
	return id
}

type fakeUserRepo struct{ store *memStore }

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	user.ID = r.store.id()
	user.CreatedAt = time.Now()
	copied := *user
	r.store.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int) (*entities.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, &entities.NotFoundError{Resource: "user", ID: id}
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, user := range r.store.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, &entities.NotFoundError{Resource: "user"}
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.store.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, &entities.NotFoundError{Resource: "user"}
}

func (r *fakeUserRepo) GetByIdentifier(_ context.Context, identifier string) (*entities.User, error) {
	for _, user := range r.store.users {
		if user.Username == identifier || user.Email == identifier {
			copied := *user
			return &copied, nil
		}
	}
	return nil, &entities.NotFoundError{Resource: "user"}
}

type fakeBoardRepo struct{ store *memStore }

func (r *fakeBoardRepo) Create(_ context.Context, board *entities.Board) error {
	board.ID = r.store.id()
	board.CreatedAt = time.Now()
	board.UpdatedAt = board.CreatedAt
	copied := *board
	r.store.boards[board.ID] = &copied
	return nil
}

func (r *fakeBoardRepo) GetByID(_ context.Context, id int) (*entities.Board, error) {
	board, ok := r.store.boards[id]
	if !ok {
		return nil, &entities.NotFoundError{Resource: "board", ID: id}
	}
	copied := *board
	return &copied, nil
}

func (r *fakeBoardRepo) ListByOwner(_ context.Context, userID int) ([]*entities.Board, error) {
	var boards []*entities.Board
	for _, board := range r.store.boards {
		if board.OwnedBy(userID) {
			copied := *board
			boards = append(boards, &copied)
		}
	}
	sort.Slice(boards, func(i, j int) bool { return boards[i].ID > boards[j].ID })
	return boards, nil
}

func (r *fakeBoardRepo) Update(_ context.Context, board *entities.Board) error {
	if _, ok := r.store.boards[board.ID]; !ok {
		return &entities.NotFoundError{Resource: "board", ID: board.ID}
	}
	board.UpdatedAt = time.Now()
	copied := *board
	r.store.boards[board.ID] = &copied
	return nil
}

func (r *fakeBoardRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.store.boards[id]; !ok {
		return &entities.NotFoundError{Resource: "board", ID: id}
	}
	for listID, list := range r.store.lists {
		if list.BoardID != id {
			continue
		}
		for cardID, card := range r.store.cards {
			if card.ListID == listID {
				delete(r.store.cards, cardID)
			}
		}
		delete(r.store.lists, listID)
	}
	delete(r.store.boards, id)
	return nil
}

type fakeListRepo struct{ store *memStore }

func (r *fakeListRepo) Create(_ context.Context, list *entities.List) error {
	list.ID = r.store.id()
	list.CreatedAt = time.Now()
	list.UpdatedAt = list.CreatedAt
	copied := *list
	r.store.lists[list.ID] = &copied
	return nil
}

func (r *fakeListRepo) GetByID(_ context.Context, id int) (*entities.List, error) {
	list, ok := r.store.lists[id]
	if !ok {
		return nil, &entities.NotFoundError{Resource: "list", ID: id}
	}
	copied := *list
	return &copied, nil
}

func (r *fakeListRepo) ListByBoard(_ context.Context, boardID int) ([]*entities.List, error) {
	var lists []*entities.List
	for _, list := range r.store.lists {
		if list.BoardID == boardID {
			copied := *list
			lists = append(lists, &copied)
		}
	}
	sort.Slice(lists, func(i, j int) bool {
		if lists[i].Position != lists[j].Position {
			return lists[i].Position < lists[j].Position
		}
		return lists[i].ID < lists[j].ID
	})
	return lists, nil
}

func (r *fakeListRepo) Update(_ context.Context, list *entities.List) error {
	if _, ok := r.store.lists[list.ID]; !ok {
		return &entities.NotFoundError{Resource: "list", ID: list.ID}
	}
	list.UpdatedAt = time.Now()
	copied := *list
	r.store.lists[list.ID] = &copied
	return nil
}

func (r *fakeListRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.store.lists[id]; !ok {
		return &entities.NotFoundError{Resource: "list", ID: id}
	}
	for cardID, card := range r.store.cards {
		if card.ListID == id {
			delete(r.store.cards, cardID)
		}
	}
	delete(r.store.lists, id)
	return nil
}

func (r *fakeListRepo) NextPosition(_ context.Context, boardID int) (int, error) {
	next := 0
	for _, list := range r.store.lists {
		if list.BoardID == boardID && list.Position+1 > next {
			next = list.Position + 1
		}
	}
	return next, nil
}

type fakeCardRepo struct{ store *memStore }

func (r *fakeCardRepo) Create(_ context.Context, card *entities.Card) error {
	card.ID = r.store.id()
	card.CreatedAt = time.Now()
	card.UpdatedAt = card.CreatedAt
	copied := *card
	r.store.cards[card.ID] = &copied
	return nil
}

func (r *fakeCardRepo) GetByID(_ context.Context, id int) (*entities.Card, error) {
	card, ok := r.store.cards[id]
	if !ok {
		return nil, &entities.NotFoundError{Resource: "card", ID: id}
	}
	copied := *card
	return &copied, nil
}

func (r *fakeCardRepo) ListByList(_ context.Context, listID int) ([]*entities.Card, error) {
	var cards []*entities.Card
	for _, card := range r.store.cards {
		if card.ListID == listID {
			copied := *card
			cards = append(cards, &copied)
		}
	}
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Position != cards[j].Position {
			return cards[i].Position < cards[j].Position
		}
		return cards[i].ID < cards[j].ID
	})
	return cards, nil
}

func (r *fakeCardRepo) Update(_ context.Context, card *entities.Card) error {
	if _, ok := r.store.cards[card.ID]; !ok {
		return &entities.NotFoundError{Resource: "card", ID: card.ID}
	}
	card.UpdatedAt = time.Now()
	copied := *card
	r.store.cards[card.ID] = &copied
	return nil
}

func (r *fakeCardRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.store.cards[id]; !ok {
		return &entities.NotFoundError{Resource: "card", ID: id}
	}
	delete(r.store.cards, id)
	return nil
}

func (r *fakeCardRepo) NextPosition(_ context.Context, listID int) (int, error) {
	next := 0
	for _, card := range r.store.cards {
		if card.ListID == listID && card.Position+1 > next {
			next = card.Position + 1
		}
	}
	return next, nil
}

// env bundles a full service graph over a shared in-memory store.
type env struct {
	store *memStore

	userRepo  *fakeUserRepo
	boardRepo *fakeBoardRepo
	listRepo  *fakeListRepo
	cardRepo  *fakeCardRepo

	auth   *AuthService
	boards *BoardService
	lists  *ListService
	cards  *CardService
}

func newEnv() *env {
	store := newMemStore()
	userRepo := &fakeUserRepo{store: store}
	boardRepo := &fakeBoardRepo{store: store}
	listRepo := &fakeListRepo{store: store}
	cardRepo := &fakeCardRepo{store: store}

	log := logger.NewNop()
	tokens := newTestTokenManager()
	access := NewAccess(boardRepo, listRepo, cardRepo)

	return &env{
		store:     store,
		userRepo:  userRepo,
		boardRepo: boardRepo,
		listRepo:  listRepo,
		cardRepo:  cardRepo,
		auth:      NewAuthService(userRepo, tokens, log),
		boards:    NewBoardService(boardRepo, access, log),
		lists:     NewListService(listRepo, access, log),
		cards:     NewCardService(cardRepo, listRepo, access, log),
	}
}

func (e *env) seedUser(id int) int {
	user := &entities.User{
		ID:           id,
		Username:     "user" + string(rune('a'+id)),
		Email:        "user" + string(rune('a'+id)) + "@example.com",
		PasswordHash: "x",
	}
	e.store.users[id] = user
	if id >= e.store.nextID {
		e.store.nextID = id + 1
	}
	return id
}

func (e *env) seedBoard(userID int) *entities.Board {
	owner := userID
	board := &entities.Board{Name: "Board", UserID: &owner}
	_ = e.boardRepo.Create(context.Background(), board)
	return board
}

func (e *env) seedList(boardID, position int) *entities.List {
	list := &entities.List{BoardID: boardID, Name: "List", Position: position}
	_ = e.listRepo.Create(context.Background(), list)
	return list
}

func (e *env) seedCard(listID, position int) *entities.Card {
	card := &entities.Card{ListID: listID, Title: "Card", Tags: entities.Tags{}, Position: position}
	_ = e.cardRepo.Create(context.Background(), card)
	return card
}
