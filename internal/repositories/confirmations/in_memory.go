package confirmations

import (
	"context"
	"sync"

	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
)

type inMemoryRepository struct {
	mu            sync.Mutex
	confirmations map[string]*entities.PendingConfirmation
	byGame        map[string]string // gameID -> confirmation ID
}

// NewInMemoryRepository creates a new in-memory confirmation repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		confirmations: make(map[string]*entities.PendingConfirmation),
		byGame:        make(map[string]string),
	}
}

func (r *inMemoryRepository) Create(_ context.Context, confirmation *entities.PendingConfirmation) error {
	if err := validateCreate(confirmation); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.confirmations[confirmation.ID]; exists {
		return spyerr.Conflict("confirmation id already in use").WithMeta("confirmation_id", confirmation.ID)
	}

	stored := *confirmation
	r.confirmations[stored.ID] = &stored
	r.byGame[stored.GameID] = stored.ID
	return nil
}

func (r *inMemoryRepository) Get(_ context.Context, id string) (*entities.PendingConfirmation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	confirmation, ok := r.confirmations[id]
	if !ok {
		return nil, spyerr.NoPendingConfirmation(id)
	}
	found := *confirmation
	return &found, nil
}

func (r *inMemoryRepository) Take(_ context.Context, id string) (*entities.PendingConfirmation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.take(id)
}

func (r *inMemoryRepository) TakeByGame(_ context.Context, gameID string) (*entities.PendingConfirmation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byGame[gameID]
	if !ok {
		return nil, noneForGame(gameID)
	}
	confirmation, err := r.take(id)
	if err != nil {
		return nil, noneForGame(gameID)
	}
	return confirmation, nil
}

// take must be called with mu held
func (r *inMemoryRepository) take(id string) (*entities.PendingConfirmation, error) {
	confirmation, ok := r.confirmations[id]
	if !ok {
		return nil, spyerr.NoPendingConfirmation(id)
	}
	delete(r.confirmations, id)
	if r.byGame[confirmation.GameID] == id {
		delete(r.byGame, confirmation.GameID)
	}
	return confirmation, nil
}
