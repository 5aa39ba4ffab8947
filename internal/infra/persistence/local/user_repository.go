// Package local contains the in-memory authoritative collection stores.
//
// Each repository exclusively owns its collection slice, guards every
// read-modify-write with a per-collection mutex, and writes through to the
// record store after each successful mutation. Write-through failure is
// logged, never surfaced: the in-memory copy stays the source of truth until
// the next successful save.
package local

import (
	"context"
	"log/slog"
	"sync"

	"outreach/internal/domain/entity"
	"outreach/internal/domain/repository"
	"outreach/internal/infra/persistence/blobstore"
)

type userRepository struct {
	mu       sync.Mutex
	accounts []entity.UserAccount
	store    *blobstore.RecordStore
	logger   *slog.Logger
}

// NewUserRepository loads the users slot and returns the authoritative
// in-memory store for user accounts.
func NewUserRepository(ctx context.Context, store *blobstore.RecordStore, logger *slog.Logger) repository.UserRepository {
	repo := &userRepository{
		store:  store,
		logger: logger,
	}
	repo.accounts = blobstore.LoadSlice[entity.UserAccount](ctx, store, blobstore.SlotUsers)
	logger.Info("users collection loaded", slog.Int("count", len(repo.accounts)))

	return repo
}

func (r *userRepository) All(ctx context.Context) []entity.UserAccount {
	r.mu.Lock()
	defer r.mu.Unlock()

	return cloneUsers(r.accounts)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.UserAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.accounts {
		if r.accounts[i].ID == id {
			account := r.accounts[i].Clone()

			return &account, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *userRepository) FindByRole(ctx context.Context, role entity.Role) []entity.UserAccount {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []entity.UserAccount
	for i := range r.accounts {
		if r.accounts[i].Role == role {
			matched = append(matched, r.accounts[i].Clone())
		}
	}

	return matched
}

func (r *userRepository) FindByFacility(ctx context.Context, facilityID string) []entity.UserAccount {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []entity.UserAccount
	for i := range r.accounts {
		if r.accounts[i].FacilityID == facilityID {
			matched = append(matched, r.accounts[i].Clone())
		}
	}

	return matched
}

func (r *userRepository) Add(ctx context.Context, account entity.UserAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.accounts {
		if r.accounts[i].ID == account.ID {
			return repository.ErrDuplicateUser
		}
	}

	r.accounts = append(r.accounts, account.Clone())
	r.writeThrough(ctx)

	return nil
}

func (r *userRepository) Update(ctx context.Context, account entity.UserAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.accounts {
		if r.accounts[i].ID == account.ID {
			r.accounts[i] = account.Clone()
			r.writeThrough(ctx)

			return nil
		}
	}

	return repository.ErrUserNotFound
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.accounts {
		if r.accounts[i].ID == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			r.writeThrough(ctx)

			return nil
		}
	}

	return repository.ErrUserNotFound
}

// Merge reconciles a remote snapshot by identifier, remote-wins. Existing
// accounts keep their position; remote-only accounts append in snapshot order.
func (r *userRepository) Merge(ctx context.Context, snapshot []entity.UserAccount) {
	r.mu.Lock()
	defer r.mu.Unlock()

	index := make(map[string]int, len(r.accounts))
	for i := range r.accounts {
		index[r.accounts[i].ID] = i
	}

	for _, remote := range snapshot {
		if i, ok := index[remote.ID]; ok {
			r.accounts[i] = remote.Clone()
		} else {
			index[remote.ID] = len(r.accounts)
			r.accounts = append(r.accounts, remote.Clone())
		}
	}

	r.writeThrough(ctx)
}

func (r *userRepository) Reload(ctx context.Context) {
	loaded := blobstore.LoadSlice[entity.UserAccount](ctx, r.store, blobstore.SlotUsers)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts = loaded
	r.logger.Info("users collection reloaded from local store", slog.Int("count", len(loaded)))
}

func (r *userRepository) writeThrough(ctx context.Context) {
	if err := blobstore.SaveSlice(ctx, r.store, blobstore.SlotUsers, r.accounts); err != nil {
		r.logger.Warn("users write-through failed, change is in-memory only", slog.Any("error", err))
	}
}

func cloneUsers(accounts []entity.UserAccount) []entity.UserAccount {
	out := make([]entity.UserAccount, len(accounts))
	for i := range accounts {
		out[i] = accounts[i].Clone()
	}

	return out
}
