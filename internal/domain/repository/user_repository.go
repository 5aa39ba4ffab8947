// Package repository defines the interfaces for the collection stores.
// These interfaces act as a contract between the domain/application layers and
// the infrastructure layer; each implementation owns its in-memory collection
// and writes through to durable local storage on every successful mutation.
package repository

import (
	"context"
	"errors"

	"outreach/internal/domain/entity"
)

// ErrUserNotFound is returned when no account matches the given identifier.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUser is returned when an account with the same identifier
// already exists.
var ErrDuplicateUser = errors.New("user id already registered")

// UserRepository is the authoritative local store for user accounts.
// All reads return defensive copies.
type UserRepository interface {
	// All returns every account in collection order.
	All(ctx context.Context) []entity.UserAccount

	// FindByID retrieves a single account by identifier.
	FindByID(ctx context.Context, id string) (*entity.UserAccount, error)

	// FindByRole returns the accounts holding the given role.
	FindByRole(ctx context.Context, role entity.Role) []entity.UserAccount

	// FindByFacility returns the accounts attached to the given facility.
	FindByFacility(ctx context.Context, facilityID string) []entity.UserAccount

	// Add inserts a new account, rejecting duplicate identifiers with
	// ErrDuplicateUser. The write-through to local storage is best-effort.
	Add(ctx context.Context, account entity.UserAccount) error

	// Update replaces the stored account matching the identifier.
	Update(ctx context.Context, account entity.UserAccount) error

	// Delete removes the account with the given identifier.
	Delete(ctx context.Context, id string) error

	// Merge reconciles a remote snapshot into the collection by identifier,
	// remote-wins, inside the collection's mutation lock.
	Merge(ctx context.Context, snapshot []entity.UserAccount)

	// Reload discards the in-memory collection and re-reads it from local
	// storage.
	Reload(ctx context.Context)
}
