// Package storage defines the core storage interfaces that the application relies on.
// It abstracts the result cache so that handlers and services receive an explicit
// store object instead of sharing package-level state.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"verifier/pkg/domain"
)

// EmailResultStorage defines CRUD operations over cached email verification results.
// Every operation is atomic; concurrent writers on the same key resolve as last write wins.
type EmailResultStorage interface {
	// StoreEmailResult inserts or replaces the result keyed by result.Email.
	StoreEmailResult(ctx context.Context, result domain.EmailResult) error
	// EmailResult returns the result stored for email, or nil when absent.
	EmailResult(ctx context.Context, email string) (*domain.EmailResult, error)
	// EmailResults returns a snapshot of every stored result keyed by email.
	EmailResults(ctx context.Context) (map[string]domain.EmailResult, error)
	// UpdateEmailResult replaces the result keyed by result.Email only if one
	// already exists. It reports whether the replacement happened.
	UpdateEmailResult(ctx context.Context, result domain.EmailResult) (bool, error)
	// DeleteEmailResult removes the result stored for email and reports
	// whether it existed.
	DeleteEmailResult(ctx context.Context, email string) (bool, error)
}

// DomainCountStorage defines operations over cached domain counts. There is
// intentionally no update or delete operation.
type DomainCountStorage interface {
	// StoreDomainCount inserts or replaces the count keyed by count.Domain.
	StoreDomainCount(ctx context.Context, count domain.DomainCount) error
	// DomainCounts returns a snapshot of every stored count keyed by domain.
	DomainCounts(ctx context.Context) (map[string]domain.DomainCount, error)
}

// Storage is a composite interface that includes all result storage
// capabilities required by the application plus lifecycle management.
type Storage interface {
	EmailResultStorage
	DomainCountStorage

	// Close releases any resources held by the storage implementation. After
	// Close, every operation returns ErrClosed.
	Close() error
}
