// Package memory provides a storage.Storage implementation that keeps every
// result in process memory for the lifetime of the process.
package memory

import (
	"context"
	"maps"
	"sync"
	"verifier/pkg/domain"
	"verifier/pkg/storage"
)

// Memory implements storage.Storage with two maps guarded by a single
// RWMutex. It is safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	emails map[string]domain.EmailResult
	counts map[string]domain.DomainCount
	closed bool
}

// Ensure Memory conforms to the storage.Storage interface at compile time.
var _ storage.Storage = (*Memory)(nil)

// New creates an empty in-memory storage.
func New() *Memory {
	return &Memory{
		emails: make(map[string]domain.EmailResult),
		counts: make(map[string]domain.DomainCount),
	}
}

// cloneEmail detaches the payload from the caller's buffer.
func cloneEmail(r domain.EmailResult) domain.EmailResult {
	r.Payload = cloneBytes(r.Payload)

	return r
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}

	return append([]byte(nil), b...)
}

// StoreEmailResult inserts or replaces the result keyed by result.Email.
func (m *Memory) StoreEmailResult(_ context.Context, result domain.EmailResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return storage.ErrClosed
	}
	m.emails[result.Email] = cloneEmail(result)

	return nil
}

// EmailResult returns the result stored for email, or nil when absent.
func (m *Memory) EmailResult(_ context.Context, email string) (*domain.EmailResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, storage.ErrClosed
	}
	r, ok := m.emails[email]
	if !ok {
		return nil, nil //nolint: nilnil
	}
	r = cloneEmail(r)

	return &r, nil
}

// EmailResults returns a snapshot of every stored result keyed by email.
func (m *Memory) EmailResults(_ context.Context) (map[string]domain.EmailResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, storage.ErrClosed
	}
	out := make(map[string]domain.EmailResult, len(m.emails))
	for k, v := range m.emails {
		out[k] = cloneEmail(v)
	}

	return out, nil
}

// UpdateEmailResult replaces the result keyed by result.Email only if it exists.
func (m *Memory) UpdateEmailResult(_ context.Context, result domain.EmailResult) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return false, storage.ErrClosed
	}
	if _, ok := m.emails[result.Email]; !ok {
		return false, nil
	}
	m.emails[result.Email] = cloneEmail(result)

	return true, nil
}

// DeleteEmailResult removes the result stored for email and reports whether it existed.
func (m *Memory) DeleteEmailResult(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return false, storage.ErrClosed
	}
	if _, ok := m.emails[email]; !ok {
		return false, nil
	}
	delete(m.emails, email)

	return true, nil
}

// StoreDomainCount inserts or replaces the count keyed by count.Domain.
func (m *Memory) StoreDomainCount(_ context.Context, count domain.DomainCount) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return storage.ErrClosed
	}
	count.Raw = cloneBytes(count.Raw)
	m.counts[count.Domain] = count

	return nil
}

// DomainCounts returns a snapshot of every stored count keyed by domain.
func (m *Memory) DomainCounts(_ context.Context) (map[string]domain.DomainCount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, storage.ErrClosed
	}

	// Raw is never mutated after StoreDomainCount copied it, so a shallow clone suffices.
	return maps.Clone(m.counts), nil
}

// Close drops every stored result. Subsequent operations return storage.ErrClosed.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.emails = nil
	m.counts = nil

	return nil
}
