package mocks

import (
	"context"

	"github.com/phrazzld/socialmedia-api/internal/store"
)

// MockTransactor implements store.Transactor for testing.
// By default it runs fn with a nil transaction and, when fn fails, restores
// the Memory to its state before the call.
type MockTransactor struct {
	WithinTxFn func(ctx context.Context, fn store.TxFn) error

	// Calls counts units of work; RolledBack counts those that failed.
	Calls      int
	RolledBack int

	mem *Memory
}

// NewMockTransactor creates a transactor that rolls back mem on failure.
// A nil mem disables rollback.
func NewMockTransactor(mem *Memory) *MockTransactor {
	return &MockTransactor{mem: mem}
}

// Ensure MockTransactor implements store.Transactor interface
var _ store.Transactor = (*MockTransactor)(nil)

// WithinTx implements the Transactor interface
func (m *MockTransactor) WithinTx(ctx context.Context, fn store.TxFn) error {
	m.Calls++
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}

	var saved *Memory
	if m.mem != nil {
		saved = m.mem.snapshot()
	}

	if err := fn(ctx, nil); err != nil {
		m.RolledBack++
		if saved != nil {
			m.mem.restore(saved)
		}
		return err
	}
	return nil
}

// NewMockStores wires the three store mocks and a transactor to one Memory.
func NewMockStores() (*MockUserStore, *MockPostStore, *MockCommentStore, *MockTransactor) {
	mem := NewMemory()
	return NewMockUserStore(mem), NewMockPostStore(mem), NewMockCommentStore(mem), NewMockTransactor(mem)
}

// Memory returns the state shared by the stores created alongside m.
func (m *MockTransactor) Memory() *Memory {
	return m.mem
}
