package userstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/registro/internal/registration"
	"github.com/dmitrymomot/registro/pkg/logger"
)

// Memory keeps users in process memory. National ID and e-mail are unique.
type Memory struct {
	mu          sync.RWMutex
	entries     []entry
	nationalIDs map[string]int
	emails      map[string]int
	opts        options
	now         func() time.Time
}

// NewMemory returns an empty in-memory store.
func NewMemory(opts ...Option) *Memory {
	return &Memory{
		nationalIDs: make(map[string]int),
		emails:      make(map[string]int),
		opts:        newOptions("userstore.memory", opts),
		now:         time.Now,
	}
}

// Save stores the record. A duplicate national ID or e-mail returns false.
func (m *Memory) Save(ctx context.Context, record registration.UserRecord) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	e, err := newEntry(uuid.NewString(), record, m.opts.bcryptCost, m.now())
	if err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.nationalIDs[e.NationalID]; ok {
		m.opts.log.InfoContext(ctx, "duplicate national id rejected")
		return false, nil
	}
	if _, ok := m.emails[e.emailKey()]; ok {
		m.opts.log.InfoContext(ctx, "duplicate email rejected")
		return false, nil
	}

	idx := len(m.entries)
	m.entries = append(m.entries, e)
	m.nationalIDs[e.NationalID] = idx
	m.emails[e.emailKey()] = idx

	m.opts.log.DebugContext(ctx, "user saved", logger.Count(len(m.entries)))
	return true, nil
}

// FindAll returns users in registration order.
func (m *Memory) FindAll(ctx context.Context) ([]registration.UserRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]registration.UserRecord, 0, len(m.entries))
	for _, e := range m.entries {
		r, err := e.record()
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// Ping always succeeds.
func (m *Memory) Ping(context.Context) error {
	return nil
}
