package httpapi

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/registro/internal/registration"
	"github.com/dmitrymomot/registro/pkg/cache"
)

// screen is one open registration form.
type screen struct {
	id   string
	ctrl *registration.Controller
}

// sessions holds open screens in memory, bounded by capacity. Screens idle
// for longer than ttl are dropped.
type sessions struct {
	screens *cache.LRU[string, *screen]
	factory func() *registration.Controller
}

// onEvict is called for screens dropped by idleness or capacity, not for
// closed ones.
func newSessions(capacity int, ttl time.Duration, now func() time.Time, factory func() *registration.Controller, onEvict func()) *sessions {
	evicted := func(string, *screen) {
		if onEvict != nil {
			onEvict()
		}
	}
	return &sessions{
		screens: cache.NewLRU(capacity,
			cache.WithTTL[string, *screen](ttl),
			cache.WithClock[string, *screen](now),
			cache.WithEvictCallback(evicted),
		),
		factory: factory,
	}
}

func (s *sessions) open() *screen {
	sc := &screen{id: uuid.NewString(), ctrl: s.factory()}
	s.screens.Put(sc.id, sc)
	return sc
}

func (s *sessions) get(id string) (*screen, bool) {
	return s.screens.Get(id)
}

func (s *sessions) close(id string) bool {
	_, ok := s.screens.Remove(id)
	return ok
}

func (s *sessions) len() int {
	return s.screens.Len()
}
