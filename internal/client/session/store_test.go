package session

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Gescomph/gescomph-portal/internal/client/models"
)

func TestStore_SetClearSnapshot(t *testing.T) {
	s := NewStore()

	if s.Snapshot() != nil {
		t.Fatal("expected empty store")
	}
	if s.Authenticated() {
		t.Fatal("expected not authenticated")
	}

	u := &models.User{ID: 7, Email: "admin@gescomph.co"}
	s.Set(u)

	if got := s.Snapshot(); got == nil || got.ID != 7 {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
	if !s.Authenticated() {
		t.Fatal("expected authenticated")
	}

	s.Clear()
	if s.Snapshot() != nil {
		t.Fatal("expected cleared store")
	}
}

func TestStore_WatchNotifiesAndUnsubscribes(t *testing.T) {
	s := NewStore()

	var got []*models.User
	unsub := s.Watch(func(u *models.User) { got = append(got, u) })

	s.Set(&models.User{ID: 1})
	s.Clear()

	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[0] == nil || got[1] != nil {
		t.Fatalf("unexpected notification sequence: %+v", got)
	}

	unsub()
	s.Set(&models.User{ID: 2})
	if len(got) != 2 {
		t.Fatalf("watcher fired after unsubscribe, got %d notifications", len(got))
	}
}

func TestStore_ClearIfSet(t *testing.T) {
	s := NewStore()

	if s.ClearIfSet() {
		t.Fatal("expected false on an empty store")
	}

	var notifications int
	s.Watch(func(*models.User) { notifications++ })

	s.Set(&models.User{ID: 3})
	if !s.ClearIfSet() {
		t.Fatal("expected true while an identity is held")
	}
	if s.ClearIfSet() {
		t.Fatal("expected false once cleared")
	}
	if s.Authenticated() {
		t.Fatal("expected cleared store")
	}
	// One for the Set, one for the clearing call only.
	if notifications != 2 {
		t.Fatalf("expected 2 watcher notifications, got %d", notifications)
	}
}

func TestStore_ClearIfSetConcurrent(t *testing.T) {
	s := NewStore()
	s.Set(&models.User{ID: 9})

	var wg sync.WaitGroup
	var winners atomic.Int32
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.ClearIfSet() {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := winners.Load(); got != 1 {
		t.Fatalf("expected exactly one winner, got %d", got)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			s.Set(&models.User{ID: id})
		}(i)
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	if s.Snapshot() == nil {
		t.Fatal("expected some identity after concurrent sets")
	}
}
