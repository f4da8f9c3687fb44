package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/luke31A/urlrequest/internal/domain"
	"github.com/luke31A/urlrequest/internal/repo"
)

var _ repo.ScanStore = (*Store)(nil)

// Store holds the most recent scans in memory, newest first, dropping
// the oldest once cap is reached.
type Store struct {
	mu    sync.RWMutex
	scans []*domain.Scan
	cap   int
}

func New(capacity int) *Store {
	if capacity < 1 {
		capacity = 100
	}
	return &Store{
		scans: make([]*domain.Scan, 0, capacity),
		cap:   capacity,
	}
}

func (m *Store) Append(ctx context.Context, s *domain.Scan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == "" {
		s.ID = makeID()
	}
	m.scans = append([]*domain.Scan{s}, m.scans...)
	if len(m.scans) > m.cap {
		m.scans = m.scans[:m.cap]
	}
	return nil
}

func (m *Store) Recent(ctx context.Context, n int) ([]*domain.Scan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if n <= 0 || n > len(m.scans) {
		n = len(m.scans)
	}
	out := make([]*domain.Scan, n)
	copy(out, m.scans[:n])
	return out, nil
}

// ID format: 20060102Thhmmss.nnnnnnnnn
func makeID() string {
	now := time.Now().UTC()
	return now.Format("20060102T150405.") + fmt.Sprintf("%09d", now.Nanosecond())
}
