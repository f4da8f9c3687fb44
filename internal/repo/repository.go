package repo

import (
	"context"

	"github.com/luke31A/urlrequest/internal/domain"
)

// ScanStore keeps completed scans for the running session. There is no
// durable backend: history is a convenience view, not a record.
type ScanStore interface {
	Append(ctx context.Context, s *domain.Scan) error
	// Recent returns up to n scans, newest first.
	Recent(ctx context.Context, n int) ([]*domain.Scan, error)
}
