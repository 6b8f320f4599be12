package health

import "context"

// BackendPinger checks ResearchHub backend availability.
type BackendPinger interface {
	Ping(ctx context.Context) error
}
