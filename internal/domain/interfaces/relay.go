package interfaces

import (
	"context"

	domaintypes "github.com/pnmeka/nostr-terminal/internal/domain/types"
)

// Publisher sends one event to a relay and returns its reply verbatim.
type Publisher interface {
	Publish(ctx context.Context, event domaintypes.Event) (string, error)
}
