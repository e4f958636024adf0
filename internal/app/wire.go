package app

import (
	"log/slog"
	"net/http"

	"github.com/pnmeka/nostr-terminal/internal/domain"
	"github.com/pnmeka/nostr-terminal/internal/relay"
	"github.com/pnmeka/nostr-terminal/internal/services/identity"
	"github.com/pnmeka/nostr-terminal/internal/services/note"
	"github.com/pnmeka/nostr-terminal/internal/store"
)

// Wire holds the dependencies the CLI commands use.
type Wire struct {
	Keys     domain.KeyStore
	Identity domain.IdentityService
	Notes    domain.NoteService
	Relay    *relay.Client
	HTTP     *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg *Config, logger *slog.Logger) (*Wire, error) {
	if logger == nil {
		logger = slog.Default()
	}

	// File-based key store
	keyStore := store.NewKeyFileStore(cfg.Home)

	// Ensure an HTTP client is available for the websocket handshake
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	// Relay client
	rc := &relay.Client{
		URL:     cfg.Relay.URL,
		Timeout: cfg.Relay.Timeout,
		HTTP:    httpClient,
		Logger:  logger.With(slog.String("component", "relay")),
	}

	// High-level services
	idSvc := identity.New(keyStore,
		identity.WithKeyEnv(cfg.Key.Env),
		identity.WithLogger(logger.With(slog.String("component", "identity"))),
	)
	noteSvc := note.New(idSvc, rc, note.WithLogger(logger.With(slog.String("component", "note"))))

	return &Wire{
		Keys:     keyStore,
		Identity: idSvc,
		Notes:    noteSvc,
		Relay:    rc,
		HTTP:     httpClient,
	}, nil
}
