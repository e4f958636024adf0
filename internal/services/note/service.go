package note

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/pnmeka/nostr-terminal/internal/crypto"
	"github.com/pnmeka/nostr-terminal/internal/domain"
	"github.com/pnmeka/nostr-terminal/internal/relay"
	"github.com/pnmeka/nostr-terminal/internal/util/memzero"
)

var (
	// ErrNoRelay is returned by Post when the service has no publisher.
	ErrNoRelay = errors.New("no relay configured")
	// ErrInvalidUTF8 is returned when content or a tag value is not valid
	// UTF-8. Such text cannot travel as JSON unchanged, so the id would not
	// match what a relay receives.
	ErrInvalidUTF8 = errors.New("text is not valid UTF-8")
)

// KeySource yields the secret key used for signing.
type KeySource interface {
	LoadSecretKey(passphrase string) ([]byte, error)
}

// Service signs and publishes notes.
type Service struct {
	keys  KeySource
	relay domain.Publisher
	now   func() time.Time
	log   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the source of created_at.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// New returns a Service. relay may be nil when only Sign is used.
func New(keys KeySource, publisher domain.Publisher, opts ...Option) *Service {
	s := &Service{
		keys:  keys,
		relay: publisher,
		now:   time.Now,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sign resolves the secret key and signs draft with the current time.
func (s *Service) Sign(passphrase string, draft domain.Draft) (domain.Event, error) {
	if err := checkText(draft); err != nil {
		return domain.Event{}, err
	}
	sk, err := s.keys.LoadSecretKey(passphrase)
	if err != nil {
		return domain.Event{}, fmt.Errorf("load secret key: %w", err)
	}
	defer memzero.Zero(sk)

	ev, err := crypto.SignEvent(sk, domain.Timestamp(s.now().Unix()), draft.Kind, draft.Tags, draft.Content)
	if err != nil {
		return domain.Event{}, err
	}
	s.log.Debug("event signed",
		slog.String("event_id", ev.ID),
		slog.String("pubkey", ev.PubKey),
		slog.Uint64("kind", uint64(ev.Kind)),
		slog.Int("tags", len(ev.Tags)))
	return ev, nil
}

// Post signs draft and publishes it, returning the event and the relay's
// reply verbatim.
func (s *Service) Post(ctx context.Context, passphrase string, draft domain.Draft) (domain.Event, string, error) {
	if s.relay == nil {
		return domain.Event{}, "", ErrNoRelay
	}
	ev, err := s.Sign(passphrase, draft)
	if err != nil {
		return domain.Event{}, "", err
	}

	reply, err := s.relay.Publish(ctx, ev)
	if err != nil {
		return domain.Event{}, "", fmt.Errorf("publish event %s: %w", ev.ID, err)
	}

	if ok, perr := relay.ParseOK([]byte(reply)); perr == nil {
		s.log.Info("relay acknowledged event",
			slog.String("event_id", ok.EventID),
			slog.Bool("accepted", ok.Accepted),
			slog.String("message", ok.Message))
	}
	return ev, reply, nil
}

func checkText(draft domain.Draft) error {
	if !utf8.ValidString(draft.Content) {
		return fmt.Errorf("content: %w", ErrInvalidUTF8)
	}
	for i, tag := range draft.Tags {
		for j, v := range tag {
			if !utf8.ValidString(v) {
				return fmt.Errorf("tag %d value %d: %w", i, j, ErrInvalidUTF8)
			}
		}
	}
	return nil
}

// Compile-time assertion that Service implements domain.NoteService.
var _ domain.NoteService = (*Service)(nil)
