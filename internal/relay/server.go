package relay

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/coder/websocket"

	"github.com/pnmeka/nostr-terminal/internal/crypto"
	"github.com/pnmeka/nostr-terminal/internal/domain"
)

// Server is an in-memory relay that accepts and verifies published events.
// State is lost when the process exits.
type Server struct {
	mu     sync.RWMutex
	events map[string]domain.Event
	log    *slog.Logger
}

// NewServer returns an empty Server. A nil logger uses slog.Default().
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		events: make(map[string]domain.Event),
		log:    logger,
	}
}

// ServeHTTP upgrades the request to a WebSocket and answers each message.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.log.Warn("websocket accept failed", slog.String("remote", r.RemoteAddr), slog.String("error", err.Error()))
		return
	}
	defer conn.CloseNow()
	conn.SetReadLimit(maxMessageSize)

	ctx := r.Context()
	for {
		_, msg, err := conn.Read(ctx)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			default:
				s.log.Debug("connection ended", slog.String("remote", r.RemoteAddr), slog.String("error", err.Error()))
			}
			return
		}
		reply, err := s.handle(msg)
		if err != nil {
			s.log.Error("encode reply", slog.String("error", err.Error()))
			return
		}
		if err := conn.Write(ctx, websocket.MessageText, reply); err != nil {
			return
		}
	}
}

// Event returns a stored event by id.
func (s *Server) Event(id string) (domain.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ev, ok := s.events[id]
	return ev, ok
}

// Len returns the number of stored events.
func (s *Server) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

func (s *Server) handle(msg []byte) ([]byte, error) {
	verb, _, err := splitMessage(msg)
	if err != nil {
		return EncodeNotice("error: " + err.Error())
	}
	if verb != VerbEvent {
		return EncodeNotice("unsupported: " + verb)
	}

	ev, err := DecodeEventMessage(msg)
	if err != nil {
		return EncodeNotice("error: " + err.Error())
	}
	if err := crypto.VerifyEvent(ev); err != nil {
		s.log.Info("event rejected", slog.String("event_id", ev.ID), slog.String("reason", err.Error()))
		return EncodeOK(OK{EventID: ev.ID, Accepted: false, Message: "invalid: " + err.Error()})
	}

	s.mu.Lock()
	_, dup := s.events[ev.ID]
	if !dup {
		s.events[ev.ID] = ev
	}
	s.mu.Unlock()

	if dup {
		return EncodeOK(OK{EventID: ev.ID, Accepted: true, Message: "duplicate: already have this event"})
	}
	s.log.Info("event stored",
		slog.String("event_id", ev.ID),
		slog.String("pubkey", ev.PubKey),
		slog.Uint64("kind", uint64(ev.Kind)))
	return EncodeOK(OK{EventID: ev.ID, Accepted: true})
}
