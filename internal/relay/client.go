package relay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"github.com/pnmeka/nostr-terminal/internal/domain"
)

const (
	// DefaultTimeout bounds dial, send and the wait for one reply.
	DefaultTimeout = 10 * time.Second

	maxMessageSize = 512 << 10
)

// Client publishes events to a single relay.
type Client struct {
	URL     string
	Timeout time.Duration // zero means no limit beyond ctx
	HTTP    *http.Client  // optional; used for the opening handshake
	Logger  *slog.Logger
}

// NewClient returns a Client for url with the default timeout.
func NewClient(url string) *Client {
	return &Client{URL: url, Timeout: DefaultTimeout, Logger: slog.Default()}
}

var _ domain.Publisher = (*Client)(nil)

// Publish sends ev as one ["EVENT", ev] message and returns the first reply.
func (c *Client) Publish(ctx context.Context, ev domain.Event) (string, error) {
	msg, err := EncodeEventMessage(ev)
	if err != nil {
		return "", fmt.Errorf("encode event: %w", err)
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	log := c.logger().With(slog.String("relay", c.URL), slog.String("event_id", ev.ID))

	conn, _, err := websocket.Dial(ctx, c.URL, &websocket.DialOptions{HTTPClient: c.HTTP})
	if err != nil {
		return "", &TransportError{Op: "dial", URL: c.URL, Err: err}
	}
	defer conn.CloseNow()
	conn.SetReadLimit(maxMessageSize)
	log.Debug("connected")

	if err := conn.Write(ctx, websocket.MessageText, msg); err != nil {
		return "", &TransportError{Op: "send", URL: c.URL, Err: err}
	}
	log.Info("event sent")

	_, reply, err := conn.Read(ctx)
	if err != nil {
		if websocket.CloseStatus(err) != -1 || errors.Is(err, io.EOF) {
			err = fmt.Errorf("%w: %w", ErrNoReply, err)
		}
		return "", &TransportError{Op: "read", URL: c.URL, Err: err}
	}

	if err := conn.Close(websocket.StatusNormalClosure, ""); err != nil {
		log.Debug("close after reply", slog.String("error", err.Error()))
	}
	return string(reply), nil
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
