package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pnmeka/nostr-terminal/internal/crypto"
	"github.com/pnmeka/nostr-terminal/internal/domain"
	"github.com/pnmeka/nostr-terminal/internal/relay"
)

// verify [file]: accepts an event object or an ["EVENT", {...}] message.
func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [file]",
		Short: "Check the id and signature of an event read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) == 1 && args[0] != "-" {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			ev, err := parseEvent(data)
			if err != nil {
				return err
			}
			if err := crypto.VerifyEvent(ev); err != nil {
				return fmt.Errorf("event %s: %w", ev.ID, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Valid event %s by %s\n", ev.ID, ev.PubKey)
			return nil
		},
	}
}

func parseEvent(data []byte) (domain.Event, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return relay.DecodeEventMessage(data)
	}
	var ev domain.Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return domain.Event{}, fmt.Errorf("parse event: %w", err)
	}
	return ev, nil
}
