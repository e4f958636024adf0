package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pnmeka/nostr-terminal/internal/domain"
	"github.com/pnmeka/nostr-terminal/internal/relay"
)

var (
	kind    uint64
	tagArgs []string
	dryRun  bool
)

func addPostFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Uint64Var(&kind, "kind", 0, "event kind (default from config, 1)")
	f.StringArrayVarP(&tagArgs, "tag", "t", nil,
		`tag as comma-separated values (-t e,<id>) or a JSON array when a value holds a comma (-t '["e","a,b"]'); repeatable, order kept`)
	f.BoolVar(&dryRun, "dry-run", false, "sign and print the EVENT message without publishing")
}

// post <message...>: sign and publish a note.
func postCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post <message...>",
		Short: "Sign a note and publish it to the relay",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPost(cmd, strings.Join(args, " "))
		},
	}
	addPostFlags(cmd)
	return cmd
}

func runPost(cmd *cobra.Command, content string) error {
	tags, err := parseTags(tagArgs)
	if err != nil {
		return err
	}
	draft := domain.Draft{
		Kind:    cfg.Event.Kind,
		Tags:    tags,
		Content: content,
	}
	if cmd.Flags().Changed("kind") {
		draft.Kind = domain.Kind(kind)
	}
	pass := cfg.Passphrase(passphrase)
	out := cmd.OutOrStdout()

	if dryRun {
		ev, err := wire.Notes.Sign(pass, draft)
		if err != nil {
			return err
		}
		msg, err := relay.EncodeEventMessage(ev)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(msg))
		return nil
	}

	ev, reply, err := wire.Notes.Post(cmd.Context(), pass, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Event sent successfully!\nEvent ID: %s\nRelay response: %s\n", ev.ID, reply)
	return nil
}

// parseTags turns each "a,b,c" flag value into the tag ["a","b","c"]. A value
// starting with '[' is read as a JSON array of strings instead.
func parseTags(values []string) (domain.Tags, error) {
	tags := make(domain.Tags, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("empty --tag value")
		}
		if strings.HasPrefix(strings.TrimSpace(v), "[") {
			var tag domain.Tag
			if err := json.Unmarshal([]byte(v), &tag); err != nil {
				return nil, fmt.Errorf("--tag %s: want a JSON array of strings: %w", v, err)
			}
			if len(tag) == 0 {
				return nil, fmt.Errorf("--tag %s: empty tag", v)
			}
			tags = append(tags, tag)
			continue
		}
		tags = append(tags, domain.Tag(strings.Split(v, ",")))
	}
	return tags, nil
}
