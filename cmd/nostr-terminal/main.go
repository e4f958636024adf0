package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/pnmeka/nostr-terminal/cmd/nostr-terminal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
