package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/deckkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only the flags handled here are picked out of os.Args.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-k", "-h", "-g", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreURL, "u", cfg.StoreURL, "base URL of the presentations store")
	fs.StringVar(&cfg.StoreKey, "k", cfg.StoreKey, "store API key")
	fs.StringVar(&cfg.HealthAddr, "h", cfg.HealthAddr, "address and port of the store health endpoint")
	fs.StringVar(&cfg.GeneratorKey, "g", cfg.GeneratorKey, "Gemini API key")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
