package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/deckkeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   REST bind address (e.g., ":8080")
//	-r string   gRPC health bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s string   API key signing secret
//	-w bool     allow anonymous writes
//
// Notes:
//   - os.Args is first filtered down to the flags listed above with
//     flagx.FilterArgs, so -c/-config and -mint pass through untouched.
//   - Flags run after the JSON file, so a flag always wins over the file.
//   - A malformed value panics; LoadConfig runs before anything is served.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-r", "-d", "-s", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port of the REST endpoint")
	fs.StringVar(&config.EndpointAddrGRPC, "r", config.EndpointAddrGRPC, "address and port of the gRPC health endpoint")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.BoolVar(&config.AllowAnonWrites, "w", config.AllowAnonWrites, "allow anonymous writes")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
