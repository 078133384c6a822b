package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/deckkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/deckkeeper/internal/flagx"
	"github.com/dmitrijs2005/deckkeeper/internal/logging"
	"github.com/dmitrijs2005/deckkeeper/internal/server"
	"github.com/dmitrijs2005/deckkeeper/internal/server/auth"
	"github.com/dmitrijs2005/deckkeeper/internal/server/config"
)

// mintRole returns the role passed with -mint, if any.
func mintRole(args []string) string {
	var role string
	fs := flag.NewFlagSet("mint", flag.ContinueOnError)
	fs.StringVar(&role, "mint", "", "print an API key for the given role and exit")
	_ = fs.Parse(flagx.FilterArgs(args, []string{"-mint"}))
	return role
}

func main() {
	cfg := config.LoadConfig()

	if role := mintRole(os.Args[1:]); role != "" {
		key, err := auth.GenerateKey(role, []byte(cfg.SecretKey), 0)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(key)
		return
	}

	buildinfo.PrintBuildData(os.Stdout)

	logger := logging.NewJSON(os.Stdout, logging.ParseLevel(cfg.LogLevel))

	ctx := context.Background()
	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
