package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/deckkeeper/internal/client/client"
	"github.com/dmitrijs2005/deckkeeper/internal/client/config"
	"github.com/dmitrijs2005/deckkeeper/internal/client/generator"
	"github.com/dmitrijs2005/deckkeeper/internal/client/publish"
	"github.com/dmitrijs2005/deckkeeper/internal/client/services"
	"github.com/dmitrijs2005/deckkeeper/internal/deck"
	"github.com/dmitrijs2005/deckkeeper/internal/editor"
	"github.com/dmitrijs2005/deckkeeper/internal/logging"
	"github.com/dmitrijs2005/deckkeeper/internal/playback"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type publisher interface {
	Enabled() bool
	Publish(ctx context.Context, name, contentType string, body []byte) (string, error)
}

type App struct {
	config    *config.Config
	logger    logging.Logger
	store     client.Client
	repos     *client.Repositories
	session   *editor.Session
	player    *playback.Controller
	sync      *services.SyncService
	generator generator.Generator
	publisher publisher
	reader    *bufio.Reader
	out       io.Writer
	now       func() time.Time

	mu   sync.Mutex
	mode Mode
}

// NewApp opens the listing cache and the store client and starts with the
// bundled starter deck.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	repos, err := client.InitDatabase(ctx, c.CacheDSN)
	if err != nil {
		logger.Error(ctx, "error initializing listing cache", "error", err)
		return nil, err
	}

	store, err := client.NewRESTClient(client.RESTConfig{
		BaseURL:    c.StoreURL,
		APIKey:     c.StoreKey,
		HealthAddr: c.HealthAddr,
		Timeout:    c.RequestTimeout,
	})
	if err != nil {
		_ = repos.DB.Close()
		return nil, err
	}

	session := editor.NewSession(deck.Default())

	a := &App{
		config:  c,
		logger:  logger,
		store:   store,
		repos:   repos,
		session: session,
		player:  playback.New(session),
		sync:    services.NewSyncService(store, repos.Summaries, session, logger),
		publisher: publish.NewPublisher(publish.Config{
			Region:    c.S3Region,
			Endpoint:  c.S3Endpoint,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
			Bucket:    c.S3Bucket,
			LinkTTL:   c.S3LinkTTL,
		}),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		now:    time.Now,
		mode:   ModeOffline,
	}
	if c.GeneratorKey != "" {
		a.generator = generator.NewGeminiGenerator(c.GeneratorKey, c.GeneratorModel, c.GeneratorURL, c.RequestTimeout)
	}
	return a, nil
}

// Close releases the store client and the cache database.
func (a *App) Close() error {
	var errs []error
	if a.store != nil {
		errs = append(errs, a.store.Close())
	}
	if a.repos != nil {
		errs = append(errs, a.repos.DB.Close())
	}
	return errors.Join(errs...)
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

func (a *App) getStatus() string {
	s := string(a.Mode())
	if a.session.Editing() {
		s += " admin"
	}
	return fmt.Sprintf("(%s %d/%d)", s, a.player.Current()+1, a.player.Total())
}

// Run shows the opening frame and blocks in the REPL until the user exits
// or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(); err != nil {
			a.logger.Warn(ctx, "close failed", "error", err)
		}
	}()

	fmt.Fprintln(a.out, "Deck viewer (type 'help' for commands)")

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	_ = a.Show(ctx, nil)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.store.Ping(ctx); err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}

// StartOnlineStatusWatcher pings the store every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
