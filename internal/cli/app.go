package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/podstream/podstream-cli/internal/api"
	"github.com/podstream/podstream-cli/internal/config"
	"github.com/podstream/podstream-cli/internal/logging"
	"github.com/podstream/podstream-cli/internal/notify"
	"github.com/podstream/podstream-cli/internal/storage"
	"github.com/podstream/podstream-cli/internal/token"

	_ "modernc.org/sqlite"
)

// App holds the collaborators every command needs: the classified API
// client, the local store, the notifier, and the input reader.
type App struct {
	config *config.Config
	api    api.Client
	store  storage.Store
	notes  notify.Notifier
	log    logging.Logger
	reader *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	return &App{
		config: c,
		api:    api.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout),
		store:  storage.NewSQLiteStore(db),
		notes:  notify.NewConsole(os.Stdout),
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// session reads and validates the stored token. A zero State means there is
// no usable session; storage errors are logged and treated the same way.
func (a *App) session(ctx context.Context) token.State {
	st, err := token.FromStore(ctx, a.store)
	if err != nil {
		a.log.Error(ctx, "failed to read session token", "err", err)
		return token.State{}
	}
	return st
}

func (a *App) isLoggedIn() bool {
	return a.session(context.Background()).IsValid
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	printlnFn("Podstream account CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// status is the prompt decoration: the signed-in email, if any.
func (a *App) status() string {
	st := a.session(context.Background())
	if !st.IsValid {
		return ""
	}
	if st.IsAdmin {
		return "(" + st.Email + " admin)"
	}
	return "(" + st.Email + ")"
}
