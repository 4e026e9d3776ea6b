// Package cli implements the interactive terminal front end: a command loop
// over the client services, with the session guard deciding which flows are
// reachable. One process run corresponds to one browser page life in the web
// UI: the session is re-validated at startup and held in memory only.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/openfab/printctl/internal/core/ports"
	"github.com/openfab/printctl/internal/core/service"
	"github.com/openfab/printctl/internal/core/session"
)

// Deps bundles the API surfaces and I/O the App is built from.
type Deps struct {
	Auth     ports.AuthAPI
	Requests ports.PrintRequestAPI
	Admin    ports.AdminAPI
	Spoolman ports.SpoolmanAPI
	Log      zerolog.Logger
	In       io.Reader
	Out      io.Writer
}

// App owns the command loop and doubles as the session Navigator: redirects
// that a browser would express as page changes become printed hints here.
type App struct {
	cache    *session.Cache
	guard    *session.Guard
	accounts *service.AccountService
	requests *service.RequestService
	admin    *service.AdminService
	spools   *service.SpoolService
	log      zerolog.Logger
	in       *bufio.Reader
	out      io.Writer
}

func NewApp(d Deps) *App {
	cache := session.NewCache(d.Auth, d.Log)
	app := &App{
		cache:    cache,
		accounts: service.NewAccountService(d.Auth, cache, d.Log),
		requests: service.NewRequestService(d.Requests, d.Log),
		admin:    service.NewAdminService(d.Admin, d.Log),
		spools:   service.NewSpoolService(d.Spoolman, d.Log),
		log:      d.Log,
		in:       bufio.NewReader(d.In),
		out:      d.Out,
	}
	app.guard = session.NewGuard(cache, d.Auth, app, d.Log)
	return app
}

var _ ports.Navigator = (*App)(nil)

// ToLogin is the login redirect: in the terminal it is a hint, and the
// command that triggered it has already been refused.
func (a *App) ToLogin() {
	fmt.Fprintln(a.out, "Please log in first ('login', or 'register' for a new account).")
}

// ToDashboard is the reduced-privilege redirect for authenticated users
// below the required role.
func (a *App) ToDashboard() {
	fmt.Fprintln(a.out, "You don't have permission to do that.")
}

// Refresh re-renders the session banner after bootstrap or a state change.
func (a *App) Refresh() {
	if user := a.cache.Current(); user != nil {
		fmt.Fprintf(a.out, "Logged in as %s (%s)\n", user.Name(), user.Role)
	} else {
		fmt.Fprintln(a.out, "Not logged in.")
	}
}

// Run bootstraps the session and enters the command loop. It returns when
// the user exits or input reaches EOF.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "printctl — print request client (type 'help' for commands)")
	a.guard.Init(ctx)
	a.repl(ctx)
}
