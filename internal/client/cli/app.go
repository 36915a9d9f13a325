package cli

import (
	"bufio"
	"context"
	"net/http"
	"net/http/cookiejar"
	"os"

	"github.com/Gescomph/gescomph-portal/internal/client/auth"
	"github.com/Gescomph/gescomph-portal/internal/client/config"
	"github.com/Gescomph/gescomph-portal/internal/client/guard"
	"github.com/Gescomph/gescomph-portal/internal/client/httpx"
	"github.com/Gescomph/gescomph-portal/internal/client/notify"
	"github.com/Gescomph/gescomph-portal/internal/client/services"
	"github.com/Gescomph/gescomph-portal/internal/client/session"
	"github.com/Gescomph/gescomph-portal/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	store    *session.Store
	bus      *session.Bus
	notifier notify.Notifier

	auth           *auth.Transport
	contracts      *services.ContractService
	squares        *services.SquareService
	establishments *services.EstablishmentService
	appointments   *services.AppointmentService
	dashboard      *services.DashboardService

	reader *bufio.Reader
}

// NewApp assembles the full client: cookie jar, interceptor pipeline, session
// state, auth transport with its refresh coordinator, and the resource
// services. The auth gate is constructed before the coordinator and bound
// afterwards, since the refresh call itself travels through the gate.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	store := session.NewStore()
	bus := session.NewBus()
	notifier := notify.NewConsole(os.Stdout)
	alerts := notify.NewAlerts(notifier, notify.DedupWindow)

	gate := httpx.NewAuthGate(bus, log)

	mws := []httpx.Middleware{gate.Middleware(), httpx.CSRF(jar)}
	if !c.IsProduction() {
		mws = append(mws, httpx.NgrokBypass())
	}
	mws = append(mws, httpx.RequestID(), httpx.Normalize(alerts.ObserveError))

	hc := &http.Client{Jar: jar, Timeout: c.RequestTimeout}
	api, err := httpx.NewClient(httpx.Chain(hc, mws...), c.BaseURL)
	if err != nil {
		return nil, err
	}

	transport := auth.NewTransport(api, store, bus, log)
	gate.Bind(auth.NewCoordinator(transport, c.RefreshTimeout, log))

	contracts := services.NewContractService(api)
	squares := services.NewSquareService(api)
	establishments := services.NewEstablishmentService(api)
	appointments := services.NewAppointmentService(api)

	return &App{
		config:         c,
		log:            log,
		store:          store,
		bus:            bus,
		notifier:       notifier,
		auth:           transport,
		contracts:      contracts,
		squares:        squares,
		establishments: establishments,
		appointments:   appointments,
		dashboard:      services.NewDashboardService(contracts, squares, establishments, appointments),
		reader:         bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the session, subscribes to the lifecycle events and blocks in
// the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	unsubscribe := a.bus.Subscribe(a.onSessionEvent)
	defer unsubscribe()

	a.auth.Restore(ctx, a.config.StartRoute)

	printlnFn("GESCOMPH portal (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// onSessionEvent reacts to terminal session events. Several concurrent
// requests can each broadcast the same expiration; the store check keeps the
// user-facing message to one per session.
func (a *App) onSessionEvent(ev session.Event) {
	switch ev.Type {
	case session.EventSessionExpired:
		if !a.store.ClearIfSet() {
			return
		}
		a.notifier.Error("Session", "Your session has expired. Please sign in again.")
	case session.EventLogout:
		a.notifier.Success("Session", "Signed out.")
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.Authenticated()
}

// requireAuthenticated gates a signed-in command and announces the redirect
// target when the session is missing.
func (a *App) requireAuthenticated() bool {
	d := guard.Authenticated(a.store)
	if !d.Allowed {
		printlnFn("Sign in first (redirecting to " + d.Redirect + ")")
		return false
	}
	return true
}

// requirePublic keeps signed-in users out of the public-only flows.
func (a *App) requirePublic() bool {
	d := guard.PublicOnly(a.store)
	if !d.Allowed {
		printlnFn("Already signed in, redirecting to " + d.Redirect)
		return false
	}
	return true
}

func (a *App) status() string {
	if u := a.store.Snapshot(); u != nil {
		return u.Email
	}
	return "signed out"
}

// Open resolves a route the way a deep link is resolved: the identity is
// re-validated server-side and the route must match the menu tree.
func (a *App) Open(ctx context.Context, route string) error {
	d := guard.PermissionMatch(ctx, a.auth, route)
	if !d.Allowed {
		printlnFn("Access denied, redirecting to", d.Redirect)
		return nil
	}
	printlnFn("Opened", guard.NormalizeRoute(route))
	return nil
}
