package http

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"festival/internal/auth"
	"festival/internal/core"
	"festival/internal/log"
	"festival/internal/middleware/ratelimit"
	"festival/internal/middleware/security"
	"festival/internal/middleware/trace"
	"festival/internal/services"
	appweb "festival/web"
)

// DonorService is the donor use-case surface the handlers need.
type DonorService interface {
	List(ctx context.Context, f core.DonorFilter) ([]core.Donor, error)
	Get(ctx context.Context, id int64) (core.Donor, error)
	Create(ctx context.Context, in services.DonorInput) (core.Donor, error)
	Update(ctx context.Context, id int64, in services.DonorInput) (core.Donor, error)
	Delete(ctx context.Context, id int64) (core.Donor, error)
}

type ExpenseService interface {
	List(ctx context.Context) ([]core.Expense, error)
	Get(ctx context.Context, id int64) (core.Expense, error)
	Create(ctx context.Context, in services.ExpenseInput) (core.Expense, error)
	Update(ctx context.Context, id int64, in services.ExpenseInput) (core.Expense, error)
	Delete(ctx context.Context, id int64) (core.Expense, error)
}

type AggregateService interface {
	Summary(ctx context.Context) (core.Summary, error)
	ExpenseReport(ctx context.Context) (core.ExpenseReport, error)
	Remaining(ctx context.Context) (core.Remaining, error)
}

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators of the server. Auth and Tokens are nil when the
// API is open.
type Deps struct {
	Donors     DonorService
	Expenses   ExpenseService
	Aggregates AggregateService
	Store      Pinger

	Auth   *auth.Authenticator
	Tokens *auth.TokenIssuer

	Logger     *log.Logger
	IPResolver *security.IPResolver
	// LoginLimit is the number of login attempts allowed per client a minute.
	LoginLimit int
}

type Server struct {
	http.Server
	deps         Deps
	logger       *log.Logger
	templates    *template.Template
	tracer       *trace.Middleware
	loginLimiter *ratelimit.Limiter
}

// NewServer configures routes and templates, returning a ready-to-run server.
func NewServer(addr string, deps Deps) (*Server, error) {
	if deps.Logger == nil {
		deps.Logger = log.Discard()
	}
	if deps.IPResolver == nil {
		res, err := security.NewIPResolver()
		if err != nil {
			return nil, err
		}
		deps.IPResolver = res
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		deps:         deps,
		logger:       deps.Logger.WithComponent(log.ComponentHTTP),
		templates:    tmpl,
		loginLimiter: ratelimit.NewLimiter(ratelimit.Config{RequestsPerMinute: deps.LoginLimit}),
	}
	s.tracer = trace.NewMiddleware(s.logger, deps.IPResolver.ClientIP)

	handler, err := s.routes()
	if err != nil {
		return nil, err
	}
	s.Server = http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
	return s, nil
}

func (s *Server) routes() (http.Handler, error) {
	static, err := fs.Sub(appweb.StaticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("mount static assets: %w", err)
	}

	r := chi.NewRouter()
	r.Use(s.tracer.Handler)
	r.Use(middleware.Recoverer)
	r.Use(security.Headers(security.DefaultHeadersConfig()))
	r.NotFound(s.handleNotFound)

	r.Get("/healthz", handleHealth)
	r.Get("/readyz", s.handleReady)
	r.With(security.StaticAssets(3600)).
		Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Get("/", s.handleDashboardPage)
	r.Get("/donors", s.handleDonorsPage)
	r.Get("/expenses", s.handleExpensesPage)
	r.Get("/login", s.handleLoginPage)

	r.Route("/api", func(r chi.Router) {
		r.Use(security.NoStore)
		r.Get("/", handleAPIRoot)
		r.With(s.loginLimiter.Middleware(s.deps.IPResolver.ClientIP, tooManyAttempts)).
			Post("/auth/login", s.handleLogin)

		r.Route("/donors", func(r chi.Router) {
			r.Get("/", s.handleListDonors)
			r.Get("/{id}", s.handleGetDonor)
			r.Group(func(r chi.Router) {
				r.Use(s.requireAdmin)
				r.Post("/", s.handleCreateDonor)
				r.Put("/{id}", s.handleUpdateDonor)
				r.Delete("/{id}", s.handleDeleteDonor)
			})
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", s.handleListExpenses)
			r.Get("/{id}", s.handleGetExpense)
			r.Group(func(r chi.Router) {
				r.Use(s.requireAdmin)
				r.Post("/", s.handleCreateExpense)
				r.Put("/{id}", s.handleUpdateExpense)
				r.Delete("/{id}", s.handleDeleteExpense)
			})
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/donors", s.handleListDonors)
			r.Get("/summary", s.handleSummary)
			r.Get("/expenses", s.handleExpenseReport)
			r.Get("/remaining", s.handleRemaining)
		})
	})

	return r, nil
}

// requireAdmin guards mutating routes when auth is configured.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	if s.deps.Tokens == nil {
		return next
	}
	return auth.RequireAdmin(s.deps.Tokens, func(w http.ResponseWriter, r *http.Request) {
		UnauthorizedError("Unauthorized").Write(w)
	})(next)
}

func tooManyAttempts(w http.ResponseWriter, r *http.Request) {
	ErrorResponse(http.StatusTooManyRequests, "Too many login attempts, try again later").Write(w)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		NotFoundError("Route not found").Write(w)
		return
	}
	http.NotFound(w, r)
}

// Shutdown stops accepting requests and releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	s.loginLimiter.Stop()
	return s.Server.Shutdown(ctx)
}

// ListenAndServe runs until the server is shut down. http.ErrServerClosed is
// not reported as an error.
func (s *Server) ListenAndServe() error {
	if err := s.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
