package http

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"festival/internal/core"
	"festival/internal/dashboard"
	"festival/internal/log"
)

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.deps.Aggregates.Summary(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "", log.OpSum)
		return
	}
	NewJSONResponse().Data(summary).Write(w)
}

func (s *Server) handleExpenseReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.deps.Aggregates.ExpenseReport(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "", log.OpSum)
		return
	}
	NewJSONResponse().Data(report).Write(w)
}

func (s *Server) handleRemaining(w http.ResponseWriter, r *http.Request) {
	remaining, err := s.deps.Aggregates.Remaining(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "", log.OpSum)
		return
	}
	NewJSONResponse().Data(remaining).Write(w)
}

type dashboardPage struct {
	pageData
	dashboard.View
}

// handleDashboardPage loads the summary and both lists concurrently, then the
// optional remaining figures. A failed required load renders the page with
// zero values and a notice; a failed remaining load is ignored.
func (s *Server) handleDashboardPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.FromContext(ctx)

	var (
		summary  core.Summary
		donors   []core.Donor
		expenses []core.Expense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = s.deps.Aggregates.Summary(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		donors, err = s.deps.Donors.List(gctx, core.DonorFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.deps.Expenses.List(gctx)
		return err
	})

	page := dashboardPage{pageData: s.newPageData(r, "dashboard", "Dashboard")}
	if err := g.Wait(); err != nil {
		logger.LogError(ctx, "Failed to load dashboard", err, log.ComponentHTTP, log.OpRead, nil)
		page.Notice = "Failed to load dashboard"
		page.View = dashboard.Build(core.Summary{}, nil, nil, nil)
		s.render(w, r, "dashboard.html", page)
		return
	}

	var remaining *core.Remaining
	if rem, err := s.deps.Aggregates.Remaining(ctx); err == nil {
		remaining = &rem
	} else {
		logger.DebugContext(ctx, "Remaining figures unavailable", log.FieldError, err)
	}

	page.View = dashboard.Build(summary, donors, expenses, remaining)
	s.render(w, r, "dashboard.html", page)
}
