package http

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/core"
	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/services"
	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/stats"
)

// categoryView pairs a category value with its UI label for templates.
type categoryView struct {
	Value core.Category
	Label string
}

type transactionView struct {
	ID          string
	Description string
	Amount      string
	Category    core.Category
	Label       string
	Kind        core.Kind
	Date        string
	Recurring   bool
}

type categoryTotalView struct {
	Category core.Category
	Label    string
	Total    string
}

type summaryView struct {
	MonthlySpent   string
	TotalIncome    string
	TotalExpenses  string
	DailyAverage   string
	BudgetPercent  int
	BudgetStatus   core.BudgetTier
	BudgetLimit    string
	CategoryTotals []categoryTotalView
}

type goalView struct {
	Title          string
	Target         string
	Current        string
	DisplayPercent float64
	Percent        float64
}

type insightsView struct {
	PredictedMonthlySpend string
	Recommendation        string
	Goals                 []goalView
	DidYouKnow            []string
}

type accountView struct {
	Name    string
	Type    core.AccountType
	Balance string
}

type dashboardView struct {
	Summary      summaryView
	Transactions []transactionView
	Accounts     []accountView
	Insights     insightsView
	Categories   []categoryView
	Query        string
	Filter       core.Category
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	now := time.Now()

	sum, err := s.getSummary(ctx, now)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to compute summary", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	txs, err := s.getTransactions(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to list transactions", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	accounts, err := s.service.Accounts(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to list accounts", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	insights, err := s.service.Insights(ctx, now)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to derive insights", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	view := dashboardView{
		Summary:      newSummaryView(sum),
		Transactions: newTransactionViews(txs),
		Accounts:     newAccountViews(accounts),
		Insights:     newInsightsView(insights),
		Categories:   expenseCategoryViews(),
	}

	s.render(w, r, "dashboard.html", view)
}

// handleSubmitTransaction accepts the dashboard form. On success it
// invalidates the derived-data caches and returns the refreshed
// transaction list partial so HTMX can swap it in place.
func (s *Server) handleSubmitTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	description := sanitizeInput(r.FormValue("description"))
	amountStr := sanitizeInput(r.FormValue("amount"))

	cents, err := core.ParseDecimalToCents(amountStr)
	if err != nil {
		http.Error(w, "Amount must be a positive number", http.StatusUnprocessableEntity)
		return
	}

	kind := core.Kind(r.FormValue("kind"))
	if kind == "" {
		kind = core.Expense
	}

	req := services.SubmitRequest{
		Description: description,
		Amount:      core.Money{Cents: cents},
		Category:    core.Category(sanitizeInput(r.FormValue("category"))),
		Kind:        kind,
		Recurring:   r.FormValue("recurring") == "on" || r.FormValue("recurring") == "true",
		Frequency:   core.Frequency(r.FormValue("frequency")),
	}

	if _, err := s.service.Submit(ctx, req); err != nil {
		status := http.StatusUnprocessableEntity
		switch {
		case errors.Is(err, core.ErrEmptyDescription),
			errors.Is(err, core.ErrInvalidAmount),
			errors.Is(err, core.ErrUnknownCategory),
			errors.Is(err, core.ErrInvalidKind),
			errors.Is(err, core.ErrInvalidFrequency):
			// validation failure, keep 422
		default:
			slog.ErrorContext(ctx, "Failed to store transaction", "error", err)
			status = http.StatusInternalServerError
		}
		http.Error(w, err.Error(), status)
		return
	}

	s.invalidateDerived()

	// Other dashboard panels listen for this event and refresh themselves.
	w.Header().Set("HX-Trigger", "transaction-created")
	s.handleTransactionList(w, r)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	sum, err := s.getSummary(ctx, time.Now())
	if err != nil {
		slog.ErrorContext(ctx, "Failed to compute summary", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	s.render(w, r, "summary.html", newSummaryView(sum))
}

// handleTransactionList renders the ledger partial. It honors two query
// parameters: q (case-insensitive substring on the description) and
// category (exact match on the label value).
func (s *Server) handleTransactionList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	txs, err := s.getTransactions(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to list transactions", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	query := strings.ToLower(sanitizeInput(r.URL.Query().Get("q")))
	filter := core.Category(sanitizeInput(r.URL.Query().Get("category")))

	filtered := txs[:0:0]
	for _, t := range txs {
		if query != "" && !strings.Contains(strings.ToLower(t.Description), query) {
			continue
		}
		if filter != "" && t.Category != filter {
			continue
		}
		filtered = append(filtered, t)
	}

	view := struct {
		Transactions []transactionView
		Query        string
		Filter       core.Category
	}{
		Transactions: newTransactionViews(filtered),
		Query:        query,
		Filter:       filter,
	}
	s.render(w, r, "transactions.html", view)
}

func (s *Server) handleGoals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	insights, err := s.service.Insights(ctx, time.Now())
	if err != nil {
		slog.ErrorContext(ctx, "Failed to derive goal progress", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	s.render(w, r, "goals.html", newInsightsView(insights).Goals)
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	insights, err := s.service.Insights(ctx, time.Now())
	if err != nil {
		slog.ErrorContext(ctx, "Failed to derive insights", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	s.render(w, r, "insights.html", newInsightsView(insights))
}

// handleExportCSV streams the full ledger as a CSV download, newest first.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	txs, err := s.service.Transactions(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to list transactions", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=transactions-%s.csv", time.Now().Format("2006-01-02")))

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"id", "date", "description", "amount", "category", "kind", "recurring"})
	for _, t := range txs {
		_ = cw.Write([]string{
			t.ID,
			t.OccurredAt.Format(time.RFC3339),
			t.Description,
			strconv.FormatFloat(t.Amount.Dollars(), 'f', 2, 64),
			string(t.Category),
			string(t.Kind),
			strconv.FormatBool(t.Recurring),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.ErrorContext(ctx, "Failed writing CSV export", "error", err)
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render template", "template", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func newSummaryView(sum core.Summary) summaryView {
	totals := make([]categoryTotalView, 0, len(sum.CategoryTotals))
	for _, c := range core.Categories() {
		if total, ok := sum.CategoryTotals[c]; ok {
			totals = append(totals, categoryTotalView{
				Category: c,
				Label:    c.Label(),
				Total:    formatDollars(total.Cents),
			})
		}
	}
	return summaryView{
		MonthlySpent:   formatDollars(sum.MonthlySpent.Cents),
		TotalIncome:    formatDollars(sum.TotalIncome.Cents),
		TotalExpenses:  formatDollars(sum.TotalExpenses.Cents),
		DailyAverage:   formatDollars(sum.DailyAverage.Cents),
		BudgetPercent:  sum.BudgetPercent,
		BudgetStatus:   sum.BudgetStatus,
		BudgetLimit:    formatDollars(stats.BudgetLimit.Cents),
		CategoryTotals: totals,
	}
}

func newTransactionViews(txs []core.Transaction) []transactionView {
	views := make([]transactionView, 0, len(txs))
	for _, t := range txs {
		views = append(views, transactionView{
			ID:          t.ID,
			Description: t.Description,
			Amount:      formatDollars(t.Amount.Cents),
			Category:    t.Category,
			Label:       t.Category.Label(),
			Kind:        t.Kind,
			Date:        t.OccurredAt.Format("Jan 2, 2006"),
			Recurring:   t.Recurring,
		})
	}
	return views
}

func newAccountViews(accounts []core.Account) []accountView {
	views := make([]accountView, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, accountView{
			Name:    a.Name,
			Type:    a.Type,
			Balance: formatDollars(a.Balance.Cents),
		})
	}
	return views
}

func newInsightsView(in core.Insights) insightsView {
	goals := make([]goalView, 0, len(in.GoalProgress))
	for _, g := range in.GoalProgress {
		goals = append(goals, goalView{
			Title:          g.Title,
			Target:         formatDollars(g.Target.Cents),
			Current:        formatDollars(g.Current.Cents),
			DisplayPercent: g.DisplayPercent(),
			Percent:        g.Percent,
		})
	}
	return insightsView{
		PredictedMonthlySpend: formatDollars(in.PredictedMonthlySpend.Cents),
		Recommendation:        in.Recommendation,
		Goals:                 goals,
		DidYouKnow:            in.DidYouKnow,
	}
}

func expenseCategoryViews() []categoryView {
	cats := core.ExpenseCategories()
	views := make([]categoryView, 0, len(cats))
	for _, c := range cats {
		views = append(views, categoryView{Value: c, Label: c.Label()})
	}
	return views
}
