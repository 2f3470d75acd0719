// Package http serves the dashboard UI and the engine's HTTP surface.
// Pages are server-rendered templates; the dashboard refreshes itself
// through HTMX partials.
package http

import (
	"context"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/cache"
	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/core"
	"github.com/narramanikanta858-lang/uni-fin-guardian/internal/services"
	appweb "github.com/narramanikanta858-lang/uni-fin-guardian/web"
)

type Server struct {
	http.Server
	service   *services.TransactionService
	templates *template.Template

	rateLimiter *rateLimiter

	// Derived data is cheap but rendered on every partial refresh, so
	// short-lived caches sit in front of the recompute.
	summaryCache *cache.LRU[core.Summary]
	txCache      *cache.LRU[[]core.Transaction]
	cacheManager *cache.Manager

	shutdownOnce sync.Once
}

// NewServer configures routes and templates, returning a ready-to-run server.
func NewServer(addr string, service *services.TransactionService) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		service:      service,
		rateLimiter:  newRateLimiter(),
		summaryCache: cache.NewLRU[core.Summary](16, 30*time.Second),
		txCache:      cache.NewLRU[[]core.Transaction](16, 30*time.Second),
		cacheManager: cache.NewManager(),
	}

	s.cacheManager.Register(s.summaryCache)
	s.cacheManager.Register(s.txCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		slog.Warn("Failed parsing templates", "error", err)
	}
	s.templates = t

	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600, immutable")
			static.ServeHTTP(w, r)
		}))
	} else {
		slog.Warn("Failed to mount embedded static FS", "error", err)
	}

	mux.HandleFunc("/", s.withSecurityHeaders(s.handleDashboard))
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)
	mux.HandleFunc("/transactions", s.withSecurityHeaders(s.handleSubmitTransaction))
	mux.HandleFunc("/transactions/export", s.withSecurityHeaders(s.handleExportCSV))
	// Dashboard partials
	mux.HandleFunc("/ui/summary", s.withSecurityHeaders(s.handleSummary))
	mux.HandleFunc("/ui/transactions", s.withSecurityHeaders(s.handleTransactionList))
	mux.HandleFunc("/ui/goals", s.withSecurityHeaders(s.handleGoals))
	mux.HandleFunc("/ui/insights", s.withSecurityHeaders(s.handleInsights))

	return s
}

// Shutdown stops the HTTP server and the cache and limiter cleanup loops.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		s.rateLimiter.stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func (s *Server) invalidateDerived() {
	// Appends change every derived view; drop both caches whole.
	s.summaryCache.Delete(summaryKey(time.Now()))
	s.txCache.Delete(ledgerKey)
}

const ledgerKey = "ledger"

func summaryKey(now time.Time) string {
	// The summary depends on the wall-clock day (daily average divisor),
	// so the key carries the date.
	return now.Format("2006-01-02")
}

func (s *Server) getSummary(ctx context.Context, now time.Time) (core.Summary, error) {
	key := summaryKey(now)
	if sum, ok := s.summaryCache.Get(key); ok {
		slog.DebugContext(ctx, "Summary cache hit", "key", key)
		return sum, nil
	}
	sum, err := s.service.Summary(ctx, now)
	if err != nil {
		return core.Summary{}, err
	}
	s.summaryCache.Set(key, sum)
	return sum, nil
}

func (s *Server) getTransactions(ctx context.Context) ([]core.Transaction, error) {
	if txs, ok := s.txCache.Get(ledgerKey); ok {
		out := make([]core.Transaction, len(txs))
		copy(out, txs)
		return out, nil
	}
	txs, err := s.service.Transactions(ctx)
	if err != nil {
		return nil, err
	}
	s.txCache.Set(ledgerKey, txs)
	return txs, nil
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
