// dialogmesh serves the academic course-advisor bot over HTTP and WebSocket.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hupe1980/dialogmesh"
	"github.com/hupe1980/dialogmesh/audit"
	auditsqlite "github.com/hupe1980/dialogmesh/audit/sqlite"
	"github.com/hupe1980/dialogmesh/config"
	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/knowledge"
	"github.com/hupe1980/dialogmesh/logging"
	"github.com/hupe1980/dialogmesh/transport"
	"github.com/joho/godotenv"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.NewBotLogger(parseLevel(cfg.LogLevel), cfg.LogFormat)

	kb, err := knowledge.Load(cfg.KnowledgePath)
	if err != nil {
		slog.Error("Failed to load knowledge base", "path", cfg.KnowledgePath, "error", err)
		os.Exit(1)
	}
	if kb.Len() == 0 {
		slog.Warn("Knowledge base is empty, every query will be unresolved", "path", cfg.KnowledgePath)
	}
	if err := kb.Validate(); err != nil {
		slog.Error("Knowledge base failed validation", "error", err)
		os.Exit(1)
	}
	checkAssets(kb, cfg.WelcomeMedia)

	sink, closeSink, err := newSink(cfg)
	if err != nil {
		slog.Error("Failed to initialize audit sink", "backend", cfg.AuditBackend, "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := closeSink(); closeErr != nil {
			slog.Error("Failed to close audit sink", "error", closeErr)
		}
	}()

	bot := dialogmesh.New(func(o *dialogmesh.Options) {
		o.Knowledge = kb
		o.Sink = sink
		o.Logger = logger.WithComponent("dialog")
		o.SimilarityThreshold = cfg.SimilarityThreshold
		if cfg.DefaultResponse != "" {
			o.DefaultResponse = cfg.DefaultResponse
		}
		if cfg.WelcomeMessage != "" {
			o.WelcomeMessage = cfg.WelcomeMessage
		}
	})

	handler := transport.NewHandler(bot, cfg.AllowedUsers, logger.WithComponent("transport"))
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Bot listening", "port", cfg.Port, "courses", len(kb.Courses()), "allow_all", cfg.AllowsAll())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}

func newSink(cfg *config.Config) (core.AuditSink, func() error, error) {
	switch cfg.AuditBackend {
	case config.AuditBackendSQLite:
		s, err := auditsqlite.New(cfg.AuditDBPath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		s, err := audit.NewFileSink(cfg.AuditPath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}
}

// checkAssets warns about media references that do not resolve to files so
// authoring mistakes surface at startup instead of mid-conversation.
func checkAssets(kb *knowledge.Base, welcomeMedia string) {
	refs := make([]string, 0, kb.Len()+1)
	if welcomeMedia != "" {
		refs = append(refs, welcomeMedia)
	}
	for _, e := range kb.Entries() {
		if e.MediaRef != nil && *e.MediaRef != "" {
			refs = append(refs, *e.MediaRef)
		}
	}
	for _, ref := range refs {
		if _, err := os.Stat(ref); err != nil {
			slog.Warn("Media asset missing or inaccessible", "ref", ref, "error", err)
		}
	}
}

func parseLevel(s string) logging.LogLevel {
	switch s {
	case "debug":
		return logging.LogLevelDebug
	case "warn":
		return logging.LogLevelWarn
	case "error":
		return logging.LogLevelError
	default:
		return logging.LogLevelInfo
	}
}
