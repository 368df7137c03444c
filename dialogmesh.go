// Package dialogmesh provides a high-level façade over the dialog engine and
// its service abstractions (context store, knowledge base, audit sink &
// logging) enabling rapid construction of menu-based conversational
// assistants. Most applications interact with this package by:
//  1. Creating a Bot via New() (optionally overriding default in-memory services)
//  2. Feeding inbound (user, text) pairs to Handle
//  3. Delivering the returned response over their transport of choice
//
// The façade delegates orchestration to dialog.Engine while keeping setup and
// usage ergonomics concise. All defaults are safe for local development and
// testing; production deployments typically supply a durable audit sink and a
// structured logger.
package dialogmesh

import (
	"context"

	"github.com/hupe1980/dialogmesh/audit"
	"github.com/hupe1980/dialogmesh/contextstore"
	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/dialog"
	"github.com/hupe1980/dialogmesh/knowledge"
	"github.com/hupe1980/dialogmesh/logging"
)

// Options configures the Bot instance.
type Options struct {
	// Knowledge is the static knowledge base (defaults to an empty base).
	Knowledge *knowledge.Base

	// Store persists conversation contexts (defaults to in-memory).
	Store core.ContextStore

	// Sink receives audit events (defaults to in-memory).
	Sink core.AuditSink

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger

	// SimilarityThreshold is the fuzzy acceptance cutoff in (0,1).
	SimilarityThreshold float64

	// DefaultResponse is the fallback text for total non-matches.
	DefaultResponse string

	// WelcomeMessage is the main-menu greeting ({user} placeholder).
	WelcomeMessage string
}

// Bot is the high-level façade aggregating the dialog engine and services.
type Bot struct {
	opts   Options
	engine *dialog.Engine
}

// New creates a new Bot instance with optional overrides. Any unset service
// is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *Bot {
	opts := Options{
		Knowledge:           knowledge.Empty(),
		Store:               contextstore.NewInMemoryStore(),
		Sink:                audit.NewInMemorySink(),
		Logger:              logging.NoOpLogger{},
		SimilarityThreshold: dialog.DefaultSimilarityThreshold,
		DefaultResponse:     dialog.DefaultResponseText,
		WelcomeMessage:      dialog.DefaultWelcomeMessage,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	engine := dialog.New(func(o *dialog.Options) {
		o.Knowledge = opts.Knowledge
		o.Store = opts.Store
		o.Sink = opts.Sink
		o.Logger = opts.Logger
		o.SimilarityThreshold = opts.SimilarityThreshold
		o.DefaultResponse = opts.DefaultResponse
		o.WelcomeMessage = opts.WelcomeMessage
	})

	return &Bot{opts: opts, engine: engine}
}

// Handle processes one inbound turn and returns the outbound response.
func (b *Bot) Handle(ctx context.Context, userID, text string) (core.Response, error) {
	return b.engine.Handle(ctx, userID, text)
}

// Engine exposes the underlying dialog engine for advanced embedding.
func (b *Bot) Engine() *dialog.Engine { return b.engine }

// Store returns the configured context store.
func (b *Bot) Store() core.ContextStore { return b.opts.Store }

// Sink returns the configured audit sink.
func (b *Bot) Sink() core.AuditSink { return b.opts.Sink }
