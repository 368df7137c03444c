package dialog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hupe1980/dialogmesh/audit"
	"github.com/hupe1980/dialogmesh/contextstore"
	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/internal/util"
	"github.com/hupe1980/dialogmesh/knowledge"
	"github.com/hupe1980/dialogmesh/logging"
	"github.com/hupe1980/dialogmesh/resolver"
	"github.com/hupe1980/dialogmesh/textnorm"
)

// Defaults applied by New when the corresponding option is unset.
const (
	// DefaultSimilarityThreshold is the acceptance cutoff for fuzzy intent and
	// menu-option matching.
	DefaultSimilarityThreshold = 0.45

	// DefaultResponseText is the fallback for input that matches nothing.
	DefaultResponseText = "Lo siento, no entendí tu mensaje. 🙏 Escribe 'menu' para ver las opciones."

	// DefaultWelcomeMessage greets the user on the main menu. The {user}
	// placeholder is replaced with the user identifier.
	DefaultWelcomeMessage = "¡Hola {user}! 👋 Soy el asistente académico. Estoy aquí para resolver tus dudas sobre nuestros cursos."
)

// Options configures an Engine instance using the functional options pattern.
type Options struct {
	// Store persists per-user conversation contexts. Defaults to an in-memory
	// implementation.
	Store core.ContextStore

	// Sink receives audit events. Defaults to the in-memory sink; production
	// deployments supply a durable backend. Sink failures are logged and never
	// fail a turn.
	Sink core.AuditSink

	// Knowledge is the static knowledge base. An empty base is valid; the
	// engine then degrades to always-unresolved fuzzy matching.
	Knowledge *knowledge.Base

	// Logger provides structured logging. Defaults to NoOp.
	Logger logging.Logger

	// SimilarityThreshold is the fuzzy acceptance cutoff in (0,1).
	SimilarityThreshold float64

	// DefaultResponse overrides the fallback text for total non-matches.
	DefaultResponse string

	// WelcomeMessage overrides the main-menu greeting ({user} placeholder).
	WelcomeMessage string

	// Chooser picks response template indices. Injectable for deterministic
	// tests; defaults to the resolver's uniform random choice.
	Chooser func(n int) int

	// Now supplies event timestamps. Injectable for deterministic tests.
	Now func() time.Time
}

// Engine is the dialog state machine orchestrator.
type Engine struct {
	store           core.ContextStore
	sink            core.AuditSink
	kb              *knowledge.Base
	resolver        *resolver.Resolver
	logger          logging.Logger
	threshold       float64
	defaultResponse string
	welcome         string
	now             func() time.Time

	locks userLocks
}

// New creates an Engine with in-memory defaults suitable for tests and demos.
func New(optFns ...func(o *Options)) *Engine {
	opts := Options{
		Store:               contextstore.NewInMemoryStore(),
		Sink:                audit.NewInMemorySink(),
		Knowledge:           knowledge.Empty(),
		Logger:              logging.NoOpLogger{},
		SimilarityThreshold: DefaultSimilarityThreshold,
		DefaultResponse:     DefaultResponseText,
		WelcomeMessage:      DefaultWelcomeMessage,
		Now:                 time.Now,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Knowledge == nil {
		opts.Knowledge = knowledge.Empty()
	}

	res := resolver.New(opts.Knowledge, func(ro *resolver.Options) {
		if opts.Chooser != nil {
			ro.Chooser = opts.Chooser
		}
	})

	return &Engine{
		store:           opts.Store,
		sink:            opts.Sink,
		kb:              opts.Knowledge,
		resolver:        res,
		logger:          opts.Logger,
		threshold:       opts.SimilarityThreshold,
		defaultResponse: opts.DefaultResponse,
		welcome:         opts.WelcomeMessage,
		now:             opts.Now,
	}
}

// Handle processes one inbound turn and returns the outbound response. It is
// total over (any state, any text): user input never produces an error. A
// non-nil error signals an internal (knowledge authoring or storage) problem;
// the returned response still carries a user-facing apology in that case so
// callers can always deliver something.
func (e *Engine) Handle(ctx context.Context, userID, text string) (core.Response, error) {
	unlock := e.locks.acquire(userID)
	defer unlock()

	conv, err := e.store.Get(userID)
	if err != nil {
		return core.NewResponse(internalErrorText), fmt.Errorf("load context for %q: %w", userID, err)
	}
	if !conv.Step.Valid() {
		// Defensive default: an unrecognized step never crashes a turn.
		conv.ResetToMenu()
		e.save(conv)
		return core.NewResponse(e.defaultResponse), nil
	}

	norm := textnorm.Normalize(text)

	// Global pre-emption, skipped while a free-text field is being collected.
	if conv.Step != core.StepWaitingContact && conv.Step != core.StepWaitingInscription && isBackCommand(norm) {
		conv.ResetToMenu()
		e.save(conv)
		return e.menuResponse(userID), nil
	}

	var resp core.Response
	var handleErr error
	switch conv.Step {
	case core.StepMainMenu:
		resp, handleErr = e.handleMainMenu(ctx, conv, text, norm)
	case core.StepCourseSelected:
		resp, handleErr = e.handleCourseSelected(ctx, conv, text, norm)
	case core.StepCourseDetail:
		resp, handleErr = e.handleCourseDetail(ctx, conv, text, norm)
	case core.StepWaitingContact:
		resp = e.handleWaitingContact(ctx, conv, text)
	case core.StepWaitingInscription:
		resp = e.handleWaitingInscription(ctx, conv, text)
	}

	e.save(conv)
	e.logger.Debug("turn handled", "user_id", userID, "step", conv.Step.String(), "intent", conv.LastIntent)
	return resp, handleErr
}

func (e *Engine) save(conv *core.Context) {
	if err := e.store.Save(conv); err != nil {
		e.logger.Error("save context failed", "user_id", conv.UserID, "error", err)
	}
}

// audit records an event fire-and-forget: failures are reported to operators
// via the logger and never block or fail the response path.
func (e *Engine) audit(ctx context.Context, ev core.AuditEvent) {
	if e.sink == nil {
		return
	}
	if err := e.sink.Record(ctx, ev); err != nil {
		e.logger.Error("audit write failed", "kind", ev.Kind(), "user_id", ev.User(), "error", err)
	}
}

// menuResponse is the canonical greeting: rendered welcome plus the numbered
// course list, with the greeting entry's media when the base carries one.
func (e *Engine) menuResponse(userID string) core.Response {
	text := util.RenderTemplate(e.welcome, map[string]string{"user": userID})
	if list := e.courseList(); list != "" {
		text += "\n\n" + list
	}
	resp := core.NewResponse(text)
	if entry, ok := e.kb.Find(resolver.IntentGreeting); ok && entry.MediaRef != nil {
		resp.MediaRef = entry.MediaRef
	}
	return resp
}

func (e *Engine) courseList() string {
	courses := e.kb.Courses()
	if len(courses) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Elige una opción:")
	for _, c := range courses {
		b.WriteString("\n")
		b.WriteString(c.ID)
		b.WriteString(". ")
		if c.Emoji != "" {
			b.WriteString(c.Emoji)
			b.WriteString(" ")
		}
		b.WriteString(c.DisplayName)
	}
	return b.String()
}

// userLocks serializes turns per user id. Different users never contend on
// the same lock; entries are retained for the process lifetime, bounded by
// the user population.
type userLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func (l *userLocks) acquire(id string) func() {
	l.mu.Lock()
	if l.m == nil {
		l.m = make(map[string]*sync.Mutex)
	}
	lk, ok := l.m[id]
	if !ok {
		lk = &sync.Mutex{}
		l.m[id] = lk
	}
	l.mu.Unlock()

	lk.Lock()
	return lk.Unlock
}
