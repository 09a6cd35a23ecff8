package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/germanamz/minutes/pkg/apierror"
	"github.com/germanamz/minutes/pkg/logging"
	"github.com/germanamz/minutes/pkg/modeladapter"
	"github.com/germanamz/minutes/pkg/modeladapter/usage"
	"github.com/germanamz/minutes/pkg/providers/provider"
	"github.com/germanamz/minutes/pkg/requestctx"
	"github.com/germanamz/minutes/pkg/summary"
)

// Outcome is the result of one successful summarization cycle.
type Outcome struct {
	RequestID string
	Provider  string
	Summary   summary.Summary
	Strategy  summary.Strategy
	Usage     usage.TokenCount
	Duration  time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithDispatcher replaces the HTTP dispatcher.
func WithDispatcher(d modeladapter.Dispatcher) Option {
	return func(e *Engine) { e.dispatcher = d }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithClock sets the clock used for prompt dates, fallback summaries, and
// rate-limit resets.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithCatalog replaces the built-in provider catalog.
func WithCatalog(c *provider.Catalog) Option {
	return func(e *Engine) { e.catalog = c }
}

// Engine runs summarization cycles against the provider catalog and hands
// out sessions that track their state.
type Engine struct {
	cfg        Config
	catalog    *provider.Catalog
	builder    *Builder
	dispatcher modeladapter.Dispatcher
	logger     *slog.Logger
	validate   *validator.Validate
	estimator  modeladapter.TokenEstimator
	events     *EventBus
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
	nextID   int
}

// New creates an Engine from the given configuration. Provider overrides in
// cfg are applied to the catalog.
func New(cfg Config, opts ...Option) (*Engine, error) {
	e := &Engine{
		cfg:      cfg,
		catalog:  provider.BuiltinCatalog(),
		logger:   logging.Discard(),
		validate: newValidator(),
		events:   NewEventBus(),
		now:      time.Now,
		sessions: make(map[string]*Session),
	}

	for _, opt := range opts {
		opt(e)
	}

	if err := cfg.Validate(e.catalog); err != nil {
		return nil, err
	}

	catalog, err := e.catalog.WithOverrides(cfg.overrides())
	if err != nil {
		return nil, fmt.Errorf("engine: providers: %w", err)
	}
	e.catalog = catalog
	e.builder = NewBuilder(catalog, e.now)

	if e.dispatcher == nil {
		e.dispatcher = modeladapter.NewHTTPDispatcher(nil)
	}

	timeout, _ := cfg.timeout()
	e.dispatcher = modeladapter.Chain(e.dispatcher,
		modeladapter.Recovery(),
		modeladapter.Logger(e.logger),
		modeladapter.Timeout(timeout),
	)

	return e, nil
}

// Catalog returns the provider catalog in use.
func (e *Engine) Catalog() *provider.Catalog { return e.catalog }

// Builder returns the request builder.
func (e *Engine) Builder() *Builder { return e.builder }

// Config returns the configuration the engine was created with.
func (e *Engine) Config() Config { return e.cfg }

// Events returns the engine-wide event bus.
func (e *Engine) Events() *EventBus { return e.events }

// NewSession creates a session in the Idle state.
func (e *Engine) NewSession() *Session {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	id := fmt.Sprintf("session-%d", e.nextID)
	s := newSession(id, e)
	e.sessions[id] = s

	return s
}

// Session returns an existing session by ID.
func (e *Engine) Session(id string) (*Session, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[id]
	return s, ok
}

// Validate checks rc without contacting any provider. Failures are
// *apierror.Error values of kind KindValidation or KindUnknownProvider.
func (e *Engine) Validate(rc RequestContext) error {
	if err := validateRequest(e.validate, rc); err != nil {
		return err
	}

	if !e.catalog.Has(rc.ProviderID) {
		return apierror.From(&provider.UnknownProviderError{ID: rc.ProviderID})
	}

	return nil
}

// Summarize runs one cycle: validate, build, dispatch, classify, extract,
// and parse. Every returned error is an *apierror.Error.
func (e *Engine) Summarize(ctx context.Context, rc RequestContext) (Outcome, error) {
	if err := e.Validate(rc); err != nil {
		return Outcome{}, err
	}

	return e.run(ctx, uuid.NewString(), rc)
}

// run performs a cycle for an already validated rc.
func (e *Engine) run(ctx context.Context, requestID string, rc RequestContext) (Outcome, error) {
	ctx = requestctx.WithRequestID(ctx, requestID)
	log := e.logger.With("request_id", requestID, "provider", rc.ProviderID)
	now := e.now()

	_, adapter, err := e.builder.Adapter(rc.ProviderID)
	if err != nil {
		return Outcome{}, e.fail(ctx, log, apierror.From(err))
	}

	prompt := summary.Prompt(rc.Notes, now)
	req, err := buildWith(adapter, prompt, rc.Credential)
	if err != nil {
		return Outcome{}, e.fail(ctx, log, apierror.From(err))
	}

	log.DebugContext(ctx, "dispatching request", "prompt_chars", len(prompt))

	start := time.Now()
	resp, err := e.dispatcher.Send(ctx, req)
	elapsed := time.Since(start)
	if err != nil {
		return Outcome{}, e.fail(ctx, log, apierror.From(err), "duration", elapsed)
	}

	if ae := apierror.Classify(resp, now); ae != nil {
		return Outcome{}, e.fail(ctx, log, ae, "duration", elapsed)
	}

	completion, err := adapter.Extract(resp.Body)
	if err != nil {
		return Outcome{}, e.fail(ctx, log, apierror.From(err), "status", resp.StatusCode, "duration", elapsed)
	}

	tokens := completion.Usage
	if tokens.IsZero() {
		tokens = usage.TokenCount{
			InputTokens:  e.estimator.EstimatePrompt(prompt),
			OutputTokens: e.estimator.EstimateCompletion(completion.Text),
			Estimated:    true,
		}
	}

	res := summary.Parse(completion.Text, now)

	log.InfoContext(ctx, "summary ready",
		"status", resp.StatusCode,
		"duration", elapsed,
		"strategy", res.Strategy,
		"input_tokens", tokens.InputTokens,
		"output_tokens", tokens.OutputTokens,
		"estimated", tokens.Estimated,
	)

	return Outcome{
		RequestID: requestID,
		Provider:  rc.ProviderID,
		Summary:   res.Summary,
		Strategy:  res.Strategy,
		Usage:     tokens,
		Duration:  elapsed,
	}, nil
}

func (e *Engine) fail(ctx context.Context, log *slog.Logger, ae *apierror.Error, attrs ...any) *apierror.Error {
	attrs = append(attrs, "kind", ae.Kind, "error", ae.Error())
	if ae.StatusCode != 0 {
		attrs = append(attrs, "status", ae.StatusCode)
	}
	log.ErrorContext(ctx, "summarize failed", attrs...)

	return ae
}
