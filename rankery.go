package rankery

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rankery/rankery/internal/engine"
	"github.com/rankery/rankery/internal/i18n"
	"github.com/rankery/rankery/internal/logging"
	"github.com/rankery/rankery/internal/policy"
	"github.com/rankery/rankery/pkg/adapters/memory"
	"github.com/rankery/rankery/pkg/domain"
	"github.com/rankery/rankery/pkg/observability"
	"github.com/rankery/rankery/pkg/ports"
	"github.com/rankery/rankery/pkg/session"
)

// Version is the library version, overridable at build time via -ldflags.
var Version = "0.1.0"

// Bot is the assembled conversation core: policy in front, engine behind,
// per-user serialized dispatch in between.
type Bot struct {
	store    ports.CatalogStore
	flows    ports.FlowStore
	pol      *policy.Policy
	sessions *session.Manager
	eng      *engine.Engine
	cat      *i18n.Catalog
	logger   *slog.Logger
	metrics  *observability.Metrics

	checker    ports.AdminChecker
	locker     ports.DistributedLocker
	language   string
	replyLimit int
	overrides  map[string]string
}

// Option configures the Bot.
type Option func(*Bot)

// WithLogger sets the structured logger for all components.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bot) {
		b.logger = logger
	}
}

// WithCatalogStore injects a custom catalog store (default: in-memory).
func WithCatalogStore(store ports.CatalogStore) Option {
	return func(b *Bot) {
		b.store = store
	}
}

// WithFlowStore injects a custom flow-context store (default: in-memory).
func WithFlowStore(flows ports.FlowStore) Option {
	return func(b *Bot) {
		b.flows = flows
	}
}

// WithAdminChecker supplies the transport's group-membership lookup.
// Without one, only private chats carry the admin capability.
func WithAdminChecker(checker ports.AdminChecker) Option {
	return func(b *Bot) {
		b.checker = checker
	}
}

// WithLocker adds distributed per-user locking for multi-replica setups.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(b *Bot) {
		b.locker = locker
	}
}

// WithLanguage selects the message catalog ("en" or "es").
func WithLanguage(lang string) Option {
	return func(b *Bot) {
		b.language = lang
	}
}

// WithMessageOverrides replaces individual message templates.
func WithMessageOverrides(overrides map[string]string) Option {
	return func(b *Bot) {
		b.overrides = overrides
	}
}

// WithReplyLimit overrides the reply truncation threshold in runes.
func WithReplyLimit(limit int) Option {
	return func(b *Bot) {
		b.replyLimit = limit
	}
}

// WithMetrics attaches Prometheus instrumentation.
func WithMetrics(m *observability.Metrics) Option {
	return func(b *Bot) {
		b.metrics = m
	}
}

// New assembles a Bot. All options are optional; the zero configuration
// is a single-process, English, in-memory bot.
func New(opts ...Option) (*Bot, error) {
	b := &Bot{
		language:   "en",
		replyLimit: engine.DefaultReplyLimit,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.store == nil {
		b.store = memory.NewCatalog(memory.WithLogger(b.logger))
	}
	if b.flows == nil {
		b.flows = memory.NewFlowStore()
	}

	b.cat = i18n.For(b.language)
	if len(b.overrides) > 0 {
		b.cat.ApplyOverrides(b.overrides)
	}

	b.pol = policy.New(b.checker, policy.WithLogger(b.logger))

	sessionOpts := []session.Option{session.WithLogger(b.logger)}
	if b.locker != nil {
		sessionOpts = append(sessionOpts, session.WithLocker(b.locker))
	}
	b.sessions = session.NewManager(sessionOpts...)

	b.eng = engine.New(b.store, b.flows, b.cat,
		engine.WithLogger(b.logger),
		engine.WithMetrics(b.metrics),
		engine.WithReplyLimit(b.replyLimit),
		engine.WithAdminFunc(b.pol.IsAdmin),
	)

	return b, nil
}

// Handle runs one intent through policy and engine. Intents for the same
// user are serialized; different users proceed concurrently.
//
// Command names are normalized (leading slash stripped, lowercased) before
// the access policy runs, so "DeleteList" and "/deletelist" gate the same.
func (b *Bot) Handle(ctx context.Context, in domain.Intent) (domain.Reply, error) {
	if in.Kind == domain.IntentCommand {
		in.Command = strings.ToLower(strings.TrimPrefix(in.Command, "/"))
	}
	if !b.pol.Authorize(ctx, in) {
		b.metrics.Denied()
		b.logger.Debug("intent denied", "user", in.UserID, "command", in.Command)
		return domain.Reply{Text: b.cat.Get(i18n.MsgAdminOnly)}, nil
	}

	var reply domain.Reply
	err := b.sessions.WithLock(ctx, in.UserID, func(ctx context.Context) error {
		var err error
		reply, err = b.eng.Handle(ctx, in)
		return err
	})
	if err != nil {
		return domain.Reply{}, fmt.Errorf("failed to handle intent: %w", err)
	}
	return reply, nil
}

// Store exposes the catalog store, mainly for tests and embedding hosts.
func (b *Bot) Store() ports.CatalogStore {
	return b.store
}
