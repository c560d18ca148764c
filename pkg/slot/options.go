package slot

import (
	stderrors "errors"
	"log/slog"

	"github.com/vango-dev/renderprop/internal/errors"
	"github.com/vango-dev/renderprop/pkg/merge"
	"github.com/vango-dev/renderprop/pkg/ref"
	"github.com/vango-dev/renderprop/pkg/vdom"
)

// Options holds resolver settings shared by every resolver variant.
type Options struct {
	// Refs are composed with the consumer's ref, after it.
	Refs []vdom.Ref

	// Composer, when set, memoizes the composed ref across renders.
	Composer *ref.Composer

	// Merger merges attribute maps. If nil, one is derived from Strict,
	// Logger, and ErrorHandler.
	Merger *merge.Merger

	// Logger receives strict-mode warnings. If nil, slog.Default() is used.
	Logger *slog.Logger

	// Strict reports malformed input (E010, E011) instead of silently
	// falling back.
	Strict bool

	// ErrorHandler receives strict-mode diagnostics. Match them with
	// errors.Is against ErrInvalidRender or merge.ErrHandlerNotChained.
	ErrorHandler func(error)
}

// Option configures a resolver call.
type Option func(*Options)

// NewOptions applies opts to a zero Options.
func NewOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithRefs adds refs that receive the resolved element alongside the
// consumer's ref.
func WithRefs(refs ...vdom.Ref) Option {
	return func(o *Options) {
		o.Refs = append(o.Refs, refs...)
	}
}

// WithComposer keeps the composed ref stable across renders. Without it,
// every resolve composes a fresh ref.
func WithComposer(c *ref.Composer) Option {
	return func(o *Options) {
		o.Composer = c
	}
}

// WithMerger sets the attribute merger.
func WithMerger(m *merge.Merger) Option {
	return func(o *Options) {
		o.Merger = m
	}
}

// WithLogger sets the logger for strict-mode warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithStrict enables strict-mode diagnostics.
func WithStrict(strict bool) Option {
	return func(o *Options) {
		o.Strict = strict
	}
}

// WithErrorHandler sets the strict-mode diagnostics sink.
func WithErrorHandler(fn func(error)) Option {
	return func(o *Options) {
		o.ErrorHandler = fn
	}
}

// MergeAttrs merges override over base with the configured Merger.
func (o *Options) MergeAttrs(base, override vdom.Props) vdom.Props {
	return o.merger().Attributes(base, override)
}

func (o *Options) merger() *merge.Merger {
	if o.Merger != nil {
		return o.Merger
	}
	if !o.Strict {
		return merge.Default
	}
	o.Merger = &merge.Merger{
		Strict:  true,
		Logger:  o.Logger,
		OnError: o.ErrorHandler,
	}
	return o.Merger
}

// ComposeRef composes the consumer's ref with o.Refs.
func (o *Options) ComposeRef(consumer vdom.Ref) vdom.Ref {
	refs := make([]vdom.Ref, 0, len(o.Refs)+1)
	refs = append(refs, consumer)
	refs = append(refs, o.Refs...)
	if o.Composer != nil {
		return o.Composer.Compose(refs...)
	}
	return ref.Compose(refs...)
}

// ErrInvalidRender is matched by errors.Is for render overrides that are
// neither an element nor a non-nil function.
var ErrInvalidRender error = errors.New("E011")

// Report logs err as a warning and hands it to ErrorHandler. It does
// nothing outside strict mode. Coded errors log their code and detail.
func (o *Options) Report(err error, args ...any) {
	if o == nil || !o.Strict || err == nil {
		return
	}
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	msg := err.Error()
	var coded *errors.Error
	if stderrors.As(err, &coded) {
		msg = coded.Message
		args = append([]any{"code", coded.Code, "detail", coded.Detail}, args...)
	}
	logger.Warn(msg, args...)
	if o.ErrorHandler != nil {
		o.ErrorHandler(err)
	}
}
