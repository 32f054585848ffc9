package pipeline

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/almanac/rulemap"
)

// SeedRange is one (start, length) pair of the bulk-mode seed list.
type SeedRange struct {
	Start  int64
	Length int64
}

// Options configures a Pipeline.
//   - Ctx:     cancels bulk mode between stages (default context.Background()).
//   - Workers: concurrent interval mappers per stage (default 1, sequential).
//   - Logger:  receives per-stage debug records (default discards).
type Options struct {
	Ctx     context.Context
	Workers int
	Logger  *slog.Logger
}

// Option represents a functional option for configuring a Pipeline.
type Option func(*Options)

// WithContext sets the context checked before every bulk stage.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithWorkers sets how many intervals of one stage are mapped concurrently.
// Values below 1 make New return ErrBadWorkers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger sets the structured logger used for stage diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns sequential, silent, non-cancellable options.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// normalize fills zero fields left by callers that built Options by hand.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
}

// Pipeline is an ordered, sealed list of RuleMaps.
type Pipeline struct {
	maps []rulemap.RuleMap
	opts Options
}
