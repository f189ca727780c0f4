package gowmt

import (
	"runtime"

	"github.com/maseology/gowmt/eos"
	"go.uber.org/zap"
)

type options struct {
	det     bool
	workers int
	verbose bool
	lg      *zap.Logger
	cache   *eos.Cache
}

// Option configures an evaluation or a binning pass.
type Option func(*options)

// Deterministic forces a single-pass accumulation in cell-index order so
// results are bitwise reproducible across chunkings.
func Deterministic() Option { return func(o *options) { o.det = true } }

// Workers caps the goroutines used for chunked binning and per-term
// evaluation.
func Workers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// Verbose enables the timer and progress bar on long evaluations.
func Verbose() Option { return func(o *options) { o.verbose = true } }

// WithLogger attaches a structured logger; silent by default.
func WithLogger(lg *zap.Logger) Option {
	return func(o *options) {
		if lg != nil {
			o.lg = lg
		}
	}
}

// WithCache memoizes coordinate resolution in a caller-owned cache.
func WithCache(c *eos.Cache) Option { return func(o *options) { o.cache = c } }

func newOptions(opts []Option) options {
	o := options{workers: runtime.NumCPU(), lg: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
