// Package hooks holds the per-entity state containers of the admin console.
//
// A hook keeps the last successfully fetched data, a loading flag and a
// user-facing error message. It loads when mounted and whenever its filters
// change by value, and reloads after every successful mutation so that the
// held state converges on what the backend reports. Updates are never applied
// optimistically.
//
// Overlapping loads are resolved in issue order: every load takes a new
// generation number and cancels the one in flight, and only the latest
// generation may write state.
package hooks

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// Filter is implemented by the filter tuples hooks are keyed on.
type Filter[F any] interface {
	Equal(F) bool
}

type Option func(*options)

type options struct {
	log      *slog.Logger
	onChange func()
}

func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithOnChange registers a callback invoked after every state transition,
// outside the hook's lock. Presentation code uses it to re-render.
func WithOnChange(fn func()) Option {
	return func(o *options) { o.onChange = fn }
}

func buildOptions(opts []Option) options {
	o := options{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type fetchFunc[V any, F any] func(ctx context.Context, filters F) (V, error)

// loader is the state machine shared by all hooks. V is the held data; its
// zero value is the "empty" state shown after a failed load.
type loader[V any, F Filter[F]] struct {
	name  string
	fetch fetchFunc[V, F]
	log   *slog.Logger

	onChange func()

	mu        sync.Mutex
	filters   F
	data      V
	loading   bool
	errMsg    string
	gen       uint64
	cancel    context.CancelFunc
	mounted   bool
	unmounted bool
}

func newLoader[V any, F Filter[F]](name string, filters F, fetch fetchFunc[V, F], opts []Option) *loader[V, F] {
	o := buildOptions(opts)
	return &loader[V, F]{
		name:     name,
		fetch:    fetch,
		log:      o.log.With("hook", name),
		onChange: o.onChange,
		filters:  filters,
		loading:  true,
	}
}

func (l *loader[V, F]) mount(ctx context.Context) {
	l.mu.Lock()
	if l.mounted || l.unmounted {
		l.mu.Unlock()
		return
	}
	l.mounted = true
	l.mu.Unlock()
	l.load(ctx)
}

// unmount cancels the in-flight load; responses arriving later are dropped
// and further loads are no-ops.
func (l *loader[V, F]) unmount() {
	l.mu.Lock()
	l.unmounted = true
	l.gen++
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.mu.Unlock()
}

// setFilters stores f and reloads when it differs by value from the current
// filters. Before mount the filters are only stored.
func (l *loader[V, F]) setFilters(ctx context.Context, f F) {
	l.mu.Lock()
	if l.filters.Equal(f) {
		l.mu.Unlock()
		return
	}
	l.filters = f
	mounted := l.mounted
	l.mu.Unlock()
	if mounted {
		l.load(ctx)
	}
}

func (l *loader[V, F]) currentFilters() F {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filters
}

func (l *loader[V, F]) load(ctx context.Context) {
	l.mu.Lock()
	if l.unmounted {
		l.mu.Unlock()
		return
	}
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	filters := l.filters
	l.loading = true
	l.mu.Unlock()
	l.notify()

	defer func() {
		cancel()
		l.mu.Lock()
		current := gen == l.gen
		if current {
			l.loading = false
			l.cancel = nil
		}
		l.mu.Unlock()
		if current {
			l.notify()
		}
	}()

	data, err := l.fetch(ctx, filters)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		l.log.Debug("discarding superseded response", "generation", gen)
		return
	}
	if err != nil {
		l.log.Error("load "+l.name+" failed", "error", err)
		var zero V
		l.data = zero
		l.errMsg = "Failed to load " + l.name
		return
	}
	l.data = data
	l.errMsg = ""
}

// mutate forwards one mutation and reloads on success. Failures are logged
// and returned as an *ActionError; the held state is left untouched.
func (l *loader[V, F]) mutate(ctx context.Context, action string, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		l.log.Error("failed to "+action, "error", err)
		return &ActionError{Action: action, Err: err}
	}
	l.load(ctx)
	return nil
}

func (l *loader[V, F]) snapshot() (data V, loading bool, errMsg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.data, l.loading, l.errMsg
}

func (l *loader[V, F]) notify() {
	if l.onChange != nil {
		l.onChange()
	}
}

// fetchOne wraps a single-item read so its failure is normalized like a
// mutation failure.
func fetchOne[T any](ctx context.Context, log *slog.Logger, action string, fn func(ctx context.Context) (T, error)) (T, error) {
	v, err := fn(ctx)
	if err != nil {
		log.Error("failed to "+action, "error", err)
		var zero T
		return zero, &ActionError{Action: action, Err: err}
	}
	return v, nil
}
