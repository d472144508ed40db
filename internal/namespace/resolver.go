package namespace

import (
	"errors"
	"fmt"

	"github.com/fbkclanna/phpclass/internal/workspace"
	"go.uber.org/zap"
)

// Request describes one resolution.
type Request struct {
	Folder string
	// Root bounds the upward manifest search. Empty means only Folder is
	// searched.
	Root string
	// Override is an operator-supplied manifest file or directory.
	Override string
}

// Result is the outcome of a resolution. Match is nil when the folder is
// the unclaimed manifest directory at the workspace root or nothing claims
// it.
type Result struct {
	Folder    string             `json:"folder"`
	Namespace string             `json:"namespace"`
	Resolved  bool               `json:"resolved"`
	Location  workspace.Location `json:"manifest"`
	Match     *Match             `json:"match,omitempty"`
}

// Resolver runs the locate, collect and resolve pipeline. It keeps no state
// between calls and is safe for concurrent use.
type Resolver struct {
	prober workspace.Prober
	logger *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithProber replaces the filesystem probe used by the manifest search.
func WithProber(p workspace.Prober) Option {
	return func(r *Resolver) { r.prober = p }
}

// WithLogger sets the logger for debug tracing.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver creates a Resolver probing the local filesystem.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{prober: workspace.OSProber{}, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve computes the namespace for req.Folder.
//
// Errors wrap workspace.ErrManifestNotFound or composer.ErrUnreadable when
// resolution cannot proceed. ErrNotResolved is returned together with a
// non-nil Result so callers can still report which manifest was used.
func (r *Resolver) Resolve(req Request) (*Result, error) {
	ctx, err := workspace.Load(req.Folder, req.Root, req.Override, r.prober)
	if err != nil {
		r.logger.Debug("manifest unavailable",
			zap.String("folder", req.Folder),
			zap.String("root", req.Root),
			zap.Error(err))
		return nil, err
	}

	rules := ctx.Rules()
	r.logger.Debug("manifest loaded",
		zap.String("manifest", ctx.Location.File),
		zap.Int("rules", len(rules)))

	res := &Result{Folder: ctx.Folder, Location: ctx.Location}
	m, err := best(ctx.Folder, ctx.Location, rules)
	if errors.Is(err, ErrNotResolved) {
		r.logger.Debug("no autoload rule claims folder", zap.String("folder", ctx.Folder))
		return res, fmt.Errorf("%w: %s", ErrNotResolved, ctx.Folder)
	}

	res.Resolved = true
	if m != nil {
		res.Match = m
		res.Namespace = m.Namespace()
		r.logger.Debug("namespace resolved",
			zap.String("namespace", res.Namespace),
			zap.Stringer("kind", m.Rule.Kind),
			zap.String("prefix", m.Rule.Prefix),
			zap.String("dir", m.Dir))
	}
	return res, nil
}
