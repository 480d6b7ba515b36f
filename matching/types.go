// File: types.go
// Role: Graph view contract, options, sentinel errors and shared constants.

package matching

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/blossom/core"
)

// Sentinel errors for matching computations.
var (
	// ErrGraphNil is returned if a nil graph view is passed.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrMatchingNil is returned if a nil *Matching is passed to Verify or Decompose.
	ErrMatchingNil = errors.New("matching: matching is nil")

	// ErrInvalidGraph classifies every *InvalidGraphError: the view exposed a
	// self-loop, a parallel edge, a directed edge or inconsistent adjacency.
	ErrInvalidGraph = errors.New("matching: invalid graph")

	// ErrPreconditionViolation signals an inconsistent matching state or a
	// broken forest invariant. It indicates a bug and is never retried.
	ErrPreconditionViolation = errors.New("matching: precondition violation")

	// ErrNeighbors is returned when the view fails to enumerate neighbors.
	ErrNeighbors = errors.New("matching: neighbor iteration error")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matching: invalid option supplied")

	// ErrNotAMatching is returned when a set of pairs shares a vertex or uses
	// a pair that is not an edge of the graph.
	ErrNotAMatching = errors.New("matching: pairs do not form a matching")

	// ErrNotMaximum is returned when an augmenting path exists.
	ErrNotMaximum = errors.New("matching: matching is not maximum")

	// ErrUnknownAlgorithm is returned by ByName for unregistered names.
	ErrUnknownAlgorithm = errors.New("matching: unknown algorithm")
)

// Reasons reported by InvalidGraphError.
const (
	ReasonSelfLoop        = "self-loop"
	ReasonParallelEdge    = "parallel edge"
	ReasonDirectedEdge    = "directed edge"
	ReasonUnknownEndpoint = "edge endpoint outside the vertex set"
	ReasonAsymmetric      = "edge listed by only one endpoint"
)

// InvalidGraphError describes one edge the engine refuses to interpret.
// It unwraps to ErrInvalidGraph.
type InvalidGraphError struct {
	VertexID string
	EdgeID   string
	Reason   string
}

func (e *InvalidGraphError) Error() string {
	return fmt.Sprintf("matching: invalid graph: %s at vertex %q (edge %q)", e.Reason, e.VertexID, e.EdgeID)
}

// Unwrap lets errors.Is(err, ErrInvalidGraph) match.
func (e *InvalidGraphError) Unwrap() error { return ErrInvalidGraph }

// GraphView is the read-only capability set the engine consumes.
// *core.Graph satisfies it.
//
// Vertices must be stable within one computation; Neighbors must report
// every incident edge of an undirected simple graph.
type GraphView interface {
	Vertices() []string
	Neighbors(id string) ([]*core.Edge, error)
}

// Algorithm is the common contract of every matching strategy.
type Algorithm func(g GraphView, opts ...Option) (*Matching, error)

// Initializer selects how the matching is seeded before the driver loop.
type Initializer int

const (
	// InitEmpty starts from the empty matching.
	InitEmpty Initializer = iota
	// InitGreedy starts from a maximal matching built greedily in vertex order.
	InitGreedy
)

func (i Initializer) String() string {
	switch i {
	case InitEmpty:
		return "empty"
	case InitGreedy:
		return "greedy"
	default:
		return fmt.Sprintf("Initializer(%d)", int(i))
	}
}

// ParseInitializer maps "empty"/"greedy" to an Initializer.
func ParseInitializer(s string) (Initializer, error) {
	switch s {
	case "", "empty":
		return InitEmpty, nil
	case "greedy":
		return InitGreedy, nil
	default:
		return InitEmpty, fmt.Errorf("%w: unknown initializer %q", ErrOptionViolation, s)
	}
}

// Option configures a matching computation via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// computation starts.
type Option func(*Options)

// Options holds parameters and callbacks for one computation.
type Options struct {
	// Ctx allows the caller to abandon the computation. It is checked at the
	// start of every search phase and on every dequeue.
	Ctx context.Context

	// Logger receives Debug-level progress records.
	Logger *zap.Logger

	// Initializer seeds the matching before the first phase.
	Initializer Initializer

	// OnAugment is called after each augmentation with the lifted path.
	OnAugment func(path []string)

	// OnBlossom is called when a blossom is contracted, with its base and
	// cycle (base first).
	OnBlossom func(base string, cycle []string)

	err error
}

// DefaultOptions returns Options with a background context, a no-op
// logger, the empty initializer and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Logger:      zap.NewNop(),
		Initializer: InitEmpty,
		OnAugment:   func([]string) {},
		OnBlossom:   func(string, []string) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes progress records to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithInitializer selects the seeding strategy.
func WithInitializer(init Initializer) Option {
	return func(o *Options) {
		switch init {
		case InitEmpty, InitGreedy:
			o.Initializer = init
		default:
			o.err = fmt.Errorf("%w: unknown initializer %d", ErrOptionViolation, int(init))
		}
	}
}

// WithOnAugment registers a callback run after every augmentation.
func WithOnAugment(fn func(path []string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}

// WithOnBlossom registers a callback run on every blossom contraction.
func WithOnBlossom(fn func(base string, cycle []string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBlossom = fn
		}
	}
}

func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// checkGraph rejects nil interfaces and typed-nil *core.Graph values.
func checkGraph(g GraphView) error {
	if g == nil {
		return ErrGraphNil
	}
	if cg, ok := g.(*core.Graph); ok && cg == nil {
		return ErrGraphNil
	}

	return nil
}

// unMatched marks a free vertex in mate arrays; noVertex marks an absent
// parent or root.
const (
	unMatched = -1
	noVertex  = -1
)
