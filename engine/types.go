package engine

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/trafficsim/engine/assignment"
	"github.com/trafficsim/engine/closure"
	"github.com/trafficsim/engine/demand"
	"github.com/trafficsim/engine/particles"
	"github.com/trafficsim/engine/roadnet"
)

// DefaultDebounceMs is the recompute delay used by SetManualToggle and
// SetBuildingRings, which schedule a recompute without a caller-supplied
// delay (spec section 4.9 names schedule_recompute(delay_ms) but leaves
// input-driven callers' own delay unspecified).
const DefaultDebounceMs = 250

// Engine is the opaque orchestrator (spec section 4.9). The zero value is
// not usable; construct with New.
type Engine struct {
	mu sync.Mutex

	log        zerolog.Logger
	iterations int
	src        *demand.Source

	graph    *roadnet.Graph
	features []roadnet.Feature

	manualClosed map[int]struct{}
	rings        []closure.Ring
	lastSignature uint64
	haveSignature bool

	probe []demand.Pair
	od    []demand.Pair

	routePool    particles.RoutePool
	particlePool particles.Pool

	result      assignment.Result
	unreachable int
	loadedAt    time.Time
	lastRuntime time.Duration

	skippedFeatures int
	skippedRings    int

	epoch uint64
	timer *time.Timer
}

// Option configures an Engine at construction (spec section 6's "no
// environment variables" rule applies here too: every knob is explicit).
type Option func(e *Engine)

// WithLogger overrides the Engine's structured logger. The default is a
// discard logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithSeed sets the PRNG seed feeding OD generation and particle
// initialization (spec section 6, "Determinism knobs"). A seed of 0 falls
// back to a time-based seed.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.src = demand.NewSource(seed) }
}

// WithIterations overrides the assignment iteration count (spec section
// 4.6's DefaultIterations otherwise applies).
func WithIterations(n int) Option {
	return func(e *Engine) { e.iterations = n }
}

// New constructs an idle Engine. Call LoadNetwork before any other method.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:          discardLogger,
		iterations:   assignment.DefaultIterations,
		src:          demand.NewSource(0),
		manualClosed: make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}
