// Package roadnet builds the directed, bidirected road graph from a
// collection of line features and repairs its connectivity with synthetic
// connector edges.
//
// A Graph is an arena: Nodes and Edges live in contiguous slices, addressed
// by integer index everywhere else in the module (sssp, assignment, reach,
// particles). It is immutable once Build returns — no mutex is required
// because nothing in the engine mutates a Graph after construction (spec
// section 3, "Lifecycle").
//
// Errors:
//
//	ErrNoValidFeatures - no input feature produced an edge (every feature had
//	                     fewer than two valid vertices, or all its vertices
//	                     snapped to one node).
//	ErrEmptyGraph      - declared for callers; Build reports an edgeless
//	                     result as ErrNoValidFeatures and never returns it.
package roadnet

import "errors"

var (
	// ErrNoValidFeatures indicates no input feature produced an edge; Build
	// returns it whenever ingestion yields zero edges.
	ErrNoValidFeatures = errors.New("roadnet: no feature produced a valid edge")

	// ErrEmptyGraph describes a graph with zero edges. Build does not return
	// it; that case is reported as ErrNoValidFeatures.
	ErrEmptyGraph = errors.New("roadnet: built graph has no edges")
)

// ConnectorFeatureIndex marks synthetic connector edges added by the
// connectivity repair pass. Connectors are excluded from feature-level
// metrics and cannot be closed by a user or a building (spec section 3).
const ConnectorFeatureIndex = -1

// connectorHighwayClass is the highway class stamped on synthetic connector
// edges (spec section 4.2).
const connectorHighwayClass = "connector"

// Feature is one input polyline: a sequence of [lng, lat] coordinates with a
// highway classification and an optional name. Its position in the input
// collection is its stable FeatureIndex, used everywhere else (closures,
// metrics) to refer back to it.
type Feature struct {
	Coords  []Point
	Highway string // first non-empty class string; "" maps to the default class.
	Name    string
}

// Point is a [lng, lat] coordinate pair in degrees.
type Point struct {
	Lng float64
	Lat float64
}

// Node is a snapped grid junction point, keyed by coordinates rounded to
// 1e-4 degrees. A Node exists iff at least one Edge references it.
type Node struct {
	ID  int
	Key NodeKey
}

// NodeKey is the 1e-4-degree-rounded coordinate a Node is snapped to.
type NodeKey struct {
	Lng int64
	Lat int64
}

// Edge is one directed segment: the originating feature, its two endpoint
// nodes, the sub-polyline it traces, and the highway-derived kinematics
// used by shortest paths and assignment.
//
// Invariants: LengthM > 1, Capacity > 0, T0 > 0 (spec section 3). T0 is the
// free-flow travel time length/speed; it is never recomputed after Build.
type Edge struct {
	ID           string
	FeatureIndex int // -1 for synthetic connectors.
	From, To     int // node indices
	Coords       []Point
	LengthM      float64
	Highway      string
	SpeedMps     float64
	Capacity     float64 // vehicles/hour
	T0           float64 // free-flow time in seconds
}

// Graph is the immutable, arena-backed road network.
type Graph struct {
	Nodes []Node
	Edges []Edge

	// Out maps a node index to the indices of edges leaving it.
	Out [][]int

	// nodeIndex maps a NodeKey to its Node's index, for snapping during Build.
	nodeIndex map[NodeKey]int

	// featureEdges maps a feature index to the indices of edges it produced.
	featureEdges map[int][]int

	BBox BBox
}

// BBox is the bounding box of every vertex in the ingested features,
// falling back to a small box centered on an arbitrary downtown anchor when
// the network is empty (spec section 4.2).
type BBox struct {
	MinLng, MinLat float64
	MaxLng, MaxLat float64
}

// NodeAt returns the Node for idx. Panics on an out-of-range index, which
// would indicate a programming error elsewhere in the module (every index
// handed out by Graph is valid by construction).
func (g *Graph) NodeAt(idx int) Node { return g.Nodes[idx] }

// EdgeAt returns the Edge for idx.
func (g *Graph) EdgeAt(idx int) Edge { return g.Edges[idx] }

// EdgesForFeature returns the indices of every edge produced by the given
// feature index, or nil if the feature produced none (e.g. it was skipped
// at ingestion, or idx is ConnectorFeatureIndex).
func (g *Graph) EdgesForFeature(idx int) []int { return g.featureEdges[idx] }

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int { return len(g.Nodes) }

// NumEdges returns the number of directed edges in the graph.
func (g *Graph) NumEdges() int { return len(g.Edges) }

// highwaySpec is one row of the bit-exact highway class table (spec section 3).
type highwaySpec struct {
	speedKmh float64
	capacity float64
}

var highwayTable = map[string]highwaySpec{
	"motorway":    {70, 2200},
	"trunk":       {60, 1800},
	"primary":     {50, 1500},
	"secondary":   {45, 1200},
	"tertiary":    {40, 900},
	"residential": {30, 500},
	"service":     {20, 300},
	"road":        {35, 700},
}

// connectorSpec is the kinematic profile for synthetic connector edges.
var connectorSpec = highwaySpec{speedKmh: 35, capacity: 700}

const kmhToMps = 1000.0 / 3600.0
