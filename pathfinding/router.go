package pathfinding

import "umlroute/core"

// Request describes one connector to route.
type Request struct {
	Obstacles      []core.Obstacle
	Start, End     core.Point
	Source, Target string // identities of the boxes the connector joins
	Width, Height  float64
	CellSize       float64
}

// Router routes connectors with a fixed set of options.
type Router struct {
	opts Options
}

// NewRouter creates a Router with DefaultOptions adjusted by opts.
func NewRouter(opts ...Option) *Router {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Router{opts: o}
}

// Options returns the router's effective options.
func (r *Router) Options() Options {
	return r.opts
}

// Prepare builds a reusable Snapshot of an obstacle set. The obstacle slice
// is copied.
func (r *Router) Prepare(obstacles []core.Obstacle, width, height, cellSize float64) (*Snapshot, error) {
	return newSnapshot(r.opts, obstacles, width, height, cellSize)
}

// Route routes a single connector on a fresh snapshot. The only errors are
// ErrInvalidCellSize, ErrInvalidDimensions and ErrInvalidObstacle; otherwise
// a route of at least two points, starting at req.Start and ending at
// req.End, is returned.
func (r *Router) Route(req Request) (core.Route, error) {
	res, err := r.Plan(req)
	return res.Route, err
}

// Plan is Route with the strategy and search effort reported.
func (r *Router) Plan(req Request) (Result, error) {
	snap, err := r.Prepare(req.Obstacles, req.Width, req.Height, req.CellSize)
	if err != nil {
		return Result{}, err
	}
	return snap.Plan(req.Start, req.End, req.Source, req.Target), nil
}

// Route routes req with a Router built from opts.
func Route(req Request, opts ...Option) (core.Route, error) {
	return NewRouter(opts...).Route(req)
}
