package diagram

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"umlroute/core"
	"umlroute/pathfinding"
)

// DefaultCellSize is the grid resolution used when a diagram sets none.
const DefaultCellSize = 5.0

// canvasMargin pads the class extent when a diagram has no canvas size.
const canvasMargin = 50.0

// Connector is one routed relationship.
type Connector struct {
	Relationship Relationship
	Start, End   core.Point
	Route        core.Route
	Strategy     pathfinding.Strategy
}

// Result is the outcome of routing a whole diagram.
type Result struct {
	Width, Height float64
	CellSize      float64
	Connectors    []Connector    // in relationship order, skipped ones left out
	Skipped       []Relationship // relationships naming unknown classes
	Crossings     []core.Point
	Snapshot      *pathfinding.Snapshot
}

// Options configures a ConnectorRouter.
type Options struct {
	Anchors      AnchorStrategy
	Workers      int
	CellSize     float64
	Cache        *pathfinding.ShortcutCache
	Logger       *slog.Logger
	RouteOptions []pathfinding.Option
}

// Option represents a functional option for configuring a ConnectorRouter.
type Option func(*Options)

// DefaultOptions returns corner anchoring on GOMAXPROCS workers at
// DefaultCellSize with a discarding logger.
func DefaultOptions() Options {
	return Options{
		Anchors:  AnchorClosestCorners,
		Workers:  runtime.GOMAXPROCS(0),
		CellSize: DefaultCellSize,
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// WithAnchors selects how connector endpoints are placed on the boxes.
func WithAnchors(a AnchorStrategy) Option {
	return func(o *Options) { o.Anchors = a }
}

// WithWorkers bounds the number of connectors routed concurrently.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithCellSize sets the cell size for diagrams that do not set their own.
func WithCellSize(cs float64) Option {
	return func(o *Options) {
		if cs > 0 {
			o.CellSize = cs
		}
	}
}

// WithShortcutCache shares a shortcut cache across Route calls. Without it
// every call gets a fresh cache.
func WithShortcutCache(c *pathfinding.ShortcutCache) Option {
	return func(o *Options) { o.Cache = c }
}

// WithLogger sets the logger for the router and the underlying pathfinder.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRouteOptions passes options through to the pathfinding router.
func WithRouteOptions(opts ...pathfinding.Option) Option {
	return func(o *Options) { o.RouteOptions = append(o.RouteOptions, opts...) }
}

// ConnectorRouter routes every relationship of a diagram.
type ConnectorRouter struct {
	opts Options
}

// NewConnectorRouter creates a ConnectorRouter with DefaultOptions adjusted by opts.
func NewConnectorRouter(opts ...Option) *ConnectorRouter {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &ConnectorRouter{opts: o}
}

// Route routes the relationships of d concurrently against one snapshot of
// its class boxes. Relationships naming unknown classes are logged and
// skipped. The context is checked before each connector.
func (cr *ConnectorRouter) Route(ctx context.Context, d *Diagram) (*Result, error) {
	if d == nil {
		return nil, ErrNilDiagram
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	cellSize := d.CellSize
	if cellSize <= 0 {
		cellSize = cr.opts.CellSize
	}
	width, height := d.Extent(canvasMargin)

	cache := cr.opts.Cache
	if cache == nil {
		cache = pathfinding.NewShortcutCache(0)
	}
	routeOpts := append([]pathfinding.Option{
		pathfinding.WithLogger(cr.opts.Logger),
		pathfinding.WithShortcutCache(cache),
	}, cr.opts.RouteOptions...)

	snap, err := pathfinding.NewRouter(routeOpts...).Prepare(d.Obstacles(), width, height, cellSize)
	if err != nil {
		return nil, fmt.Errorf("prepare %vx%v canvas: %w", width, height, err)
	}

	type job struct {
		rel      Relationship
		from, to Class
	}
	var jobs []job
	res := &Result{Width: width, Height: height, CellSize: cellSize, Snapshot: snap}
	for _, rel := range d.Relationships {
		from, to, err := d.endpoints(rel)
		if err != nil {
			cr.opts.Logger.Warn("skipping relationship", "relationship", rel.String(), "error", err)
			res.Skipped = append(res.Skipped, rel)
			continue
		}
		jobs = append(jobs, job{rel: rel, from: from, to: to})
	}

	connectors := make([]Connector, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cr.opts.Workers)
	for i, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start, end := cr.opts.Anchors.Anchors(j.from.Bounds(), j.to.Bounds())
			plan := snap.Plan(start, end, j.rel.Source, j.rel.Target)
			connectors[i] = Connector{
				Relationship: j.rel,
				Start:        start,
				End:          end,
				Route:        plan.Route,
				Strategy:     plan.Strategy,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res.Connectors = connectors
	res.Crossings = Crossings(connectors)
	cr.opts.Logger.Info("diagram routed",
		"connectors", len(res.Connectors),
		"skipped", len(res.Skipped),
		"crossings", len(res.Crossings),
		"cache", cache.String(),
	)
	return res, nil
}

func (d *Diagram) endpoints(rel Relationship) (from, to Class, err error) {
	from, ok := d.Class(rel.Source)
	if !ok {
		return from, to, fmt.Errorf("%w: %q", ErrUnknownClass, rel.Source)
	}
	to, ok = d.Class(rel.Target)
	if !ok {
		return from, to, fmt.Errorf("%w: %q", ErrUnknownClass, rel.Target)
	}
	return from, to, nil
}
