package pathfinding

import (
	"fmt"
	"math"
	"sync"

	"umlroute/core"
	"umlroute/geometry"
	"umlroute/grid"
)

// Strategy names the stage that produced a route.
type Strategy int

const (
	StrategyShortcut Strategy = iota
	StrategySearch
	StrategySearchUnbuffered
	StrategyManhattan
)

func (s Strategy) String() string {
	switch s {
	case StrategyShortcut:
		return "shortcut"
	case StrategySearch:
		return "search"
	case StrategySearchUnbuffered:
		return "search-unbuffered"
	case StrategyManhattan:
		return "manhattan"
	default:
		return "unknown"
	}
}

// Result is a route together with how it was found.
type Result struct {
	Route      core.Route
	Strategy   Strategy
	Expansions int // cells expanded across all searches
}

// Snapshot holds the obstacle geometry of one diagram at a fixed canvas size
// and cell size. Grids are built on first use and never modified afterwards,
// so a Snapshot may be shared by concurrent callers.
type Snapshot struct {
	opts        Options
	obstacles   []core.Obstacle
	width       float64
	height      float64
	cellSize    float64
	index       *ObstacleIndex
	fingerprint uint64

	bufferedOnce sync.Once
	buffered     *grid.Grid
	plainOnce    sync.Once
	plain        *grid.Grid
}

func newSnapshot(opts Options, obstacles []core.Obstacle, width, height, cellSize float64) (*Snapshot, error) {
	if err := grid.Validate(width, height, cellSize); err != nil {
		return nil, err
	}
	obs := make([]core.Obstacle, len(obstacles))
	for i, o := range obstacles {
		b := o.Bounds
		if math.IsNaN(b.Left) || math.IsNaN(b.Top) || math.IsNaN(b.Right) || math.IsNaN(b.Bottom) {
			return nil, fmt.Errorf("%w: obstacle #%d %q", ErrInvalidObstacle, i, o.ID)
		}
		o.Bounds = core.Rect{
			Left:   clampCoord(b.Left),
			Top:    clampCoord(b.Top),
			Right:  clampCoord(b.Right),
			Bottom: clampCoord(b.Bottom),
		}
		obs[i] = o
	}
	return &Snapshot{
		opts:        opts,
		obstacles:   obs,
		width:       width,
		height:      height,
		cellSize:    cellSize,
		index:       NewObstacleIndex(obs),
		fingerprint: Fingerprint(obs),
	}, nil
}

// maxCoord bounds obstacle coordinates so the intersection arithmetic of the
// shortcut test stays finite for unbounded obstacles.
const maxCoord = 1e150

func clampCoord(v float64) float64 {
	return min(max(v, -maxCoord), maxCoord)
}

// Obstacles returns the obstacles the snapshot was built from, with infinite
// bounds clamped.
func (s *Snapshot) Obstacles() []core.Obstacle {
	return s.obstacles
}

// Grid returns the buffered grid used by the primary search, margin applied.
// Callers must not modify it.
func (s *Snapshot) Grid() *grid.Grid {
	s.bufferedOnce.Do(func() {
		s.buffered = s.newGrid(true)
		s.buffered.AddMargin(s.opts.Margin)
	})
	return s.buffered
}

// UnbufferedGrid returns the grid used by the first fallback: obstacles only,
// no buffer ring and no margin.
func (s *Snapshot) UnbufferedGrid() *grid.Grid {
	s.plainOnce.Do(func() {
		s.plain = s.newGrid(false)
	})
	return s.plain
}

func (s *Snapshot) newGrid(addBuffer bool) *grid.Grid {
	// Arguments were validated in newSnapshot.
	g, _ := grid.New(s.width, s.height, s.cellSize)
	g.MarkObstacles(s.obstacles, addBuffer)
	return g
}

// Route returns the route from start to end. Obstacles whose ID equals a
// non-empty source or target are ignored by the shortcut test only; the grid
// search avoids every obstacle.
func (s *Snapshot) Route(start, end core.Point, source, target string) core.Route {
	return s.Plan(start, end, source, target).Route
}

// Plan is Route with the strategy and search effort reported.
func (s *Snapshot) Plan(start, end core.Point, source, target string) Result {
	res := s.plan(start, end, source, target)
	s.opts.Logger.Debug("connector routed",
		"source", source,
		"target", target,
		"start", start.String(),
		"end", end.String(),
		"strategy", res.Strategy.String(),
		"points", len(res.Route),
		"expansions", res.Expansions,
	)
	return res
}

func (s *Snapshot) plan(start, end core.Point, source, target string) Result {
	if s.shortcutClear(start, end, source, target) {
		return Result{Route: core.Route{start, end}, Strategy: StrategyShortcut}
	}

	srch := searcher{
		heuristic:     s.opts.Heuristic,
		diagonalCost:  s.opts.DiagonalCost,
		maxExpansions: s.opts.MaxExpansions,
	}

	total := 0
	for _, stage := range []struct {
		grid     *grid.Grid
		strategy Strategy
	}{
		{s.Grid(), StrategySearch},
		{s.UnbufferedGrid(), StrategySearchUnbuffered},
	} {
		g := stage.grid
		from, _ := NearestFreeCell(g, g.PointToCell(start))
		to, _ := NearestFreeCell(g, g.PointToCell(end))

		cells, n, ok := srch.findPath(g, from, to)
		total += n
		if ok {
			return Result{
				Route:      Simplify(cellsToRoute(g, cells, start, end)),
				Strategy:   stage.strategy,
				Expansions: total,
			}
		}
	}

	return Result{Route: ManhattanRoute(start, end), Strategy: StrategyManhattan, Expansions: total}
}

// shortcutClear reports whether the straight segment start→end avoids every
// obstacle other than the source and target boxes.
func (s *Snapshot) shortcutClear(start, end core.Point, source, target string) bool {
	key := ShortcutKey{Source: source, Target: target, Start: start, End: end, Fingerprint: s.fingerprint}
	if s.opts.Cache != nil {
		if free, found := s.opts.Cache.Get(key); found {
			return free
		}
	}

	skip := func(obs core.Obstacle) bool {
		return obs.ID != "" && (obs.ID == source || obs.ID == target)
	}
	_, blocked := s.index.SegmentBlocked(geometry.Segment{Start: start, End: end}, skip)

	if s.opts.Cache != nil {
		s.opts.Cache.Put(key, !blocked)
	}
	return !blocked
}
