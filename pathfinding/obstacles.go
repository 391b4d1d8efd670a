package pathfinding

import (
	"github.com/dhconnelly/rtreego"

	"umlroute/core"
	"umlroute/geometry"
)

// padding keeps rtreego rectangles non-degenerate and makes touching
// rectangles overlap, since the exact tests below treat bounds as inclusive.
const padding = 1e-6

// ObstacleIndex is an R-tree over obstacle bounds used as the broad phase of
// the shortcut test.
type ObstacleIndex struct {
	tree *rtreego.Rtree
	size int
}

type indexedObstacle struct {
	obstacle core.Obstacle
	bounds   rtreego.Rect
}

func (o *indexedObstacle) Bounds() rtreego.Rect {
	return o.bounds
}

func toRTreeRect(r core.Rect) rtreego.Rect {
	left, top := min(r.Left, r.Right), min(r.Top, r.Bottom)
	width, height := max(r.Width(), -r.Width()), max(r.Height(), -r.Height())
	// Lengths are at least 2*padding, which NewRect always accepts.
	rect, _ := rtreego.NewRect(
		rtreego.Point{left - padding, top - padding},
		[]float64{width + 2*padding, height + 2*padding},
	)
	return rect
}

// NewObstacleIndex bulk-loads obstacles into an R-tree.
func NewObstacleIndex(obstacles []core.Obstacle) *ObstacleIndex {
	spatials := make([]rtreego.Spatial, len(obstacles))
	for i, obs := range obstacles {
		spatials[i] = &indexedObstacle{obstacle: obs, bounds: toRTreeRect(obs.Bounds)}
	}
	return &ObstacleIndex{
		tree: rtreego.NewTree(2, 4, 16, spatials...),
		size: len(obstacles),
	}
}

// Len returns the number of indexed obstacles.
func (ix *ObstacleIndex) Len() int {
	return ix.size
}

// Search returns the obstacles whose bounds overlap or touch r.
func (ix *ObstacleIndex) Search(r core.Rect) []core.Obstacle {
	found := ix.tree.SearchIntersect(toRTreeRect(r))
	out := make([]core.Obstacle, 0, len(found))
	for _, s := range found {
		out = append(out, s.(*indexedObstacle).obstacle)
	}
	return out
}

// SegmentBlocked reports whether seg touches an obstacle for which skip
// returns false, and returns one such obstacle.
func (ix *ObstacleIndex) SegmentBlocked(seg geometry.Segment, skip func(core.Obstacle) bool) (core.Obstacle, bool) {
	hits := ix.tree.SearchIntersect(toRTreeRect(seg.Bounds()), func(_ []rtreego.Spatial, s rtreego.Spatial) (refuse, abort bool) {
		obs := s.(*indexedObstacle).obstacle
		if skip != nil && skip(obs) {
			return true, false
		}
		return !geometry.SegmentIntersectsRectangle(seg, obs.Bounds), false
	})
	if len(hits) == 0 {
		return core.Obstacle{}, false
	}
	return hits[0].(*indexedObstacle).obstacle, true
}
