package pathfinding

import (
	"log/slog"
	"math"
)

// Options configures a Router.
//
// Heuristic     – frontier estimate, Manhattan by default.
// DiagonalCost  – cost of one diagonal step; orthogonal steps cost 1.
// Margin        – extra cells of clearance dilated around the buffered grid.
// MaxExpansions – cap on expanded cells per search, 0 for no cap.
// Cache         – optional memo for shortcut decisions.
// Logger        – receives one debug record per route.
type Options struct {
	Heuristic     Heuristic
	DiagonalCost  float64
	Margin        int
	MaxExpansions int
	Cache         *ShortcutCache
	Logger        *slog.Logger
}

// Option represents a functional option for configuring a Router.
type Option func(*Options)

// DefaultOptions returns Manhattan ordering with √2 diagonals, no margin, no
// expansion cap, no cache and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Heuristic:    Manhattan,
		DiagonalCost: math.Sqrt2,
		Logger:       slog.New(slog.DiscardHandler),
	}
}

// WithHeuristic replaces the frontier heuristic. A nil heuristic is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithDiagonalCost sets the cost of a diagonal step. Values that are not
// positive are ignored.
func WithDiagonalCost(cost float64) Option {
	return func(o *Options) {
		if cost > 0 {
			o.DiagonalCost = cost
		}
	}
}

// WithMargin dilates the buffered grid by n further cells.
func WithMargin(n int) Option {
	return func(o *Options) {
		o.Margin = max(0, n)
	}
}

// WithMaxExpansions caps the number of cells a single search may expand.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		o.MaxExpansions = max(0, n)
	}
}

// WithShortcutCache memoizes shortcut decisions in c.
func WithShortcutCache(c *ShortcutCache) Option {
	return func(o *Options) {
		o.Cache = c
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
