package dice

import (
	"fmt"
	"sync"

	"github.com/keeper-tools/keeper/pkg/lru"
)

// Default cache capacities.
const (
	DefaultResultCacheSize = 64
	DefaultTreeCacheSize   = 128
)

// Roller evaluates dice expressions with memoization. Seeded rolls cache the
// full result keyed by (normalized expression, seed); live rolls re-draw
// every time but reuse parsed trees through a second cache keyed by the
// normalized expression alone. Failed parses and evaluations leave no cache
// entries.
//
// Roller is safe for concurrent use.
type Roller struct {
	mu      sync.Mutex // guards src, which is not thread-safe
	src     Source
	results *lru.Cache[resultKey, *Result]
	trees   *lru.Cache[string, Node]
}

type resultKey struct {
	expr string
	seed int64
}

// RollerStats snapshots both memoization caches.
type RollerStats struct {
	Results lru.Stats `json:"results"`
	Trees   lru.Stats `json:"trees"`
}

// NewRoller creates a Roller with the given cache capacities and an
// entropy-seeded live source.
func NewRoller(resultCapacity, treeCapacity int) (*Roller, error) {
	results, err := lru.New[resultKey, *Result](resultCapacity)
	if err != nil {
		return nil, fmt.Errorf("result cache: %w", err)
	}
	trees, err := lru.New[string, Node](treeCapacity)
	if err != nil {
		return nil, fmt.Errorf("tree cache: %w", err)
	}
	return &Roller{src: NewRandSource(), results: results, trees: trees}, nil
}

// Roll evaluates expr with the roller's live random source. Every call
// re-draws, so outcomes vary; only the parsed tree is reused.
func (r *Roller) Roll(expr string) (*Result, error) {
	node, err := r.tree(Normalize(expr))
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	res, err := Evaluate(node, r.src)
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	res.Expression = expr
	return res, nil
}

// RollSeeded evaluates expr deterministically. The same expression and seed
// always yield the identical Result, served from the result cache after the
// first call with no new random draws.
func (r *Roller) RollSeeded(expr string, seed int64) (*Result, error) {
	norm := Normalize(expr)
	key := resultKey{expr: norm, seed: seed}
	if res, ok := r.results.Get(key); ok {
		return res, nil
	}
	node, err := r.tree(norm)
	if err != nil {
		return nil, err
	}
	res, err := Evaluate(node, NewSeededSource(seed))
	if err != nil {
		return nil, err
	}
	res.Expression = expr
	r.results.Put(key, res)
	return res, nil
}

// Stats reports hit/miss counters for both caches.
func (r *Roller) Stats() RollerStats {
	return RollerStats{Results: r.results.Stats(), Trees: r.trees.Stats()}
}

// ClearCaches drops all cached results and trees, keeping the cumulative
// counters.
func (r *Roller) ClearCaches() {
	r.results.Clear()
	r.trees.Clear()
}

// tree returns the parsed tree for a normalized expression, parsing and
// caching it on first sight.
func (r *Roller) tree(norm string) (Node, error) {
	if node, ok := r.trees.Get(norm); ok {
		return node, nil
	}
	node, err := ParseString(norm)
	if err != nil {
		return nil, err
	}
	r.trees.Put(norm, node)
	return node, nil
}
