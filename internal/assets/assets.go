// Package assets provides pre-rendered, seamlessly tileable effect
// textures for the constrained rendering path.
//
// Grain and noise are expensive to regenerate per pixel on low-tier
// devices, so the constrained compositor prefers compositing a tiled
// texture selected from three discrete intensity buckets. Tiles are
// prepared asynchronously; renderers check Ready synchronously on every
// call and fall back to procedural generation until the store is warm.
package assets

import (
	"context"
	"sync"

	"github.com/strata-gfx/strata/internal/effect"
)

// Bucket is a discrete tile intensity level.
type Bucket int

const (
	// Light is subtle grain.
	Light Bucket = iota
	// Medium is mid-intensity grain.
	Medium
	// Heavy is strong grain.
	Heavy
)

// BucketFor maps a requested intensity in [0, 1] to a tile bucket.
func BucketFor(intensity float64) Bucket {
	switch {
	case intensity < 1.0/3:
		return Light
	case intensity < 2.0/3:
		return Medium
	default:
		return Heavy
	}
}

// amountFor is the generation amplitude for each bucket.
func amountFor(b Bucket) float64 {
	switch b {
	case Light:
		return 0.25
	case Heavy:
		return 0.9
	default:
		return 0.55
	}
}

// TileEdge is the square tile size in pixels.
const TileEdge = 256

// Store holds the tile set for one session. Load is idempotent: a
// loading-in-progress state is shared and reused, never restarted. A
// failed load is permanent for the session; callers keep using
// procedural generation.
type Store struct {
	mu      sync.Mutex
	started bool
	done    chan struct{}

	ready  bool
	failed bool
	err    error
	tiles  [3][]uint8
}

// NewStore creates an empty store. Call Load to begin tile preparation.
func NewStore() *Store {
	return &Store{done: make(chan struct{})}
}

// Load begins preparing tiles in the background. The first call starts
// the work; subsequent calls are no-ops that share the same in-flight
// state. Cancelling ctx before preparation finishes marks the store
// permanently failed.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	go s.prepare(ctx)
}

func (s *Store) prepare(ctx context.Context) {
	defer close(s.done)

	var tiles [3][]uint8
	for b := Light; b <= Heavy; b++ {
		select {
		case <-ctx.Done():
			s.mu.Lock()
			s.failed = true
			s.err = ctx.Err()
			s.mu.Unlock()
			return
		default:
		}
		tiles[b] = effect.TileableGrain(TileEdge, amountFor(b), uint32(0xa11ce+b))
	}

	s.mu.Lock()
	s.tiles = tiles
	s.ready = true
	s.mu.Unlock()
}

// Ready reports whether tiles are available. It never blocks.
func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Failed reports whether the load failed permanently.
func (s *Store) Failed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failed
}

// Err returns the load failure cause, if any.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Wait blocks until preparation completes or fails. Intended for tests
// and batch tools; the render path uses Ready.
func (s *Store) Wait() {
	<-s.done
}

// Tiled fills a w×h RGBA buffer by repeating the bucket's tile.
// Returns nil if the store is not ready.
func (s *Store) Tiled(w, h int, b Bucket) []uint8 {
	s.mu.Lock()
	if !s.ready {
		s.mu.Unlock()
		return nil
	}
	tile := s.tiles[b]
	s.mu.Unlock()

	out := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		ty := (y % TileEdge) * TileEdge * 4
		row := tile[ty : ty+TileEdge*4]
		for x := 0; x < w; x += TileEdge {
			n := TileEdge
			if x+n > w {
				n = w - x
			}
			copy(out[(y*w+x)*4:(y*w+x+n)*4], row[:n*4])
		}
	}
	return out
}
