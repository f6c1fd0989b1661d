package catalog

import (
	"context"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

const (
	// DefaultCount is the number of records generated per namespace.
	DefaultCount = 25
	// DefaultSpacing separates consecutive records' creation times.
	DefaultSpacing = time.Hour
)

// StatusFunc assigns a status to the record at index i (0-based, newest first).
// rng is the namespace's seeded stream.
type StatusFunc func(i int, rng *rand.Rand) Status

// UniformStatus draws each status with equal probability.
func UniformStatus(_ int, rng *rand.Rand) Status {
	return Statuses[rng.IntN(len(Statuses))]
}

// Generator is the demo Source. For a fixed seed, anchor and namespace it
// always yields the same records.
type Generator struct {
	seed     uint64
	anchor   time.Time
	count    int
	spacing  time.Duration
	statusFn StatusFunc
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithCount overrides the number of records per namespace.
func WithCount(n int) GeneratorOption {
	return func(g *Generator) {
		if n >= 0 {
			g.count = n
		}
	}
}

// WithSpacing overrides the gap between consecutive records.
func WithSpacing(d time.Duration) GeneratorOption {
	return func(g *Generator) {
		if d > 0 {
			g.spacing = d
		}
	}
}

// WithStatusFunc replaces the uniform status assignment.
func WithStatusFunc(fn StatusFunc) GeneratorOption {
	return func(g *Generator) {
		if fn != nil {
			g.statusFn = fn
		}
	}
}

// NewGenerator creates a generator whose newest record is created at anchor.
func NewGenerator(seed uint64, anchor time.Time, opts ...GeneratorOption) *Generator {
	g := &Generator{
		seed:     seed,
		anchor:   anchor,
		count:    DefaultCount,
		spacing:  DefaultSpacing,
		statusFn: UniformStatus,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var _ Source = (*Generator)(nil)

// List implements Source. It never fails.
func (g *Generator) List(_ context.Context, namespaceID string) ([]Record, error) {
	return g.Generate(namespaceID), nil
}

// Generate builds the records of one namespace.
func (g *Generator) Generate(namespaceID string) []Record {
	rng := rand.New(rand.NewPCG(g.seed, namespaceStream(namespaceID)))

	records := make([]Record, g.count)
	for i := range records {
		created := g.anchor.Add(-time.Duration(i) * g.spacing)
		jitter := time.Duration(rng.Int64N(int64(g.spacing)))
		records[i] = Record{
			ID:           RecordID(namespaceID, i+1),
			Namespace:    namespaceID,
			CreatedAt:    created,
			LastModified: created.Add(jitter),
			Status:       g.statusFn(i, rng),
		}
	}
	return records
}

// namespaceStream derives a per-namespace stream id so namespaces differ
// while sharing one seed.
func namespaceStream(namespaceID string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(namespaceID))
	return h.Sum64()
}
