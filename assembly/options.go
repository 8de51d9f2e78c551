package assembly

import "github.com/rs/zerolog"

// matrixConfig holds the configurable parameters resolved from NewMatrix's
// functional options. Mirrors the builderConfig pattern the lvlath
// lineage's builder package uses for graph constructors.
type matrixConfig struct {
	logger        zerolog.Logger
	freezeRebuild bool
}

// Option customizes a Matrix at construction time.
type Option func(cfg *matrixConfig)

// newMatrixConfig returns a matrixConfig with sensible defaults, then
// applies each Option in order. Later options override earlier ones.
func newMatrixConfig(opts ...Option) *matrixConfig {
	cfg := &matrixConfig{
		logger:        zerolog.Nop(),
		freezeRebuild: false,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithLogger attaches a structured logger used for the two diagnostic
// lines the C source itself emits: the epsilon announcement on
// NewMatrix, and the compressList/sparseMatrix leak warning in Kill (see
// DESIGN.md "Kill's leak-warning timing" for why that warning can now
// actually fire). If
// not supplied, a disabled zerolog.Nop() logger is used and nothing is
// printed.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *matrixConfig) { cfg.logger = logger }
}

// WithFreezeRebuild records whether the shared-value index should be
// rebuilt at GetMatrixSizes time using the final maxima. The setting is
// stored in the Matrix's configuration only: GetMatrixSizes does not read
// it and never rebuilds the index, so true and false behave identically —
// assembly-time lookups always use the maxima current at each SetEntry
// call, matching the source. Default false.
func WithFreezeRebuild(enabled bool) Option {
	return func(cfg *matrixConfig) { cfg.freezeRebuild = enabled }
}
