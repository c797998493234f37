package builder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netrepair/topology"
)

// TestConfigDefaults verifies the deterministic defaults.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	require.Equal(t, defaultName, cfg.name)
	require.Nil(t, cfg.rng)
	require.Equal(t, defaultScale, cfg.scale)
	require.Equal(t, defaultSpacing, cfg.spacing)
	require.Equal(t, topology.Point{}, cfg.origin)
}

// TestConfigLastWins verifies options apply in order.
func TestConfigLastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithScale(2), WithScale(5), WithName("a"), WithName("b"))
	require.Equal(t, 5.0, cfg.scale)
	require.Equal(t, "b", cfg.name)

	a := newBuilderConfig(WithSeed(9)).rng.Int63()
	b := newBuilderConfig(WithSeed(9)).rng.Int63()
	require.Equal(t, a, b)
}
