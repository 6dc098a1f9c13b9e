package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverlaysOnlyPresentFields(t *testing.T) {
	path := writeConfigFile(t, `{"delivery_fee_cents": 0}`)

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"storefront", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, int64(0), cfg.DeliveryFeeCents)
	// Untouched fields keep their defaults.
	require.Equal(t, "snackdash.db", cfg.DataFile)
	require.False(t, cfg.PasswordHashing)
}

func TestParseJson_NoConfigFlagIsNoop(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"storefront"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "snackdash.db", cfg.DataFile)
}

func TestParseJson_PanicsOnBadFile(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"storefront", "-config", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJson(cfg) })
}
