package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/canteiro-app/canteiro/internal/textfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{
		"CANTEIRO_CONFIG", "CANTEIRO_DB", "CANTEIRO_CURRENCY",
		"CANTEIRO_TIMEZONE", "CANTEIRO_LOG_USE_CASES",
	} {
		t.Setenv(k, "")
	}
	return home
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	home := isolateEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".canteiro", "canteiro.db"), cfg.DBPath)
	assert.Equal(t, textfmt.BRL, cfg.CurrencyCode)
	assert.Equal(t, "Local", cfg.Timezone)
	require.NotNil(t, cfg.Location)
	assert.False(t, cfg.LogUseCases)
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	isolateEnv(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
db_path: /srv/obra.db
currency: usd
timezone: America/Sao_Paulo
log_use_cases: false
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))
	t.Setenv("CANTEIRO_CONFIG", cfgPath)
	t.Setenv("CANTEIRO_DB", "/tmp/override.db")
	t.Setenv("CANTEIRO_LOG_USE_CASES", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.db", cfg.DBPath)
	assert.Equal(t, textfmt.USD, cfg.CurrencyCode)
	assert.Equal(t, "America/Sao_Paulo", cfg.Location.String())
	assert.True(t, cfg.LogUseCases)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     map[string]string
		wantErr string
	}{
		{name: "malformed yaml", yaml: "db_path: [unclosed", wantErr: "parsing"},
		{name: "unsupported currency", env: map[string]string{"CANTEIRO_CURRENCY": "EUR"}, wantErr: `unsupported currency "EUR"`},
		{name: "unknown timezone", yaml: "timezone: Mars/Olympus", wantErr: "invalid timezone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			if tt.yaml != "" {
				p := filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(p, []byte(tt.yaml), 0o600))
				t.Setenv("CANTEIRO_CONFIG", p)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
