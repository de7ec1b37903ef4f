package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, FormatCSV, cfg.Catalogue.Format)
	assert.Equal(t, ';', cfg.Catalogue.Delim())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TIMETABLE_CATALOGUE_FORMAT", "json")
	t.Setenv("TIMETABLE_PORT", "9090")
	t.Setenv("TIMETABLE_CATALOGUE_COHORTS_FILE", "/data/students.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, cfg.Catalogue.Format)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/data/students.json", cfg.Catalogue.CohortsFile)
}
