package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int32(25), cfg.Database.MaxConns)
	assert.Equal(t, int32(5), cfg.Database.MinConns)
	assert.Equal(t, 7, cfg.Attendance.SandwichWindowDays)
	assert.Equal(t, "09:15", cfg.Attendance.LateLoginAfter)
}

func TestLoad_PoolSizingFromEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_MAX_CONNS", "40")
	t.Setenv("DB_MIN_CONNS", "10")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int32(40), cfg.Database.MaxConns)
	assert.Equal(t, int32(10), cfg.Database.MinConns)
}

func TestLoad_RejectsInvertedPoolBounds(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_MAX_CONNS", "2")
	t.Setenv("DB_MIN_CONNS", "8")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_RejectsBadLateLoginTime(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("LATE_LOGIN_AFTER", "quarter past nine")

	_, err := Load()
	require.Error(t, err)
}
