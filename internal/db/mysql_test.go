package db

import (
	"testing"

	sqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithFoundRows(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
	}{
		{name: "user supplied", dsn: "app:secret@tcp(db:3306)/sportszone?charset=utf8mb4&parseTime=True"},
		{name: "already set", dsn: "app:secret@tcp(db:3306)/sportszone?clientFoundRows=true"},
		{name: "explicitly off", dsn: "app:secret@tcp(db:3306)/sportszone?clientFoundRows=false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := withFoundRows(tt.dsn)
			require.NoError(t, err)
			assert.Contains(t, out, "clientFoundRows=true")

			cfg, err := sqldriver.ParseDSN(out)
			require.NoError(t, err)
			assert.True(t, cfg.ClientFoundRows)
			assert.Equal(t, "sportszone", cfg.DBName)
			assert.Equal(t, "db:3306", cfg.Addr)
			assert.Equal(t, "secret", cfg.Passwd)
		})
	}

	out := mustFoundRows(t, "app:secret@tcp(db:3306)/sportszone?charset=utf8mb4&parseTime=True")
	assert.Contains(t, out, "charset=utf8mb4")
	cfg, err := sqldriver.ParseDSN(out)
	require.NoError(t, err)
	assert.True(t, cfg.ParseTime)
}

func TestWithFoundRows_InvalidDSN(t *testing.T) {
	_, err := withFoundRows("not a dsn")
	assert.Error(t, err)

	_, err = NewMySQL("not a dsn")
	assert.Error(t, err)
}

func mustFoundRows(t *testing.T, dsn string) string {
	t.Helper()
	out, err := withFoundRows(dsn)
	require.NoError(t, err)
	return out
}
