package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DSN(t *testing.T) {
	cfg := Config{Host: "db", Port: "5432", User: "app", Password: "p@ss word", Name: "inventory"}

	assert.Equal(t, "postgres://app:p%40ss%20word@db:5432/inventory?sslmode=disable", cfg.DSN())

	cfg.SSLMode = "require"
	assert.Contains(t, cfg.DSN(), "sslmode=require")
}

func TestDialector(t *testing.T) {
	for _, driver := range []string{"", DriverPgx, DriverPq} {
		d, err := Dialector(driver, "postgres://localhost/x")
		require.NoError(t, err)
		assert.Equal(t, "postgres", d.Name())
	}

	_, err := Dialector("mysql", "")
	assert.Error(t, err)
}
