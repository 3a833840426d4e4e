package postgres

import (
	"context"
	"testing"
	"time"

	"servi-search/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfig(t *testing.T) {
	pcfg, err := PoolConfig(config.DatabaseConfig{
		DBHost:              " db.internal ",
		DBPort:              "6543",
		DBName:              "marketplace",
		DBUser:              "servi",
		DBPassword:          "s3cret",
		DBSSLMode:           "disable",
		ConnectTimeout:      3 * time.Second,
		PoolMaxConns:        12,
		PoolMinConns:        2,
		PoolMaxConnLifetime: time.Hour,
	})
	require.NoError(t, err)

	assert.Equal(t, "db.internal", pcfg.ConnConfig.Host)
	assert.Equal(t, uint16(6543), pcfg.ConnConfig.Port)
	assert.Equal(t, "marketplace", pcfg.ConnConfig.Database)
	assert.Equal(t, "servi", pcfg.ConnConfig.User)
	assert.Equal(t, 3*time.Second, pcfg.ConnConfig.ConnectTimeout)
	assert.Equal(t, int32(12), pcfg.MaxConns)
	assert.Equal(t, int32(2), pcfg.MinConns)
	assert.Equal(t, time.Hour, pcfg.MaxConnLifetime)
}

func TestPool_NotConnected(t *testing.T) {
	var p *Pool

	_, err := p.Query(context.Background(), "SELECT 1")
	assert.ErrorIs(t, err, errNilPool)
	_, err = p.Begin(context.Background())
	assert.ErrorIs(t, err, errNilPool)
	assert.Nil(t, p.SQLDB())
	assert.NoError(t, p.Close())
}
