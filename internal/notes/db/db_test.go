package db_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonotes/internal/notes/config"
	"gonotes/internal/notes/db"
	"gonotes/pkg/logger"
	"gonotes/pkg/retry"
)

func testContext() context.Context {
	return logger.NewContext(context.Background(), logger.NewNop())
}

func fastPolicy(attempts int) retry.Config {
	return retry.Config{
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		BackoffFactor:  2,
	}
}

func portOf(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return port
}

func TestNewRedis(t *testing.T) {
	ctx := testContext()

	t.Run("connects", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := &config.RedisConfig{Host: mr.Host(), Port: portOf(t, mr), Timeout: time.Second}

		client, err := db.NewRedis(ctx, cfg, fastPolicy(1))
		require.NoError(t, err)
		defer client.Close(ctx)

		assert.NoError(t, client.Ping(ctx))
	})

	t.Run("gives up after retries", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := &config.RedisConfig{Host: mr.Host(), Port: portOf(t, mr), Timeout: 50 * time.Millisecond}
		mr.Close()

		client, err := db.NewRedis(ctx, cfg, fastPolicy(2))
		require.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), db.ErrRedisConnection)
	})
}

func TestNewUnreachablePostgres(t *testing.T) {
	cfg := &config.PostgresConfig{
		Host:     "127.0.0.1",
		Port:     1,
		User:     "postgres",
		Password: "postgres",
		Database: "notes",
		SSLMode:  "disable",
		MinConn:  1,
		MaxConn:  2,
	}

	ctx, cancel := context.WithTimeout(testContext(), 5*time.Second)
	defer cancel()

	database, err := db.New(ctx, cfg, fastPolicy(1))
	require.Error(t, err)
	assert.Nil(t, database)
	assert.Contains(t, err.Error(), db.ErrDBMigrations)
}
