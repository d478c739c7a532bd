package connection_test

import (
	"testing"

	"go-employee-directory/internal/config"
	"go-employee-directory/internal/shared/connection"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestConnectRedisWithRetry_Disabled(t *testing.T) {
	rdb, err := connection.ConnectRedisWithRetry(config.RedisConfig{}, zap.NewNop())

	assert.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestConnectGORMWithRetry_NoAttempts(t *testing.T) {
	db, err := connection.ConnectGORMWithRetry(config.DBConfig{MaxRetries: 0}, zap.NewNop())

	assert.Error(t, err)
	assert.Nil(t, db)
}
