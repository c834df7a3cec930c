package testutils

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// RedisImage is the image started by StartRedisContainer
	RedisImage = "redis:7-alpine"

	// RedisAddrEnv points tests at an already running Redis instead of a container
	RedisAddrEnv = "SPY_TEST_REDIS_ADDR"
)

// TestRedisConfig holds configuration for test Redis instances
type TestRedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DefaultTestRedisConfig returns the default test Redis configuration
func DefaultTestRedisConfig() *TestRedisConfig {
	addr := os.Getenv(RedisAddrEnv)
	if addr == "" {
		addr = "localhost:6379"
	}
	return &TestRedisConfig{
		Addr: addr,
		DB:   15, // Use DB 15 for tests to avoid conflicts
	}
}

// StartRedisContainer starts a throwaway Redis container and returns its
// address. The container is terminated when the test finishes.
func StartRedisContainer(t *testing.T) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        RedisImage,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("Docker not available for testing: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err, "Failed to get container host")
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err, "Failed to get mapped redis port")

	return fmt.Sprintf("%s:%s", host, port.Port())
}

// CreateTestRedisClient creates a Redis client for testing
func CreateTestRedisClient(t *testing.T, cfg *TestRedisConfig) redis.UniversalClient {
	t.Helper()
	if cfg == nil {
		cfg = DefaultTestRedisConfig()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := WaitForRedis(client, 5*time.Second); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available for testing: %v", err)
	}

	// Clear the test database
	err := client.FlushDB(context.Background()).Err()
	require.NoError(t, err, "Failed to flush test Redis database")

	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})

	return client
}

// CreateTestRedisClientOrSkip prefers an address from SPY_TEST_REDIS_ADDR and
// falls back to a container.
func CreateTestRedisClientOrSkip(t *testing.T) redis.UniversalClient {
	t.Helper()

	cfg := DefaultTestRedisConfig()
	if os.Getenv(RedisAddrEnv) == "" {
		cfg.Addr = StartRedisContainer(t)
		cfg.DB = 0
	}
	return CreateTestRedisClient(t, cfg)
}

// WaitForRedis waits for Redis to answer PING or times out
func WaitForRedis(client redis.UniversalClient, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		err := client.Ping(ctx).Err()
		cancel()

		if err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("redis not ready after %v: %w", timeout, err)
		}
		time.Sleep(100 * time.Millisecond)
	}
}
