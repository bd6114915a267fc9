package store

import (
	"context"
	"fmt"
	"os/exec"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("could not start redis container: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := setupRedis(t)
	s := NewRedisStore(client)

	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	state := sampleState(t)
	require.NoError(t, s.Save(ctx, state))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Maria", loaded.User.Name)
	require.NotNil(t, loaded.Goal)
	assert.Equal(t, 2450, loaded.Goal.DailyWater)

	state.User.Points = 777
	require.NoError(t, s.Save(ctx, state))
	loaded, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 777, loaded.User.Points)
}

func TestRedisStoreCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	client := setupRedis(t)
	require.NoError(t, client.Set(ctx, SnapshotKey, "{not json", 0).Err())

	s := NewRedisStore(client)
	_, err := s.Load(ctx)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
