// Package testcontainers starts throwaway MongoDB, MySQL and Redis servers
// for integration tests. Every helper skips the test in -short mode and
// terminates its container through t.Cleanup.
package testcontainers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	startupTimeout = 2 * time.Minute

	mongoPort = "27017"
	mysqlPort = "3306"
	redisPort = "6379"

	mysqlPassword = "test"
	mysqlDatabase = "sportszone"
)

// Endpoint is the host-reachable address of a started container.
type Endpoint struct {
	Host string
	Port string
}

// Addr returns host:port.
func (e Endpoint) Addr() string {
	return e.Host + ":" + e.Port
}

func start(t *testing.T, req testcontainers.ContainerRequest, port string) Endpoint {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start %s: %v", req.Image, err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Errorf("failed to terminate %s: %v", req.Image, err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := container.MappedPort(ctx, nat.Port(port))
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}
	return Endpoint{Host: host, Port: mapped.Port()}
}

// MongoURI starts a MongoDB server and returns its connection string.
func MongoURI(t *testing.T) string {
	t.Helper()
	ep := start(t, testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{mongoPort + "/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForLog("Waiting for connections"),
			wait.ForListeningPort(mongoPort+"/tcp"),
		).WithDeadline(startupTimeout),
	}, mongoPort)
	return fmt.Sprintf("mongodb://%s", ep.Addr())
}

// MySQLDSN starts a MySQL server and returns a DSN in the format the
// application expects.
func MySQLDSN(t *testing.T) string {
	t.Helper()
	ep := start(t, testcontainers.ContainerRequest{
		Image:        "mysql:8.0",
		ExposedPorts: []string{mysqlPort + "/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": mysqlPassword,
			"MYSQL_DATABASE":      mysqlDatabase,
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("port: 3306  MySQL Community Server"),
			wait.ForListeningPort(mysqlPort+"/tcp"),
		).WithDeadline(startupTimeout),
	}, mysqlPort)
	return fmt.Sprintf("root:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		mysqlPassword, ep.Addr(), mysqlDatabase)
}

// RedisAddr starts a Redis server and returns its address.
func RedisAddr(t *testing.T) string {
	t.Helper()
	ep := start(t, testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{redisPort + "/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}, redisPort)
	return ep.Addr()
}
