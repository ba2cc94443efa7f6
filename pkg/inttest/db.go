package inttest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/docker/go-connections/nat"
	"github.com/fairfinder/fair-finder/pkg/config"
	"github.com/fairfinder/fair-finder/pkg/storage"
	_ "github.com/lib/pq" // postgres driver
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

const (
	dbUser     = "fair"
	dbPassword = "fair"
	dbName     = "test_fair_finder"
	dbPort     = nat.Port("5432/tcp")
)

// SetupDB creates a PostgreSQL container with PostGIS. Gorm is connected to the DB and runs the
// migrations.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.TODO()

	req := testcontainers.ContainerRequest{
		Image: "postgis/postgis:16-3.4",
		Env: map[string]string{
			"POSTGRES_USER":     dbUser,
			"POSTGRES_PASSWORD": dbPassword,
			"POSTGRES_DB":       dbName,
		},
		ExposedPorts: []string{string(dbPort)},
		WaitingFor: wait.ForSQL(dbPort, "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port.Port(), dbUser, dbPassword, dbName)
		}),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start DB")
	t.Cleanup(func() { require.NoError(t, testcontainers.TerminateContainer(container), "failed to stop DB") })

	host, err := container.Host(ctx)
	require.NoError(t, err, "failed to get DB host")
	port, err := container.MappedPort(ctx, dbPort)
	require.NoError(t, err, "failed to get DB port")

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	db, err := storage.NewDatabase(logger, config.Postgresql{
		Host:         host,
		Port:         port.Int(),
		Username:     dbUser,
		Password:     dbPassword,
		DatabaseName: dbName,
	})
	require.NoError(t, err, "failed to setup DB")
	return db
}
