//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"cattags/internal/domain"
)

// projectRoot walks upwards until it finds go.mod.
func projectRoot(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return wd
		}
		if wd == filepath.Dir(wd) {
			t.Fatal("go.mod not found in any parent directory")
		}
		wd = filepath.Dir(wd)
	}
}

// newTestDB starts postgres in a container and applies db/migrations.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "testuser",
				"POSTGRES_PASSWORD": "testpassword",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)
	dbURL := fmt.Sprintf("postgres://testuser:testpassword@%s:%s/testdb?sslmode=disable", host, port.Port())

	source := "file://" + filepath.ToSlash(filepath.Join(projectRoot(t), "db", "migrations"))
	m, err := migrate.New(source, dbURL)
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("failed to run up migrations: %v", err)
	}

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestTagRepository_Integration(t *testing.T) {
	ctx := context.Background()
	repo := NewTagRepository(newTestDB(t))

	cute := &domain.Tag{Value: "cute"}
	require.NoError(t, repo.Create(ctx, cute))
	assert.NotEmpty(t, cute.ID)

	err := repo.Create(ctx, &domain.Tag{Value: "CUTE"})
	require.ErrorIs(t, err, domain.ErrTagExists)

	ok, err := repo.Exists(ctx, "Cute")
	require.NoError(t, err)
	assert.True(t, ok)

	updated, err := repo.Update(ctx, "cute", "Funny")
	require.NoError(t, err)
	assert.Equal(t, cute.ID, updated.ID)
	assert.Equal(t, "funny", updated.Value)

	_, err = repo.Update(ctx, "cute", "orange")
	require.ErrorIs(t, err, domain.ErrTagNotFound)

	tags, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "funny", tags[0].Value)

	require.NoError(t, repo.Delete(ctx, "funny"))
	require.ErrorIs(t, repo.Delete(ctx, "funny"), domain.ErrTagNotFound)
}
