//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"go_study_sheet/internal/model"
	"go_study_sheet/internal/repository"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var integDB *gorm.DB

func TestMain(m *testing.M) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=study_sheet",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start PostgreSQL resource: %s", err)
	}

	dbHost := os.Getenv("INTEG_DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}
	dsn := fmt.Sprintf("host=%s port=%s user=user password=secret dbname=study_sheet sslmode=disable",
		dbHost, resource.GetPort("5432/tcp"))

	if err = pool.Retry(func() error {
		var errRetry error
		integDB, errRetry = repository.NewDB("postgres", dsn, logger)
		if errRetry != nil {
			logger.Warn("Retry: DB connection attempt failed.", slog.Any("error", errRetry))
		}
		return errRetry
	}); err != nil {
		_ = pool.Purge(resource)
		log.Fatalf("Could not connect to database: %s", err)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Printf("Could not purge resource: %s", err)
	}
	os.Exit(code)
}

func truncate(t *testing.T) {
	t.Helper()
	require.NoError(t, integDB.Exec("TRUNCATE TABLE study_rows").Error)
}

func TestGormRecordRepository_Postgres_RoundTrip(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := repository.NewGormRecordRepository(integDB)

	rec := &model.StudyRecord{Subject: "英語", Question: "apple", Answer: "りんご"}
	require.NoError(t, repo.Append(ctx, rec))
	assert.Equal(t, 0, rec.RowIndex)

	require.NoError(t, repo.SetCounts(ctx, rec.RowIndex, 2, 1))
	got, err := repo.ReadRow(ctx, rec.RowIndex)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Tried)
	assert.Equal(t, 1, got.Correct)
}

func TestGormRecordRepository_Postgres_ConcurrentAppend(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := repository.NewGormRecordRepository(integDB)

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Append(ctx, &model.StudyRecord{Subject: "英語", Question: fmt.Sprintf("q%d", i), Answer: "a"})
		}(i)
	}
	wg.Wait()

	// 行番号の衝突は ErrConflict になり、重複行は作られない
	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, model.ErrConflict)
	}
	records, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, ok)
	seen := map[int]bool{}
	for _, r := range records {
		assert.False(t, seen[r.RowIndex], "duplicate row index %d", r.RowIndex)
		seen[r.RowIndex] = true
	}
}
