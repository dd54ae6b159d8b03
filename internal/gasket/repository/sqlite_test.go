package repository

import (
	"context"
	"path/filepath"
	"testing"

	"gasket-service/internal/gasket/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "db", "drawings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := New(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestRepository_InsertAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rec := &models.DrawingRecord{
		ID:        uuid.NewString(),
		FileName:  "gasket_40holes.dxf",
		Path:      "/tmp/gasket_40holes.dxf",
		HoleCount: 40,
		Params:    map[string]string{"A": "200", "holeConfiguration": "centered"},
		Unit:      "mm",
	}
	require.NoError(t, repo.Insert(ctx, rec))
	assert.NotEmpty(t, rec.CreatedAt)

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestRepository_GetMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_ListNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		rec := &models.DrawingRecord{
			ID:        uuid.NewString(),
			FileName:  "f.dxf",
			Path:      "f.dxf",
			HoleCount: i,
			Params:    map[string]string{},
			Unit:      "mm",
			CreatedAt: "2026-10-15T10:00:00Z",
		}
		require.NoError(t, repo.Insert(ctx, rec))
		ids = append(ids, rec.ID)
	}

	list, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ids[2], list[0].ID)
	assert.Equal(t, ids[1], list[1].ID)
}

func TestRepository_InitIsRepeatable(t *testing.T) {
	repo := newTestRepo(t)
	assert.NoError(t, repo.Init(context.Background()))
}
