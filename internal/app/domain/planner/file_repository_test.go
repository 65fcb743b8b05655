package planner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/mindful-miles/internal/app/models"
)

func entry(id string) models.PlannerEntry {
	return models.PlannerEntry{ID: id, Name: "Spot " + id, Location: "Rishikesh", Type: "Meditation"}
}

func TestFileRepository_AddListRemove(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "planner.json")
	repo := NewFileRepository(path, zap.NewNop())

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = repo.Add(ctx, entry("a"))
	require.NoError(t, err)
	assert.Equal(t, []models.PlannerEntry{entry("a")}, got)

	got, err = repo.Add(ctx, entry("b"))
	require.NoError(t, err)
	require.Len(t, got, 2)

	dup := entry("a")
	dup.Name = "renamed"
	got, err = repo.Add(ctx, dup)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Spot a", got[0].Name)

	got, err = repo.Remove(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []models.PlannerEntry{entry("b")}, got)

	got, err = repo.Remove(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, []models.PlannerEntry{entry("b")}, got)

	reopened, err := NewFileRepository(path, zap.NewNop()).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.PlannerEntry{entry("b")}, reopened)
}

func TestFileRepository_CorruptFileReadsEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "planner.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	repo := NewFileRepository(path, zap.NewNop())

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = repo.Add(ctx, entry("a"))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFileRepository_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "planner.json")

	_, err := NewFileRepository(path, zap.NewNop()).Add(context.Background(), entry("a"))
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestFileRepository_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := NewFileRepository(filepath.Join(dir, "planner.json"), zap.NewNop())

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Add(ctx, entry(fmt.Sprintf("id-%d", i)))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, n)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1, "temp files must not be left behind")
}
