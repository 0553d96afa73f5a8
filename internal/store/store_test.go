package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/GlitchedDuck/Manager-hub/internal/apperr"
	"github.com/GlitchedDuck/Manager-hub/internal/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// gatewayContract runs the same round trip against any Gateway.
func gatewayContract(t *testing.T, gw Gateway) {
	t.Helper()
	ctx := context.Background()

	items, found, err := LoadCollection[row](ctx, gw, "checkins")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, items)
	assert.NotNil(t, items)

	want := []row{{ID: 1, Name: "first"}, {ID: 2, Name: "second"}}
	require.NoError(t, SaveCollection(ctx, gw, "checkins", want))

	got, found, err := LoadCollection[row](ctx, gw, "checkins")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)

	// saving again replaces the whole document
	require.NoError(t, SaveCollection(ctx, gw, "checkins", want[:1]))
	got, _, err = LoadCollection[row](ctx, gw, "checkins")
	require.NoError(t, err)
	assert.Equal(t, want[:1], got)

	t.Run("nil saves as empty array", func(t *testing.T) {
		require.NoError(t, SaveCollection[row](ctx, gw, "actions", nil))
		raw, err := gw.Load(ctx, "actions")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(raw))
	})

	t.Run("bad name", func(t *testing.T) {
		err := SaveCollection(ctx, gw, "../escape", want)
		require.Error(t, err)
		assert.True(t, apperr.IsPersistence(err))
	})
}

func TestFileGateway(t *testing.T) {
	dir := t.TempDir()
	gw, err := NewFileGateway(dir)
	require.NoError(t, err)
	gatewayContract(t, gw)

	t.Run("two-space indent on disk", func(t *testing.T) {
		require.NoError(t, SaveCollection(context.Background(), gw, "team_members", []string{"Alice Johnson"}))
		raw, err := os.ReadFile(filepath.Join(dir, "team_members.json"))
		require.NoError(t, err)
		assert.Equal(t, "[\n  \"Alice Johnson\"\n]", string(raw))
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotContains(t, e.Name(), ".tmp-")
		}
	})
}

func TestLoadCollectionCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	gw, err := NewFileGateway(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "actions.json"), []byte("{not json"), 0o644))

	items, found, err := LoadCollection[row](context.Background(), gw, "actions")
	require.Error(t, err)
	assert.True(t, apperr.IsPersistence(err))
	assert.True(t, found)
	assert.Empty(t, items)

	var pe *apperr.PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "decode", pe.Op)
	assert.Equal(t, "actions", pe.Collection)
}

func TestSaveCollectionFailure(t *testing.T) {
	gw := NewMemoryGateway()
	gw.FailSave = errors.New("read-only filesystem")

	err := SaveCollection(context.Background(), gw, "actions", []row{{ID: 1}})
	require.Error(t, err)
	assert.True(t, apperr.IsPersistence(err))
	assert.ErrorIs(t, err, gw.FailSave)
}

func TestMemoryGateway(t *testing.T) {
	gatewayContract(t, NewMemoryGateway())
}

func TestDBGatewaySQLite(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	gw, err := NewDBGateway(db)
	require.NoError(t, err)
	gatewayContract(t, gw)
}

type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	body, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[*in.Bucket+"/"+*in.Key] = body
	return &s3.PutObjectOutput{}, nil
}

func TestS3Gateway(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}}
	gw := newS3Gateway(fake, "hub", "team-a/")
	gatewayContract(t, gw)

	_, ok := fake.objects["hub/team-a/checkins.json"]
	assert.True(t, ok)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	gw, err := Open(ctx, config.StorageConfig{Driver: "file", DataDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FileGateway{}, gw)

	gw, err = Open(ctx, config.StorageConfig{Driver: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryGateway{}, gw)

	gw, err = Open(ctx, config.StorageConfig{Driver: "sqlite", Database: config.DatabaseConfig{Path: ":memory:"}})
	require.NoError(t, err)
	assert.IsType(t, &DBGateway{}, gw)

	_, err = Open(ctx, config.StorageConfig{Driver: "s3"})
	assert.Error(t, err)

	_, err = Open(ctx, config.StorageConfig{Driver: "floppy"})
	assert.Error(t, err)
}
