package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoStore_Save(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewAferoStore(fs)

	n, err := store.Save(context.Background(), "out/frames/3.svg", strings.NewReader("<svg/>"))
	require.NoError(t, err)
	assert.EqualValues(t, 6, n)

	data, err := afero.ReadFile(fs, "out/frames/3.svg")
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))

	exists, err := afero.Exists(fs, "out/frames/3.svg.tmp")
	require.NoError(t, err)
	assert.False(t, exists, "temporary file is renamed away")
}

func TestAferoStore_SaveOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewAferoStore(fs)
	ctx := context.Background()

	_, err := store.Save(ctx, "frame.svg", strings.NewReader("old content"))
	require.NoError(t, err)
	_, err = store.Save(ctx, "frame.svg", strings.NewReader("new"))
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "frame.svg")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestAferoStore_SaveCanceled(t *testing.T) {
	store := NewAferoStore(afero.NewMemMapFs())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Save(ctx, "frame.svg", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAferoStore_ReadOnly(t *testing.T) {
	store := NewAferoStore(afero.NewReadOnlyFs(afero.NewMemMapFs()))

	_, err := store.Save(context.Background(), "dir/frame.svg", strings.NewReader("x"))
	assert.Error(t, err)
}
