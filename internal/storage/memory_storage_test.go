package storage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_SaveGetDelete(t *testing.T) {
	storage := NewMemoryStorage()

	id := "test_file_id_12345"
	content := []byte("Hello, world!")
	meta := Metadata{Filename: "hello.pdf", MimeType: "application/pdf", Size: int64(len(content))}

	// --- Save ---
	err := storage.Save(id, content, meta)
	require.NoError(t, err)
	require.True(t, storage.Exists(id))

	// --- Get ---
	obj, err := storage.Get(id)
	require.NoError(t, err)
	require.Equal(t, content, obj.Data)
	require.Equal(t, meta, obj.Metadata)

	// --- Delete ---
	require.True(t, storage.Delete(id))
	require.False(t, storage.Exists(id))

	_, err = storage.Get(id)
	require.ErrorIs(t, err, ErrObjectNotFound)
}

func TestMemoryStorage_GetNonExistent(t *testing.T) {
	storage := NewMemoryStorage()

	_, err := storage.Get("non_existent_id")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrObjectNotFound)
}

func TestMemoryStorage_DeleteNonExistent(t *testing.T) {
	storage := NewMemoryStorage()
	require.False(t, storage.Delete("non_existent_id"))
}

func TestMemoryStorage_SaveOverwrites(t *testing.T) {
	storage := NewMemoryStorage()

	require.NoError(t, storage.Save("id", []byte("first"), Metadata{Filename: "a.pdf"}))
	require.NoError(t, storage.Save("id", []byte("second"), Metadata{Filename: "b.pdf"}))

	obj, err := storage.Get("id")
	require.NoError(t, err)
	require.Equal(t, "second", string(obj.Data))
	require.Equal(t, "b.pdf", obj.Filename)

	count, _ := storage.Stats()
	require.Equal(t, 1, count)
}

func TestMemoryStorage_CopiesBuffers(t *testing.T) {
	storage := NewMemoryStorage()

	data := []byte("original")
	require.NoError(t, storage.Save("id", data, Metadata{}))
	data[0] = 'X'

	obj, err := storage.Get("id")
	require.NoError(t, err)
	require.Equal(t, "original", string(obj.Data))

	obj.Data[0] = 'Y'
	again, err := storage.Get("id")
	require.NoError(t, err)
	require.Equal(t, "original", string(again.Data))
}

func TestMemoryStorage_EmptyID(t *testing.T) {
	storage := NewMemoryStorage()
	require.Error(t, storage.Save("", []byte("x"), Metadata{}))
}

func TestMemoryStorage_StatsWithLargeData(t *testing.T) {
	storage := NewMemoryStorage()

	largeContent := bytes.Repeat([]byte{'a'}, 1024*1024)
	require.NoError(t, storage.Save("large_file_id", largeContent, Metadata{Size: int64(len(largeContent))}))
	require.NoError(t, storage.Save("small_file_id", []byte("abc"), Metadata{Size: 3}))

	count, total := storage.Stats()
	require.Equal(t, 2, count)
	require.Equal(t, int64(len(largeContent)+3), total)
}
