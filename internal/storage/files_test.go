package storage

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	h.Set("Content-Type", "application/pdf")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

func TestNewFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "notes")

	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveGeneratesUniqueNameKeepingExtension(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	first, err := fs.Save(fileHeader(t, "notes.pdf", []byte("one")))
	require.NoError(t, err)
	second, err := fs.Save(fileHeader(t, "notes.pdf", []byte("two")))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, ".pdf"))
	assert.NotEqual(t, "notes.pdf", first)

	content, err := os.ReadFile(fs.Path(first))
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), content)
}

func TestReadable(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	name, err := fs.Save(fileHeader(t, "notes.pdf", []byte("content")))
	require.NoError(t, err)

	assert.True(t, fs.Readable(name))
	assert.False(t, fs.Readable("never-stored.pdf"))
}
