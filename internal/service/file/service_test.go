package file

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/managely-hr/hr-backend-go/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileService(t *testing.T) FileService {
	t.Helper()
	local, err := storage.NewLocalStorage(t.TempDir(), "http://localhost/uploads")
	require.NoError(t, err)
	return NewFileService(local)
}

func pngOf(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestUploadAvatar_ResizesLargeImages(t *testing.T) {
	svc := newTestFileService(t)
	ctx := t.Context()

	key, err := svc.UploadAvatar(ctx, "emp-1", pngOf(t, 1024, 256), "me.PNG")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "avatars/emp-1/"))
	assert.True(t, strings.HasSuffix(key, ".png"))

	rc, err := svc.Open(ctx, key)
	require.NoError(t, err)
	defer rc.Close()
	cfg, err := png.DecodeConfig(rc)
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.Width)
	assert.Equal(t, 128, cfg.Height)
}

func TestUploadAvatar_Rejects(t *testing.T) {
	svc := newTestFileService(t)

	_, err := svc.UploadAvatar(t.Context(), "emp-1", strings.NewReader("x"), "me.gif")
	assert.ErrorIs(t, err, ErrUnsupportedFileType)

	_, err = svc.UploadAvatar(t.Context(), "emp-1", strings.NewReader("not an image"), "me.jpg")
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestUploadDocument(t *testing.T) {
	svc := newTestFileService(t)
	ctx := t.Context()

	key, err := svc.UploadDocument(ctx, "emp-1", strings.NewReader("policy"), "handbook.pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "documents/emp-1/"))
	assert.Equal(t, "http://localhost/uploads/"+key, svc.URL(key))

	rc, err := svc.Open(ctx, key)
	require.NoError(t, err)
	body, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "policy", string(body))

	_, err = svc.UploadDocument(ctx, "emp-1", strings.NewReader("x"), "script.sh")
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", ContentType("slip.PDF"))
	assert.Equal(t, "application/octet-stream", ContentType("noext"))
}
