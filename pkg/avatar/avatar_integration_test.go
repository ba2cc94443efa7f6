package avatar_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/fairfinder/fair-finder/pkg/avatar"
	"github.com/fairfinder/fair-finder/pkg/inttest"
	"github.com/fairfinder/fair-finder/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS3Store(t *testing.T) {
	t.Parallel()

	s3 := inttest.SetupS3(t, "avatars")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := storage.NewS3Client(logger, s3.Client, manager.NewUploader(s3.Client))
	store := avatar.NewS3Store(client, "avatars")
	ctx := context.Background()

	err := store.Save(ctx, "1-me-0a1b2c3d.png", strings.NewReader("png bytes"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, []byte("png bytes"), s3.GetObject(t, "avatars", "avatars/1-me-0a1b2c3d.png"))

	var buf bytes.Buffer
	var gotType string
	err = store.Open(ctx, "1-me-0a1b2c3d.png", &buf, func(_ int64, contentType string) {
		gotType = contentType
	})
	require.NoError(t, err)
	assert.Equal(t, "png bytes", buf.String())
	assert.Equal(t, "image/png", gotType)

	require.NoError(t, store.Delete(ctx, "1-me-0a1b2c3d.png"))

	err = store.Open(ctx, "1-me-0a1b2c3d.png", &buf, func(int64, string) {})
	require.Error(t, err)
}
