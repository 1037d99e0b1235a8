package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_SaveAndDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	svc := NewBlobStorage(bucket, "https://cdn.example.com/media/")
	impl, ok := svc.(*blobStorage)
	require.True(t, ok)
	impl.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }

	key, err := svc.Save(ctx, "Cake.JPG", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "vendor_portfolio/2025/06/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	data, err := bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	attrs, err := bucket.Attributes(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)

	assert.Equal(t, "https://cdn.example.com/media/"+key, svc.URL(key))

	require.NoError(t, svc.Delete(ctx, key))
	exists, err := bucket.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorage_DeleteMissingIsNoop(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	svc := NewBlobStorage(bucket, "")

	assert.NoError(t, svc.Delete(context.Background(), "vendor_portfolio/missing.png"))
	assert.NoError(t, svc.Delete(context.Background(), ""))
}

func TestBlobStorage_URLWithoutBase(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	svc := NewBlobStorage(bucket, "")

	assert.Equal(t, "/vendor_portfolio/a.png", svc.URL("vendor_portfolio/a.png"))
	assert.Equal(t, "", svc.URL(""))
}
