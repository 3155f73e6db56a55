package job

import (
	"Yatube/internal/model"
	"Yatube/internal/pkg/storage"
	"Yatube/internal/repository/repotest"
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func put(t *testing.T, store *storage.MemoryStore, key string, at time.Time) {
	t.Helper()
	data := []byte("gif")
	require.NoError(t, store.Put(context.Background(), key, bytes.NewReader(data), int64(len(data)), "image/gif"))
	store.Touch(key, at)
}

func TestMediaCleanupJob_Cleanup(t *testing.T) {
	ctx := context.Background()
	repo := repotest.NewStore()
	media := storage.NewMemoryStore("http://media.test")

	author := &model.User{Username: "auth"}
	require.NoError(t, repo.CreateUser(ctx, author))
	require.NoError(t, repo.CreatePost(ctx, &model.Post{Text: "with image", AuthorID: author.ID, Image: "posts/kept.gif"}))

	old := time.Now().Add(-48 * time.Hour)
	put(t, media, "posts/kept.gif", old)
	put(t, media, "posts/thumbs/kept.gif", old)
	put(t, media, "posts/orphan.gif", old)
	put(t, media, "posts/thumbs/orphan.gif", old)
	put(t, media, "posts/fresh.gif", time.Now())

	job := NewMediaCleanupJob(repo, media, 24*time.Hour)
	count, err := job.Cleanup(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	for key, want := range map[string]bool{
		"posts/kept.gif":          true,
		"posts/thumbs/kept.gif":   true,
		"posts/orphan.gif":        false,
		"posts/thumbs/orphan.gif": false,
		"posts/fresh.gif":         true,
	} {
		ok, err := media.Exists(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, want, ok, key)
	}
}

func TestMediaCleanupJob_RunIsIdempotent(t *testing.T) {
	repo := repotest.NewStore()
	media := storage.NewMemoryStore("http://media.test")
	put(t, media, "posts/orphan.gif", time.Now().Add(-72*time.Hour))

	job := NewMediaCleanupJob(repo, media, time.Hour)
	job.Run()
	job.Run()

	ok, err := media.Exists(context.Background(), "posts/orphan.gif")
	require.NoError(t, err)
	assert.False(t, ok)
}
