package service

import (
	"Yatube/internal/model"
	"Yatube/internal/pkg/storage"
	"Yatube/internal/repository/repotest"
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// 2x1 GIF
var smallGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x02,
	0x00, 0x01, 0x00, 0x80, 0x00, 0x00, 0x00,
	0x00, 0x00, 0xFF, 0xFF, 0xFF, 0x21, 0xF9,
	0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x2C,
	0x00, 0x00, 0x00, 0x00, 0x02, 0x00, 0x01,
	0x00, 0x00, 0x02, 0x02, 0x0C, 0x0A, 0x00,
	0x3B,
}

type fixture struct {
	store  *repotest.Store
	media  *storage.MemoryStore
	author *model.User
	reader *model.User
	group  *model.Group
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	f := &fixture{
		store:  repotest.NewStore(),
		media:  storage.NewMemoryStore("http://media.test/yatube"),
		author: &model.User{Username: "auth"},
		reader: &model.User{Username: "reader"},
		group:  &model.Group{Title: "Test group", Slug: "test-slug", Description: "Test description"},
	}
	require.NoError(t, f.store.CreateUser(ctx, f.author))
	require.NoError(t, f.store.CreateUser(ctx, f.reader))
	require.NoError(t, f.store.CreateGroup(ctx, f.group))
	return f
}

func (f *fixture) addPosts(t *testing.T, author *model.User, group *model.Group, n int) []*model.Post {
	t.Helper()
	posts := make([]*model.Post, 0, n)
	for i := 0; i < n; i++ {
		post := &model.Post{Text: "Post " + strconv.Itoa(i), AuthorID: author.ID}
		if group != nil {
			post.GroupID = &group.ID
		}
		require.NoError(t, f.store.CreatePost(context.Background(), post))
		posts = append(posts, post)
	}
	return posts
}
