package service

import (
	"Yatube/internal/api/dto"
	"Yatube/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexPaginatesNewestFirst(t *testing.T) {
	f := newFixture(t)
	posts := f.addPosts(t, f.author, f.group, 13)
	svc := NewFeedService(f.store, f.store, f.store, f.store, 10)
	ctx := context.Background()

	first, err := svc.Index(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 10, first.Len())
	assert.Equal(t, 2, first.NumPages)
	assert.Equal(t, posts[12].ID, first.Items[0].ID)
	assert.True(t, first.HasNext())

	second, err := svc.Index(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, 3, second.Len())
	assert.False(t, second.HasNext())

	// 越界落到最后一页，非整数回到第一页
	beyond, err := svc.Index(ctx, "99")
	require.NoError(t, err)
	assert.Equal(t, 2, beyond.Number)
	garbage, err := svc.Index(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 1, garbage.Number)
}

func TestIndexEmptyHasOnePage(t *testing.T) {
	f := newFixture(t)
	svc := NewFeedService(f.store, f.store, f.store, f.store, 10)

	page, err := svc.Index(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, 0, page.Len())
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.NumPages)
}

func TestGroupPosts(t *testing.T) {
	f := newFixture(t)
	other := &model.Group{Title: "Other", Slug: "other"}
	require.NoError(t, f.store.CreateGroup(context.Background(), other))
	f.addPosts(t, f.author, f.group, 3)
	f.addPosts(t, f.author, other, 2)
	f.addPosts(t, f.author, nil, 1)
	svc := NewFeedService(f.store, f.store, f.store, f.store, 10)

	res, err := svc.GroupPosts(context.Background(), "test-slug", "1")
	require.NoError(t, err)
	assert.Equal(t, f.group.ID, res.Group.ID)
	assert.Equal(t, 3, res.Page.Len())
	for _, p := range res.Page.Items {
		require.NotNil(t, p.Group)
		assert.Equal(t, "test-slug", p.Group.Slug)
	}

	_, err = svc.GroupPosts(context.Background(), "missing", "1")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestProfile(t *testing.T) {
	f := newFixture(t)
	f.addPosts(t, f.author, nil, 12)
	f.addPosts(t, f.reader, nil, 1)
	require.NoError(t, f.store.CreateFollow(context.Background(), &model.Follow{UserID: f.reader.ID, AuthorID: f.author.ID}))
	svc := NewFeedService(f.store, f.store, f.store, f.store, 10)
	ctx := context.Background()

	viewer := &dto.Viewer{ID: f.reader.ID, Username: f.reader.Username}
	res, err := svc.Profile(ctx, viewer, "auth", "2")
	require.NoError(t, err)
	assert.Equal(t, "auth", res.Author.Username)
	assert.Equal(t, int64(12), res.PostCount)
	assert.Equal(t, 2, res.Page.Len())
	assert.True(t, res.Following)
	assert.Equal(t, int64(1), res.FollowerCount)
	assert.Equal(t, int64(0), res.FollowingCount)

	guest, err := svc.Profile(ctx, nil, "auth", "")
	require.NoError(t, err)
	assert.False(t, guest.Following)

	_, err = svc.Profile(ctx, nil, "nobody", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFollowFeedOnlyFollowedAuthors(t *testing.T) {
	f := newFixture(t)
	stranger := &model.User{Username: "stranger"}
	require.NoError(t, f.store.CreateUser(context.Background(), stranger))
	f.addPosts(t, f.author, nil, 2)
	f.addPosts(t, stranger, nil, 3)
	require.NoError(t, f.store.CreateFollow(context.Background(), &model.Follow{UserID: f.reader.ID, AuthorID: f.author.ID}))
	svc := NewFeedService(f.store, f.store, f.store, f.store, 10)

	feed, err := svc.FollowFeed(context.Background(), f.reader.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 2, feed.Len())
	for _, p := range feed.Items {
		assert.Equal(t, f.author.ID, p.AuthorID)
	}

	empty, err := svc.FollowFeed(context.Background(), stranger.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}
