package service

import (
	"Yatube/internal/api/dto"
	"Yatube/internal/model"
	"Yatube/internal/pkg/cache"
	"Yatube/internal/pkg/consts"
	"Yatube/internal/pkg/util"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gosimple/slug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminService(f *fixture, pages cache.PageStore) AdminService {
	return NewAdminService(f.store, f.store, f.store, f.store, pages)
}

func TestAdminListPosts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addPosts(t, f.author, f.group, 1)
	lone := &model.Post{Text: "needle in a haystack", AuthorID: f.reader.ID}
	require.NoError(t, f.store.CreatePost(ctx, lone))
	svc := newAdminService(f, cache.NewMemoryPageStore())

	all, err := svc.ListPosts(ctx, &dto.AdminPostQuery{})
	require.NoError(t, err)
	require.Len(t, all.Items, 2)
	assert.Equal(t, lone.ID, all.Items[0].ID)
	assert.Equal(t, consts.AdminEmptyValue, all.Items[0].Group)
	assert.Equal(t, "reader", all.Items[0].Author)
	assert.Equal(t, "Test group", all.Items[1].Group)

	found, err := svc.ListPosts(ctx, &dto.AdminPostQuery{Q: "needle"})
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, lone.ID, found.Items[0].ID)

	day := lone.PubDate.In(time.Local).Format(time.DateOnly)
	byDay, err := svc.ListPosts(ctx, &dto.AdminPostQuery{Date: day})
	require.NoError(t, err)
	assert.Len(t, byDay.Items, 2)

	none, err := svc.ListPosts(ctx, &dto.AdminPostQuery{Date: "1999-01-01"})
	require.NoError(t, err)
	assert.Empty(t, none.Items)

	_, err = svc.ListPosts(ctx, &dto.AdminPostQuery{Date: "yesterday"})
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestAdminSetPostGroup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	post := f.addPosts(t, f.author, nil, 1)[0]
	svc := newAdminService(f, cache.NewMemoryPageStore())

	require.NoError(t, svc.SetPostGroup(ctx, post.ID, &f.group.ID))
	stored, err := f.store.GetPost(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Group)
	assert.Equal(t, "test-slug", stored.Group.Slug)

	require.NoError(t, svc.SetPostGroup(ctx, post.ID, nil))
	stored, err = f.store.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Group)

	assert.ErrorIs(t, svc.SetPostGroup(ctx, post.ID, util.PtrUint64(999)), ErrGroupNotFound)
	assert.ErrorIs(t, svc.SetPostGroup(ctx, 999, nil), ErrPostNotFound)
}

func TestAdminFollowsAndComments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	post := f.addPosts(t, f.author, nil, 1)[0]
	require.NoError(t, NewFollowService(f.store, f.store).Follow(ctx, f.reader.ID, "auth"))
	comment, err := NewCommentService(f.store, f.store).AddComment(ctx, f.reader.ID, post.ID, "hello")
	require.NoError(t, err)
	svc := newAdminService(f, cache.NewMemoryPageStore())

	follows, err := svc.ListFollows(ctx, "")
	require.NoError(t, err)
	require.Len(t, follows.Items, 1)
	assert.Equal(t, "reader", follows.Items[0].User)
	assert.Equal(t, "auth", follows.Items[0].Author)

	comments, err := svc.ListComments(ctx, "1")
	require.NoError(t, err)
	require.Len(t, comments.Items, 1)
	assert.Equal(t, "hello", comments.Items[0].Text)
	assert.Equal(t, int64(1), comments.Total)

	require.NoError(t, svc.DeleteComment(ctx, comment.ID))
	assert.ErrorIs(t, svc.DeleteComment(ctx, comment.ID), ErrPostCommentNotFound)
}

func TestAdminClearPageCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pages := cache.NewMemoryPageStore()
	require.NoError(t, pages.Set(ctx, "/", &cache.Page{Status: 200}, time.Minute))
	svc := newAdminService(f, pages)

	n, err := svc.ClearPageCache(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCreateGroupSlug(t *testing.T) {
	f := newFixture(t)
	svc := NewGroupService(f.store)
	ctx := context.Background()

	group, err := svc.CreateGroup(ctx, &dto.CreateGroupDTO{Title: "Лев Толстой"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(group.Slug, "lev-"), group.Slug)
	assert.True(t, slug.IsSlug(group.Slug))
	assert.NotZero(t, group.ID)

	_, err = svc.CreateGroup(ctx, &dto.CreateGroupDTO{Title: "Copy", Slug: "test-slug"})
	assert.ErrorIs(t, err, ErrSlugExist)

	groups, err := svc.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Test group", groups[0].Title)
	assert.Equal(t, "Лев Толстой", groups[1].Title)
}
