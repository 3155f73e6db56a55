package service

import (
	"Yatube/internal/api/dto"
	"Yatube/internal/repository"
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostService(f *fixture) PostService {
	return NewPostService(f.store, f.store, f.store, NewImageService(f.media, 1<<20))
}

func TestCreatePostWithImage(t *testing.T) {
	f := newFixture(t)
	svc := newPostService(f)
	ctx := context.Background()

	form := &dto.PostFormDTO{Text: "Test text", Group: strconv.FormatUint(f.group.ID, 10)}
	post, err := svc.CreatePost(ctx, f.author.ID, form, &dto.ImageUpload{Filename: "small.gif", Data: smallGIF})
	require.NoError(t, err)
	assert.Equal(t, "posts/small.gif", post.Image)
	require.NotNil(t, post.GroupID)
	assert.Equal(t, f.group.ID, *post.GroupID)

	_, contentType, ok := f.media.Get("posts/small.gif")
	require.True(t, ok)
	assert.Equal(t, "image/gif", contentType)
	_, _, ok = f.media.Get("posts/thumbs/small.gif")
	assert.True(t, ok)

	// 同名文件不覆盖
	again, err := svc.CreatePost(ctx, f.author.ID, &dto.PostFormDTO{Text: "again"}, &dto.ImageUpload{Filename: "small.gif", Data: smallGIF})
	require.NoError(t, err)
	assert.NotEqual(t, "posts/small.gif", again.Image)
	assert.True(t, strings.HasPrefix(again.Image, "posts/small_"))
	assert.True(t, strings.HasSuffix(again.Image, ".gif"))

	count, err := f.store.CountPosts(ctx, repository.PostFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCreatePostRejectsBadInput(t *testing.T) {
	f := newFixture(t)
	svc := newPostService(f)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, f.author.ID, &dto.PostFormDTO{Text: "text", Group: "999"}, nil)
	assert.ErrorIs(t, err, ErrGroupNotFound)

	_, err = svc.CreatePost(ctx, f.author.ID, &dto.PostFormDTO{Text: " \r\n "}, nil)
	assert.ErrorIs(t, err, ErrPostTextEmpty)

	_, err = svc.CreatePost(ctx, f.author.ID, &dto.PostFormDTO{Text: "text"}, &dto.ImageUpload{Filename: "a.txt", Data: []byte("not an image")})
	assert.ErrorIs(t, err, ErrImageInvalid)

	big := make([]byte, 2<<20)
	_, err = svc.CreatePost(ctx, f.author.ID, &dto.PostFormDTO{Text: "text"}, &dto.ImageUpload{Filename: "big.gif", Data: big})
	assert.ErrorIs(t, err, ErrImageTooLarge)

	count, err := f.store.CountPosts(ctx, repository.PostFilter{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUpdatePost(t *testing.T) {
	f := newFixture(t)
	svc := newPostService(f)
	ctx := context.Background()
	post := f.addPosts(t, f.author, f.group, 1)[0]

	_, err := svc.UpdatePost(ctx, f.reader.ID, post.ID, &dto.PostFormDTO{Text: "hacked"}, nil)
	assert.ErrorIs(t, err, ErrPostNotAuthor)

	_, err = svc.UpdatePost(ctx, f.author.ID, 999, &dto.PostFormDTO{Text: "x"}, nil)
	assert.ErrorIs(t, err, ErrPostNotFound)

	updated, err := svc.UpdatePost(ctx, f.author.ID, post.ID, &dto.PostFormDTO{Text: "Edited text"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Edited text", updated.Text)
	assert.Nil(t, updated.GroupID)

	stored, err := f.store.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Edited text", stored.Text)
	assert.Nil(t, stored.Group)
	assert.Empty(t, stored.Image)

	withImage, err := svc.UpdatePost(ctx, f.author.ID, post.ID, &dto.PostFormDTO{Text: "Edited text"}, &dto.ImageUpload{Filename: "small.gif", Data: smallGIF})
	require.NoError(t, err)
	assert.Equal(t, "posts/small.gif", withImage.Image)

	kept, err := svc.UpdatePost(ctx, f.author.ID, post.ID, &dto.PostFormDTO{Text: "Again"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "posts/small.gif", kept.Image)
}

func TestPostTextStoredVerbatim(t *testing.T) {
	f := newFixture(t)
	svc := newPostService(f)
	ctx := context.Background()

	const text = "It's Tom & Jerry, a < b"
	post, err := svc.CreatePost(ctx, f.author.ID, &dto.PostFormDTO{Text: text}, nil)
	require.NoError(t, err)

	stored, err := f.store.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, text, stored.Text)
	assert.Equal(t, "It's Tom & Jerr", stored.String())

	const edited = "<b>bold</b> & \"quoted\"\n\nsecond"
	_, err = svc.UpdatePost(ctx, f.author.ID, post.ID, &dto.PostFormDTO{Text: edited}, nil)
	require.NoError(t, err)

	stored, err = f.store.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, edited, stored.Text)
	assert.Equal(t, "<b>bold</b> & \"", stored.String())
}

func TestGetPostDetail(t *testing.T) {
	f := newFixture(t)
	svc := newPostService(f)
	comments := NewCommentService(f.store, f.store)
	ctx := context.Background()
	posts := f.addPosts(t, f.author, nil, 3)

	_, err := comments.AddComment(ctx, f.reader.ID, posts[0].ID, "first")
	require.NoError(t, err)
	_, err = comments.AddComment(ctx, f.reader.ID, posts[0].ID, "second")
	require.NoError(t, err)

	detail, err := svc.GetPostDetail(ctx, posts[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), detail.PostCount)
	require.Len(t, detail.Comments, 2)
	assert.Equal(t, "second", detail.Comments[0].Text)
	assert.Equal(t, "reader", detail.Comments[0].Author.Username)

	_, err = svc.GetPostDetail(ctx, 999)
	assert.ErrorIs(t, err, ErrPostNotFound)
}
