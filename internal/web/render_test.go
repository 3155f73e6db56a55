package web

import (
	"Yatube/internal/api/dto"
	"Yatube/internal/model"
	"Yatube/internal/pkg/pagination"
	"Yatube/internal/pkg/storage"
	"Yatube/internal/pkg/util"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPage(t *testing.T, name string, data gin.H) *goquery.Document {
	t.Helper()
	r, err := NewRenderer(storage.NewMemoryStore("http://media.test/yatube"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, r.Instance(name, data).Render(w))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	return doc
}

func samplePost() *model.Post {
	group := &model.Group{ID: 3, Title: "Test group", Slug: "test-slug"}
	return &model.Post{
		ID:       7,
		Text:     "Line one\nline two",
		PubDate:  time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC),
		AuthorID: 1,
		GroupID:  &group.ID,
		Image:    "posts/small.gif",
		Author:   model.User{ID: 1, Username: "auth"},
		Group:    group,
	}
}

func TestAllPagesParse(t *testing.T) {
	r, err := NewRenderer(storage.NewMemoryStore(""))
	require.NoError(t, err)
	for _, page := range pages {
		assert.Contains(t, r.templates, page)
	}
}

func TestIndexRendersCardsAndPaginator(t *testing.T) {
	page := pagination.New([]*model.Post{samplePost()}, 1, 10, 13)
	doc := renderPage(t, PageIndex, gin.H{"page_obj": page, "viewer": (*dto.Viewer)(nil)})

	assert.Equal(t, 1, doc.Find("article.post").Length())
	assert.Equal(t, "http://media.test/yatube/posts/thumbs/small.gif", doc.Find("article.post img").AttrOr("src", ""))
	assert.Equal(t, "/group/test-slug/", doc.Find("a.post-group").AttrOr("href", ""))
	assert.Equal(t, "8 March 2024", doc.Find("time.post-date").Text())
	assert.Equal(t, 1, doc.Find(".post-text br").Length())
	assert.Equal(t, "?page=2", doc.Find(".pagination a:contains('Next')").AttrOr("href", ""))
	assert.Equal(t, 1, doc.Find("a[href='/auth/login/']").Length())
}

func TestPostDetailForAuthor(t *testing.T) {
	post := samplePost()
	comments := []*model.Comment{{ID: 1, Text: "hello", Author: model.User{Username: "reader"}}}
	doc := renderPage(t, PagePostDetail, gin.H{
		"post":       post,
		"post_count": int64(5),
		"comments":   comments,
		"viewer":     &dto.Viewer{ID: 1, Username: "auth"},
	})

	assert.Equal(t, "Post Line one\nline t", doc.Find("title").Text())
	assert.Equal(t, "5", doc.Find(".post-count").Text())
	assert.Equal(t, "http://media.test/yatube/posts/small.gif", doc.Find(".post-detail img").AttrOr("src", ""))
	assert.Equal(t, 1, doc.Find("a.edit-post").Length())
	assert.Equal(t, "/posts/7/comment/", doc.Find("form").AttrOr("action", ""))
	assert.Equal(t, 1, doc.Find(".comment").Length())
}

func TestCreatePostShowsErrors(t *testing.T) {
	groups := []*model.Group{{ID: 3, Title: "Test group"}}
	errs := util.FormErrors{}.Add("text", "This field is required.")
	doc := renderPage(t, PageCreatePost, gin.H{
		"form":    &dto.PostFormDTO{Group: "3"},
		"groups":  groups,
		"errors":  errs,
		"is_edit": false,
		"viewer":  &dto.Viewer{ID: 1, Username: "auth"},
	})

	assert.Equal(t, "/create/", doc.Find("form").AttrOr("action", ""))
	assert.Equal(t, "This field is required.", doc.Find(".error[data-field='text']").Text())
	_, selected := doc.Find("option[value='3']").Attr("selected")
	assert.True(t, selected)
	assert.Equal(t, 1, doc.Find("input[type='file'][name='image']").Length())
}

func TestProfileFollowButton(t *testing.T) {
	author := &model.User{ID: 1, Username: "auth"}
	page := pagination.New[*model.Post](nil, 1, 10, 0)
	data := gin.H{
		"author":     author,
		"page_obj":   page,
		"post_count": int64(0),
		"following":  false,
		"viewer":     &dto.Viewer{ID: 2, Username: "reader"},
	}
	doc := renderPage(t, PageProfile, data)
	assert.Equal(t, "/profile/auth/follow/", doc.Find("a.follow").AttrOr("href", ""))
	assert.Equal(t, 1, doc.Find("p.empty").Length())

	data["following"] = true
	doc = renderPage(t, PageProfile, data)
	assert.Equal(t, "/profile/auth/unfollow/", doc.Find("a.unfollow").AttrOr("href", ""))

	data["viewer"] = &dto.Viewer{ID: 1, Username: "auth"}
	doc = renderPage(t, PageProfile, data)
	assert.Equal(t, 0, doc.Find("a.btn").Length())
}

func TestLinebreaks(t *testing.T) {
	assert.Equal(t, "<p>a<br>b</p><p>c</p>", string(Linebreaks("a\nb\r\n\r\nc")))
	assert.Empty(t, string(Linebreaks("  ")))
}

func TestLinebreaks_EscapesText(t *testing.T) {
	assert.Equal(t,
		"<p>It&#39;s Tom &amp; Jerry, a &lt; b<br>&lt;script&gt;alert(1)&lt;/script&gt;</p>",
		string(Linebreaks("It's Tom & Jerry, a < b\n<script>alert(1)</script>")))
}
