package wire

import (
	"Yatube/internal/api/config"
	"Yatube/internal/model"
	"Yatube/internal/pkg/cache"
	"Yatube/internal/pkg/security"
	"Yatube/internal/pkg/storage"
	"Yatube/internal/repository/repotest"
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

const testCookie = "yatube_session"

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

func init() {
	gin.SetMode(gin.TestMode)
}

type testApp struct {
	t      *testing.T
	app    *ApplicationContainer
	store  *repotest.Store
	media  *storage.MemoryStore
	pages  *cache.MemoryPageStore
	tokens *security.TokenManager

	author *model.User
	reader *model.User
	admin  *model.User
	group  *model.Group
}

func testConfig() *config.Config {
	return &config.Config{
		Security: config.SecurityConfig{
			JWTSecret:         "test-secret",
			TokenTTLHours:     1,
			CookieName:        testCookie,
			AuthRatePerMinute: 1000,
		},
		Blog: config.BlogConfig{
			PostsPerPage:   10,
			CacheSeconds:   20,
			CacheBackend:   "memory",
			LoginURL:       "/auth/login/",
			AdminUsernames: []string{"admin"},
			MaxImageMB:     5,
		},
		Cron: config.CronConfig{
			MediaCleanSpec:  "0 30 3 * * *",
			MediaGraceHours: 24,
		},
	}
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctx := context.Background()
	cfg := testConfig()

	a := &testApp{
		t:      t,
		store:  repotest.NewStore(),
		media:  storage.NewMemoryStore("http://media.test/yatube"),
		pages:  cache.NewMemoryPageStore(),
		tokens: security.NewTokenManager(cfg.Security.JWTSecret, time.Hour),
		author: &model.User{Username: "auth", FirstName: "Lev", LastName: "Tolstoy"},
		reader: &model.User{Username: "reader"},
		admin:  &model.User{Username: "admin"},
		group:  &model.Group{Title: "Test group", Slug: "test-slug", Description: "Test description"},
	}
	require.NoError(t, a.store.CreateUser(ctx, a.author))
	require.NoError(t, a.store.CreateUser(ctx, a.reader))
	require.NoError(t, a.store.CreateUser(ctx, a.admin))
	require.NoError(t, a.store.CreateGroup(ctx, a.group))

	repos := &Repositories{
		Users:    a.store,
		Groups:   a.store,
		Posts:    a.store,
		Comments: a.store,
		Follows:  a.store,
	}
	infra := &Infra{
		Store:      a.media,
		Pages:      a.pages,
		Revocation: security.NewMemoryRevocation(),
	}
	app, err := Build(repos, infra, cfg)
	require.NoError(t, err)
	a.app = app
	return a
}

func (a *testApp) addPost(author *model.User, group *model.Group, text string) *model.Post {
	a.t.Helper()
	post := &model.Post{Text: text, AuthorID: author.ID}
	if group != nil {
		post.GroupID = &group.ID
	}
	require.NoError(a.t, a.store.CreatePost(context.Background(), post))
	return post
}

func (a *testApp) addPosts(author *model.User, group *model.Group, n int) {
	a.t.Helper()
	for i := 0; i < n; i++ {
		a.addPost(author, group, "Post "+strconv.Itoa(i))
	}
}

func (a *testApp) session(user *model.User) *http.Cookie {
	a.t.Helper()
	token, _, err := a.tokens.GenerateToken(user.ID, user.Username)
	require.NoError(a.t, err)
	return &http.Cookie{Name: testCookie, Value: token}
}

func (a *testApp) serve(req *http.Request, user *model.User) *httptest.ResponseRecorder {
	if user != nil {
		req.AddCookie(a.session(user))
	}
	w := httptest.NewRecorder()
	a.app.Router.ServeHTTP(w, req)
	return w
}

func (a *testApp) get(target string, user *model.User) *httptest.ResponseRecorder {
	return a.serve(httptest.NewRequest(http.MethodGet, target, nil), user)
}

func (a *testApp) postForm(target string, form url.Values, user *model.User) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return a.serve(req, user)
}

func (a *testApp) postMultipart(target string, fields map[string]string, filename string, data []byte, user *model.User) *httptest.ResponseRecorder {
	a.t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(a.t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("image", filename)
		require.NoError(a.t, err)
		_, err = fw.Write(data)
		require.NoError(a.t, err)
	}
	require.NoError(a.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return a.serve(req, user)
}

func (a *testApp) sendJSON(method, target string, payload any, user *model.User) *httptest.ResponseRecorder {
	a.t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(a.t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	return a.serve(req, user)
}

func doc(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	return d
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var res envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}
