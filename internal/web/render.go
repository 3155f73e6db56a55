// Package web 负责服务端页面渲染：模板内嵌进二进制，按页面各自克隆基础布局
package web

import (
	"Yatube/internal/pkg/storage"
	"Yatube/internal/pkg/util"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates
var templatesFS embed.FS

// 页面模板名，与 templates 下的相对路径一致
const (
	PageIndex      = "posts/index.html"
	PageGroupList  = "posts/group_list.html"
	PageProfile    = "posts/profile.html"
	PagePostDetail = "posts/post_detail.html"
	PageCreatePost = "posts/create_post.html"
	PageFollow     = "posts/follow.html"
	PageSignup     = "users/signup.html"
	PageLogin      = "users/login.html"
	PageLoggedOut  = "users/logged_out.html"
	PageNotFound   = "core/404.html"
	PageServerErr  = "core/500.html"
)

var pages = []string{
	PageIndex, PageGroupList, PageProfile, PagePostDetail, PageCreatePost, PageFollow,
	PageSignup, PageLogin, PageLoggedOut, PageNotFound, PageServerErr,
}

// Renderer 实现 gin 的 HTMLRender
type Renderer struct {
	templates map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

func NewRenderer(store storage.ObjectStore) (*Renderer, error) {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, err
	}

	base, err := template.New("base.html").Funcs(FuncMap(store)).ParseFS(sub, "base.html", "includes/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		layout, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err = layout.ParseFS(sub, page); err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		r.templates[page] = layout
	}
	return r, nil
}

func (r *Renderer) Instance(name string, data any) render.Render {
	tmpl, ok := r.templates[name]
	if !ok {
		tmpl = r.templates[PageServerErr]
	}
	return render.HTML{
		Template: tmpl,
		Name:     "base",
		Data:     data,
	}
}

// FuncMap 模板函数
func FuncMap(store storage.ObjectStore) template.FuncMap {
	return template.FuncMap{
		"media": func(key string) string {
			return store.URL(key)
		},
		"thumb": func(key string) string {
			return store.URL(util.ThumbKey(key))
		},
		"linebreaks": Linebreaks,
		"date": func(t time.Time) string {
			return t.Format("2 January 2006")
		},
	}
}

// Linebreaks 空行分段、单个换行转 <br>；原文按纯文本转义
func Linebreaks(text string) template.HTML {
	text = strings.ReplaceAll(strings.TrimSpace(text), "\r\n", "\n")
	if text == "" {
		return ""
	}

	var b strings.Builder
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(template.HTMLEscapeString(para), "\n", "<br>"))
		b.WriteString("</p>")
	}
	return template.HTML(util.Sanitize(b.String()))
}
