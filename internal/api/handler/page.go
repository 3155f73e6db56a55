package handler

import (
	"Yatube/internal/api/dto"
	"Yatube/internal/api/middleware"
	"Yatube/internal/pkg/util"
	"Yatube/internal/service"
	"Yatube/internal/web"
	"errors"
	"io"
	log "log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

// 表单字段错误提示
const (
	msgRequired      = "This field is required."
	msgInvalidChoice = "Select a valid choice. That choice is not one of the available choices."
	msgInvalidImage  = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
	msgImageTooLarge = "The uploaded image is too large."
	msgUsernameTaken = "A user with that username already exists."
	msgInvalidLogin  = "Please enter a correct username and password. Note that both fields may be case-sensitive."
)

// renderPage 注入访问者后渲染页面
func renderPage(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["viewer"] = middleware.CurrentViewer(c)
	if _, ok := data["errors"]; !ok {
		data["errors"] = util.FormErrors(nil)
	}
	c.HTML(status, name, data)
}

// renderError 不存在的资源渲染 404，其余错误记录日志后渲染 500
func renderError(c *gin.Context, err error) {
	if service.IsNotFound(err) {
		NotFound(c)
		return
	}
	log.ErrorContext(c.Request.Context(), "render page failed", "path", c.Request.URL.Path, "err", err)
	renderPage(c, http.StatusInternalServerError, web.PageServerErr, nil)
}

// NotFound 未知路由与不存在的资源
func NotFound(c *gin.Context) {
	renderPage(c, http.StatusNotFound, web.PageNotFound, gin.H{"path": c.Request.URL.Path})
}

// pathID 解析路径中的数字 ID，非法时渲染 404
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		NotFound(c)
		return 0, false
	}
	return id, true
}

// bindForm 绑定表单，解析失败时记录日志并保留已解析的字段，缺失字段交给 ValidateForm 报错
func bindForm(c *gin.Context, form any) error {
	err := c.ShouldBind(form)
	if err != nil {
		log.WarnContext(c.Request.Context(), "bind form failed", "path", c.Request.URL.Path, "err", err)
	}
	return err
}

// readImage 读取可选的上传图片，没有文件时返回 nil；超过 maxBytes 时不读入内存
func readImage(c *gin.Context, field string, maxBytes int64) (*dto.ImageUpload, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	if file.Size == 0 {
		return nil, nil
	}
	if file.Size > maxBytes {
		return nil, service.ErrImageTooLarge
	}

	reader, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(io.LimitReader(reader, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, service.ErrImageTooLarge
	}
	return &dto.ImageUpload{Filename: file.Filename, Data: data}, nil
}

func profileURL(username string) string {
	return "/profile/" + url.PathEscape(username) + "/"
}

func postURL(id uint64) string {
	return "/posts/" + strconv.FormatUint(id, 10) + "/"
}
