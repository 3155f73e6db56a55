package handler

import (
	"Yatube/internal/api/dto"
	"Yatube/internal/api/middleware"
	"Yatube/internal/model"
	"Yatube/internal/pkg/consts"
	"Yatube/internal/pkg/util"
	"Yatube/internal/service"
	"Yatube/internal/web"
	"errors"
	log "log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// formOverhead 请求体中图片以外部分的额度：文本字段与 multipart 边界
const formOverhead = 1 << 20

type PostHandler struct {
	feedSvc       service.FeedService
	postSvc       service.PostService
	groupSvc      service.GroupService
	maxImageBytes int64
}

func NewPostHandler(feedSvc service.FeedService, postSvc service.PostService, groupSvc service.GroupService, maxImageBytes int64) *PostHandler {
	return &PostHandler{
		feedSvc:       feedSvc,
		postSvc:       postSvc,
		groupSvc:      groupSvc,
		maxImageBytes: maxImageBytes,
	}
}

func (s *PostHandler) Index(c *gin.Context) {
	page, err := s.feedSvc.Index(c.Request.Context(), c.Query("page"))
	if err != nil {
		renderError(c, err)
		return
	}
	renderPage(c, http.StatusOK, web.PageIndex, gin.H{"page_obj": page})
}

func (s *PostHandler) GroupPosts(c *gin.Context) {
	res, err := s.feedSvc.GroupPosts(c.Request.Context(), c.Param("slug"), c.Query("page"))
	if err != nil {
		renderError(c, err)
		return
	}
	renderPage(c, http.StatusOK, web.PageGroupList, gin.H{
		"group":    res.Group,
		"page_obj": res.Page,
	})
}

func (s *PostHandler) Profile(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)
	res, err := s.feedSvc.Profile(c.Request.Context(), viewer, c.Param("username"), c.Query("page"))
	if err != nil {
		renderError(c, err)
		return
	}
	renderPage(c, http.StatusOK, web.PageProfile, gin.H{
		"author":          res.Author,
		"page_obj":        res.Page,
		"post_count":      res.PostCount,
		"following":       res.Following,
		"follower_count":  res.FollowerCount,
		"following_count": res.FollowingCount,
	})
}

func (s *PostHandler) PostDetail(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	detail, err := s.postSvc.GetPostDetail(c.Request.Context(), postID)
	if err != nil {
		renderError(c, err)
		return
	}
	renderPage(c, http.StatusOK, web.PagePostDetail, gin.H{
		"post":       detail.Post,
		"post_count": detail.PostCount,
		"comments":   detail.Comments,
	})
}

func (s *PostHandler) FollowIndex(c *gin.Context) {
	userID := c.GetUint64(consts.UserIDKey)
	page, err := s.feedSvc.FollowFeed(c.Request.Context(), userID, c.Query("page"))
	if err != nil {
		renderError(c, err)
		return
	}
	renderPage(c, http.StatusOK, web.PageFollow, gin.H{"page_obj": page})
}

// CreatePost GET 展示空表单，POST 创建后跳转到作者主页
func (s *PostHandler) CreatePost(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		s.renderForm(c, &dto.PostFormDTO{}, nil, nil)
		return
	}

	form, image, errs := s.bindPostForm(c)
	if errs != nil {
		s.renderForm(c, form, errs, nil)
		return
	}

	userID := c.GetUint64(consts.UserIDKey)
	if _, err := s.postSvc.CreatePost(c.Request.Context(), userID, form, image); err != nil {
		if errs, ok := postFormErrors(err); ok {
			s.renderForm(c, form, errs, nil)
			return
		}
		renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, profileURL(c.GetString(consts.UsernameKey)))
}

// EditPost 非作者直接跳回详情页
func (s *PostHandler) EditPost(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	userID := c.GetUint64(consts.UserIDKey)

	post, err := s.postSvc.GetPostForEdit(ctx, userID, postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotAuthor) {
			c.Redirect(http.StatusFound, postURL(postID))
			return
		}
		renderError(c, err)
		return
	}

	if c.Request.Method != http.MethodPost {
		form := &dto.PostFormDTO{Text: post.Text}
		if post.GroupID != nil {
			form.Group = strconv.FormatUint(*post.GroupID, 10)
		}
		s.renderForm(c, form, nil, post)
		return
	}

	form, image, errs := s.bindPostForm(c)
	if errs != nil {
		s.renderForm(c, form, errs, post)
		return
	}

	if _, err = s.postSvc.UpdatePost(ctx, userID, postID, form, image); err != nil {
		if errs, ok := postFormErrors(err); ok {
			s.renderForm(c, form, errs, post)
			return
		}
		renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, postURL(postID))
}

// bindPostForm 限制请求体大小后绑定表单并读取图片
func (s *PostHandler) bindPostForm(c *gin.Context) (*dto.PostFormDTO, *dto.ImageUpload, util.FormErrors) {
	form := &dto.PostFormDTO{}
	limit := s.maxImageBytes + formOverhead
	if c.Request.ContentLength > limit {
		return form, nil, util.FormErrors{}.Add("image", msgImageTooLarge)
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	var tooLarge *http.MaxBytesError
	if err := bindForm(c, form); errors.As(err, &tooLarge) {
		return form, nil, util.FormErrors{}.Add("image", msgImageTooLarge)
	}
	if errs := util.ValidateForm(form); errs != nil {
		return form, nil, errs
	}

	image, err := readImage(c, "image", s.maxImageBytes)
	if err != nil {
		if errs, ok := postFormErrors(err); ok {
			return form, nil, errs
		}
		log.WarnContext(c.Request.Context(), "read upload failed", "path", c.Request.URL.Path, "err", err)
		return form, nil, util.FormErrors{}.Add("image", msgInvalidImage)
	}
	return form, image, nil
}

// renderForm post 为 nil 时是新建
func (s *PostHandler) renderForm(c *gin.Context, form *dto.PostFormDTO, errs util.FormErrors, post *model.Post) {
	groups, err := s.groupSvc.ListGroups(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	renderPage(c, http.StatusOK, web.PageCreatePost, gin.H{
		"form":    form,
		"errors":  errs,
		"groups":  groups,
		"is_edit": post != nil,
		"post":    post,
	})
}

// postFormErrors 可以回显到表单上的业务错误
func postFormErrors(err error) (util.FormErrors, bool) {
	switch {
	case errors.Is(err, service.ErrPostTextEmpty):
		return util.FormErrors{}.Add("text", msgRequired), true
	case errors.Is(err, service.ErrGroupNotFound):
		return util.FormErrors{}.Add("group", msgInvalidChoice), true
	case errors.Is(err, service.ErrImageInvalid):
		return util.FormErrors{}.Add("image", msgInvalidImage), true
	case errors.Is(err, service.ErrImageTooLarge):
		return util.FormErrors{}.Add("image", msgImageTooLarge), true
	}
	return nil, false
}
