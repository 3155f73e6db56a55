package handler

import (
	"Yatube/internal/api/dto"
	"Yatube/internal/api/middleware"
	"Yatube/internal/pkg/consts"
	"Yatube/internal/pkg/util"
	"Yatube/internal/service"
	"Yatube/internal/web"
	"errors"
	log "log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc      service.UserService
	cookieName   string
	cookieSecure bool
}

func NewUserHandler(userSvc service.UserService, cookieName string, cookieSecure bool) *UserHandler {
	return &UserHandler{
		userSvc:      userSvc,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
	}
}

// Signup 注册成功后直接登录
func (s *UserHandler) Signup(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		renderPage(c, http.StatusOK, web.PageSignup, gin.H{"form": &dto.SignupFormDTO{}})
		return
	}

	var form dto.SignupFormDTO
	_ = bindForm(c, &form)
	if errs := util.ValidateForm(&form); errs != nil {
		s.renderSignup(c, &form, errs)
		return
	}

	session, err := s.userSvc.Register(c.Request.Context(), &form)
	if err != nil {
		if errors.Is(err, service.ErrUserUsernameExist) {
			s.renderSignup(c, &form, util.FormErrors{}.Add("username", msgUsernameTaken))
			return
		}
		renderError(c, err)
		return
	}

	s.setSession(c, session)
	c.Redirect(http.StatusFound, "/")
}

func (s *UserHandler) Login(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		renderPage(c, http.StatusOK, web.PageLogin, gin.H{
			"form": &dto.LoginFormDTO{},
			"next": c.Query("next"),
		})
		return
	}

	var form dto.LoginFormDTO
	_ = bindForm(c, &form)
	if errs := util.ValidateForm(&form); errs != nil {
		s.renderLogin(c, &form, errs)
		return
	}

	session, err := s.userSvc.Login(c.Request.Context(), &form)
	if err != nil {
		if errors.Is(err, service.ErrPasswordIncorrect) {
			s.renderLogin(c, &form, util.FormErrors{}.Add("__all__", msgInvalidLogin))
			return
		}
		renderError(c, err)
		return
	}

	s.setSession(c, session)
	c.Redirect(http.StatusFound, util.SafeNext(form.Next, "/"))
}

// Logout 吊销 Token 并清除 Cookie
func (s *UserHandler) Logout(c *gin.Context) {
	token := middleware.TokenFromRequest(c, s.cookieName)
	if token != "" {
		if err := s.userSvc.Logout(c.Request.Context(), token); err != nil {
			log.WarnContext(c.Request.Context(), "revoke session failed", "err", err)
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, "", -1, "/", "", s.cookieSecure, true)
	// 本次响应按游客渲染
	c.Set(consts.ViewerKey, (*dto.Viewer)(nil))
	renderPage(c, http.StatusOK, web.PageLoggedOut, nil)
}

func (s *UserHandler) renderSignup(c *gin.Context, form *dto.SignupFormDTO, errs util.FormErrors) {
	form.Password1, form.Password2 = "", ""
	renderPage(c, http.StatusOK, web.PageSignup, gin.H{"form": form, "errors": errs})
}

func (s *UserHandler) renderLogin(c *gin.Context, form *dto.LoginFormDTO, errs util.FormErrors) {
	form.Password = ""
	renderPage(c, http.StatusOK, web.PageLogin, gin.H{
		"form":   form,
		"errors": errs,
		"next":   form.Next,
	})
}

func (s *UserHandler) setSession(c *gin.Context, session *dto.SessionDTO) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, session.Token, maxAge, "/", "", s.cookieSecure, true)
}
