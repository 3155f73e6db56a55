package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid        = errors.New("invalid parameters")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserUsernameExist   = errors.New("username already exists")
	ErrPasswordIncorrect   = errors.New("incorrect username or password")
	ErrUserFollowSelf      = errors.New("you cannot follow yourself")
	ErrGroupNotFound       = errors.New("group not found")
	ErrSlugExist           = errors.New("group with this slug already exists")
	ErrPostNotFound        = errors.New("post not found")
	ErrPostNotAuthor       = errors.New("only the author can edit this post")
	ErrPostTextEmpty       = errors.New("post text is empty")
	ErrPostCommentNotFound = errors.New("comment not found")
	ErrCommentEmpty        = errors.New("comment text is empty")
	ErrImageInvalid        = errors.New("not a valid image")
	ErrImageTooLarge       = errors.New("image is too large")
	UnauthorizedError      = errors.New("permission denied")
	UnExpectedError        = errors.New("internal error, please try again later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrUserNotFound:        NotFound,
	ErrUserUsernameExist:   BadRequest,
	ErrPasswordIncorrect:   Unauthorized,
	ErrUserFollowSelf:      BadRequest,
	ErrGroupNotFound:       NotFound,
	ErrSlugExist:           BadRequest,
	ErrPostNotFound:        NotFound,
	ErrPostNotAuthor:       Forbidden,
	ErrPostTextEmpty:       BadRequest,
	ErrPostCommentNotFound: NotFound,
	ErrCommentEmpty:        BadRequest,
	ErrImageInvalid:        BadRequest,
	ErrImageTooLarge:       BadRequest,
	UnauthorizedError:      Unauthorized,
	UnExpectedError:        InternalServerError,
}

// ErrorCode 查找业务错误码，支持被包装过的错误
func ErrorCode(err error) (int, bool) {
	for target, code := range ErrorMap {
		if errors.Is(err, target) {
			return code, true
		}
	}
	return 0, false
}

// IsNotFound 页面渲染时映射为 404
func IsNotFound(err error) bool {
	code, ok := ErrorCode(err)
	return ok && code == NotFound
}
