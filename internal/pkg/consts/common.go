package consts

const (
	MimePrefixImage = "image"
)

const (
	// PostImagePrefix 帖子图片在对象存储中的目录
	PostImagePrefix = "posts/"
	// PostThumbPrefix 列表缩略图目录
	PostThumbPrefix = "posts/thumbs/"
	ThumbWidth      = 960
	ThumbHeight     = 339
)

const (
	// AdminEmptyValue 管理后台中空值的展示
	AdminEmptyValue = "-пусто-"
)

const (
	ViewerKey   = "viewer"
	UserIDKey   = "user_id"
	UsernameKey = "username"
	IsStaffKey  = "is_staff"
)
