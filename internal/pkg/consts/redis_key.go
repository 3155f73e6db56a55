package consts

const (
	TokenBlacklistKey = "auth:blacklist:"
	PageCacheKey      = "cache:page:"
)
