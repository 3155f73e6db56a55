package dto

// Viewer 当前请求的访问者，游客为 nil
type Viewer struct {
	ID       uint64
	Username string
	IsStaff  bool
}

func (v *Viewer) IsAuthenticated() bool {
	return v != nil && v.ID != 0
}

// CacheKey 页面缓存按访问者区分
func (v *Viewer) CacheKey() string {
	if !v.IsAuthenticated() {
		return "anon"
	}
	return "u:" + v.Username
}
