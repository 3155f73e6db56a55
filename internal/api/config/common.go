package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	MinIO    MinIOConfig    `mapstructure:"minio"`
	Log      LogConfig      `mapstructure:"log"`
	Security SecurityConfig `mapstructure:"security"`
	Blog     BlogConfig     `mapstructure:"blog"`
	Cron     CronConfig     `mapstructure:"cron"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	InternalEndpoint string `mapstructure:"internal_endpoint"`
	ExternalEndpoint string `mapstructure:"external_endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	Bucket           string `mapstructure:"bucket"`
	InternalUseSSL   bool   `mapstructure:"internal_use_ssl"`
	ExternalUseSSL   bool   `mapstructure:"external_use_ssl"`
}

// LogConfig 日志配置，File 为空时只输出到 stdout
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// SecurityConfig 会话与限流配置
type SecurityConfig struct {
	JWTSecret         string `mapstructure:"jwt_secret"`
	TokenTTLHours     int    `mapstructure:"token_ttl_hours"`
	CookieName        string `mapstructure:"cookie_name"`
	CookieSecure      bool   `mapstructure:"cookie_secure"`
	AuthRatePerMinute int    `mapstructure:"auth_rate_per_minute"`
}

// BlogConfig 业务配置
type BlogConfig struct {
	PostsPerPage   int      `mapstructure:"posts_per_page"`
	CacheSeconds   int      `mapstructure:"cache_seconds"`
	CacheBackend   string   `mapstructure:"cache_backend"`
	LoginURL       string   `mapstructure:"login_url"`
	AdminUsernames []string `mapstructure:"admin_usernames"`
	MaxImageMB     int      `mapstructure:"max_image_mb"`
}

// MaxImageBytes 上传图片大小上限，未配置时为 5MB
func (c BlogConfig) MaxImageBytes() int64 {
	if c.MaxImageMB <= 0 {
		return 5 << 20
	}
	return int64(c.MaxImageMB) << 20
}

// CronConfig 定时任务配置
type CronConfig struct {
	MediaCleanSpec   string `mapstructure:"media_clean_spec"`
	MediaGraceHours  int    `mapstructure:"media_grace_hours"`
	MediaCleanEnable bool   `mapstructure:"media_clean_enable"`
}
