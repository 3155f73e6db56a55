package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg，环境变量 YATUBE_* 覆盖文件中的值
func LoadConfig() error {
	// .env 不存在时忽略
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetEnvPrefix("YATUBE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Security.JWTSecret == "" {
		return errors.New("security.jwt_secret must be set")
	}

	Cfg = &cfg

	return nil
}

// SetDefaults 注册默认值，同时让 AutomaticEnv 能识别所有 key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.trusted_proxies", []string{"127.0.0.1"})

	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_idle", 10)
	v.SetDefault("database.max_open", 50)
	v.SetDefault("database.max_lifetime", 30)
	v.SetDefault("database.auto_migrate", false)

	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 20)

	v.SetDefault("minio.internal_endpoint", "")
	v.SetDefault("minio.external_endpoint", "127.0.0.1:9000")
	v.SetDefault("minio.access_key", "")
	v.SetDefault("minio.secret_key", "")
	v.SetDefault("minio.bucket", "yatube")
	v.SetDefault("minio.internal_use_ssl", false)
	v.SetDefault("minio.external_use_ssl", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 7)
	v.SetDefault("log.compress", false)

	v.SetDefault("security.jwt_secret", "")
	v.SetDefault("security.token_ttl_hours", 24*14)
	v.SetDefault("security.cookie_name", "yatube_session")
	v.SetDefault("security.cookie_secure", false)
	v.SetDefault("security.auth_rate_per_minute", 20)

	v.SetDefault("blog.posts_per_page", 10)
	v.SetDefault("blog.cache_seconds", 20)
	v.SetDefault("blog.cache_backend", "redis")
	v.SetDefault("blog.login_url", "/auth/login/")
	v.SetDefault("blog.admin_usernames", []string{})
	v.SetDefault("blog.max_image_mb", 5)

	v.SetDefault("cron.media_clean_spec", "0 30 3 * * *")
	v.SetDefault("cron.media_grace_hours", 24)
	v.SetDefault("cron.media_clean_enable", true)
}
