package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config 进程级配置，启动时加载一次，之后只读
type Config struct {
	Addr string

	MySQLDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

// Load 读取 .env（可选）+ 环境变量，缺省值适合本地开发
func Load() *Config {
	// .env 不存在不算错误
	_ = godotenv.Load()

	return &Config{
		Addr:     GetEnv("APP_ADDR", ":8080"),
		MySQLDSN: GetEnv("MYSQL_DSN", "user:password@tcp(127.0.0.1:3306)/collabhub?charset=utf8mb4&parseTime=True"),

		RedisAddr:     GetEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		RedisDB:       GetEnvInt("REDIS_DB", 0),

		AccessSecret:  GetEnv("JWT_ACCESS_SECRET", "secret-key"),
		RefreshSecret: GetEnv("JWT_REFRESH_SECRET", "refresh-key"),
		AccessTTL:     GetEnvDuration("JWT_ACCESS_TTL", 30*time.Minute),
		RefreshTTL:    GetEnvDuration("JWT_REFRESH_TTL", 24*time.Hour),

		KafkaBrokers: GetEnvList("KAFKA_BROKERS", nil),
		KafkaTopic:   GetEnv("KAFKA_TOPIC", "collabhub.events"),

		SMTPHost:     GetEnv("SMTP_HOST", ""),
		SMTPPort:     GetEnvInt("SMTP_PORT", 587),
		SMTPUsername: GetEnv("SMTP_USERNAME", ""),
		SMTPPassword: GetEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     GetEnv("SMTP_FROM", "NoReply <no-reply@example.com>"),
	}
}

func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func GetEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func GetEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func GetEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func GetEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func GetEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
