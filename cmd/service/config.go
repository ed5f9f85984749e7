package main

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// config 由環境變數讀入
type config struct {
	Addr          string
	LogLevel      string
	DatabaseURL   string
	RedisAddr     string
	RedisDB       int
	RedisPassword string
	WorkerCount   int
	SubmitLimit   int
	SubmitWindow  time.Duration

	// 允許提供 X-Forwarded-For 的反向代理網段，空的代表直接面對用戶端
	TrustedProxies []*net.IPNet
	MigrateDown    bool
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func positiveInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("無效的 %s: %q", key, v)
	}
	return n, nil
}

func loadConfig() (config, error) {
	cfg := config{
		Addr:          envOr("HTTP_ADDR", ":8080"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		idx, err := strconv.Atoi(v)
		if err != nil || idx < 0 {
			return config{}, fmt.Errorf("無效的 REDIS_DB: %q", v)
		}
		cfg.RedisDB = idx
	}

	var err error
	if cfg.WorkerCount, err = positiveInt("WORKER_COUNT", 1); err != nil {
		return config{}, err
	}
	if cfg.SubmitLimit, err = positiveInt("SUBMIT_LIMIT", 20); err != nil {
		return config{}, err
	}

	cfg.SubmitWindow = time.Minute
	if v := os.Getenv("SUBMIT_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return config{}, fmt.Errorf("無效的 SUBMIT_WINDOW: %q", v)
		}
		cfg.SubmitWindow = d
	}

	for _, part := range strings.Split(os.Getenv("TRUSTED_PROXIES"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		_, n, err := net.ParseCIDR(part)
		if err != nil {
			return config{}, fmt.Errorf("無效的 TRUSTED_PROXIES: %q", part)
		}
		cfg.TrustedProxies = append(cfg.TrustedProxies, n)
	}

	if v := os.Getenv("MIGRATE_DOWN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return config{}, fmt.Errorf("無效的 MIGRATE_DOWN: %q", v)
		}
		cfg.MigrateDown = b
	}
	return cfg, nil
}
