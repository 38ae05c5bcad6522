package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr         string
	Port               string
	DatabasePath       string
	SessionSecret      string
	GinMode            string
	StorageDir         string
	StorageURLPath     string
	SiteBaseURL        string
	AdminUsername      string
	AdminPassword      string
	Debug              bool
	ContactRatePerMin  int
	ContactBurst       int
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "devfolio.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "devfolio-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	storageDir := strings.TrimSpace(os.Getenv("STORAGE_DIR"))
	if storageDir == "" {
		storageDir = "public/storage"
	}

	storageURLPath := strings.TrimSpace(os.Getenv("STORAGE_URL_PATH"))
	if storageURLPath == "" {
		storageURLPath = "/storage"
	}

	siteBaseURL := strings.TrimSpace(os.Getenv("SITE_BASE_URL"))

	adminUsername := strings.TrimSpace(os.Getenv("ADMIN_USERNAME"))
	adminPassword := strings.TrimSpace(os.Getenv("ADMIN_PASSWORD"))

	debug := strings.EqualFold(strings.TrimSpace(os.Getenv("APP_DEBUG")), "true")

	contactRate := parsePositiveInt(os.Getenv("CONTACT_RATE_PER_MIN"), 5)
	contactBurst := parsePositiveInt(os.Getenv("CONTACT_BURST"), 5)

	return AppConfig{
		ListenAddr:        listenAddr,
		Port:              port,
		DatabasePath:      databasePath,
		SessionSecret:     sessionSecret,
		GinMode:           ginMode,
		StorageDir:        storageDir,
		StorageURLPath:    storageURLPath,
		SiteBaseURL:       siteBaseURL,
		AdminUsername:     adminUsername,
		AdminPassword:     adminPassword,
		Debug:             debug,
		ContactRatePerMin: contactRate,
		ContactBurst:      contactBurst,
	}
}

func parsePositiveInt(raw string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
