package main

import (
	"os"

	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/router"
	"github.com/devfolio/internal/service"
	"github.com/devfolio/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// .env 不存在时静默跳过
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	if err := ensureAdminUser(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure admin user")
	}

	disk := storage.NewDisk(cfg.StorageDir)

	r := router.Setup(db.DB, disk, service.LogNotifier{}, cfg)
	log.Info().Str("addr", cfg.ListenAddr).Msg("starting server")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("failed to run server")
	}
}

// ensureAdminUser 在配置了管理员凭据且该用户不存在时创建账户
func ensureAdminUser(cfg config.AppConfig) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.DB.Model(&db.User{}).Where("username = ?", cfg.AdminUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.DB.Create(&db.User{
		Username: cfg.AdminUsername,
		Password: string(hashed),
	}).Error
}
