//go:build ignore

// 初始化默认管理员账户，用法: go run scripts/init_admin.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/db"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	username := cfg.AdminUsername
	if username == "" {
		username = "admin"
	}
	password := cfg.AdminPassword
	if password == "" {
		password = "admin123"
	}

	var count int64
	db.DB.Model(&db.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		fmt.Println("用户已存在，无需初始化")
		os.Exit(0)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("密码加密失败:", err)
	}

	if err := db.DB.Create(&db.User{Username: username, Password: string(hashed)}).Error; err != nil {
		log.Fatal("创建用户失败:", err)
	}

	fmt.Println("默认管理员用户创建成功")
	fmt.Println("用户名:", username)
}
