// 清理 projects/ 目录下没有任何项目引用的孤儿图片。
// 交互式执行：先列出候选文件，确认后逐个删除并报告结果。
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/service"
	"github.com/devfolio/internal/storage"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	disk := storage.NewDisk(cfg.StorageDir)
	projects := service.NewProjectService(db.DB, disk)

	fmt.Println("Starting cleanup of orphaned project images...")

	orphans, err := projects.OrphanImages()
	if err != nil {
		// 扫描失败时直接放弃，绝不在信息不全的情况下删除
		log.Fatal().Err(err).Msg("failed to scan for orphaned images")
	}

	if len(orphans) == 0 {
		fmt.Println("No orphaned images found.")
		return
	}

	fmt.Printf("Found %d orphaned image(s):\n", len(orphans))
	for _, file := range orphans {
		fmt.Printf("  - %s\n", file)
	}

	if !confirm("Do you want to delete these orphaned images?") {
		fmt.Println("Cleanup cancelled.")
		return
	}

	deleted := 0
	for _, file := range orphans {
		if err := projects.RemoveImage(file); err != nil {
			fmt.Printf("Failed to delete: %s (%v)\n", file, err)
			continue
		}
		fmt.Printf("Deleted: %s\n", file)
		deleted++
	}
	fmt.Printf("Successfully deleted %d orphaned image(s).\n", deleted)
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
