// @title Trivia API
// @version 1.0
// @description Trivia game backend: categories, questions and quizzes.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

package main

import (
	"flag"
	"log"
	"trivia_backend/internal/app"
	"trivia_backend/internal/config"
	"trivia_backend/pkg/logger"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	seed := flag.Bool("seed", false, "分类表为空时写入默认分类")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly
	cfg.ForceSeed = *seed

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if cfg.MigrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	application.Run()
}
