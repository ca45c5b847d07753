package main

import (
	"context"
	"log"

	"github.com/serendipityConfusion/id-platform/cmd/platform/ioc"
	iocbase "github.com/serendipityConfusion/id-platform/internal/ioc"
	"github.com/serendipityConfusion/id-platform/internal/pkg/config"
)

func main() {
	// 1. 初始化配置
	if err := initConfig(); err != nil {
		log.Fatalf("[Main] Failed to initialize config: %v", err)
	}
	log.Println("[Main] Configuration loaded successfully")

	// 2. 初始化链路追踪（全局 TracerProvider）
	tp := iocbase.InitJeagerTracer()
	defer func() {
		_ = tp.Shutdown(context.Background())
	}()

	// 3. 通过 wire 初始化应用（依赖注入）
	app := ioc.InitGrpcServer()
	log.Println("[Main] Application initialized successfully")

	// 4. 运行应用
	if err := app.Run(); err != nil {
		log.Fatalf("[Main] Application error: %v", err)
	}

	log.Println("[Main] Application exited successfully")
}

// initConfig 初始化配置
func initConfig() error {
	// 使用配置加载器的辅助函数初始化 Viper
	return config.InitViperConfig(
		"./config/platform",     // 生产环境路径
		"../../config/platform", // 开发/测试环境路径
		".",                     // 当前目录
	)
}
