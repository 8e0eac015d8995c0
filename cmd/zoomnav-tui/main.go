// zoomnav-tui 终端版场景导航
//
// 用法:
//
//	go run ./cmd/zoomnav-tui -config data
//	go run ./cmd/zoomnav-tui -config ~/zoomnav -log /tmp/zoomnav.log
//
// 鼠标滚轮或方向键驱动导航，Tab 显示场景列表，q 退出。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/decker502/zoomnav/pkg/app"
	"github.com/gdamore/tcell/v2"
	"github.com/mitchellh/go-homedir"
)

var (
	configDir = flag.String("config", "data", "配置目录（包含 navigation.yaml 和 scenes.yaml）")
	logFile   = flag.String("log", "", "日志文件路径（终端界面占用标准输出，为空则丢弃日志）")
)

func main() {
	flag.Parse()

	if err := run(*configDir, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run 加载配置并运行终端界面，直到用户退出或收到中断信号
func run(dir, logPath string) error {
	closeLog, err := setupLog(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closeLog()

	cfgs, err := app.LoadConfigs(dir)
	if err != nil {
		return fmt.Errorf("failed to load configs: %w", err)
	}

	nav, err := app.BuildNavigation(cfgs.Scenes, *cfgs.Navigation)
	if err != nil {
		return fmt.Errorf("failed to build navigation: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.EnableMouse()

	term := newTerminal(screen, nav)
	defer term.close()
	nav.Manager.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := term.run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("terminal error: %w", err)
	}
	return nil
}

// setupLog 把日志重定向到文件，返回关闭函数
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(io.Discard)
		f.Close()
	}, nil
}
