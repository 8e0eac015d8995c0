// simulate 无界面的导航模拟工具
//
// 按脚本向导航引擎发送滚轮事件，逐帧推进，打印进度和场景切换。
// 用于调整 navigation.yaml 中的参数。
//
// 用法:
//
//	go run ./cmd/simulate -config data -script "in:60,out:30"
//	go run ./cmd/simulate -script "in:200" -interval 5 -verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/zoomnav/pkg/app"
	"github.com/decker502/zoomnav/pkg/navigation"
	"github.com/decker502/zoomnav/pkg/types"
)

var (
	configDir   = flag.String("config", "data", "配置目录（包含 navigation.yaml 和 scenes.yaml）")
	script      = flag.String("script", "in:60,out:30", "滚动脚本：方向:次数，逗号分隔")
	interval    = flag.Int("interval", 10, "两次滚动之间的帧数")
	settleFrame = flag.Int("settle", 300, "脚本结束后继续推进的帧数")
	verbose     = flag.Bool("verbose", false, "显示引擎日志")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	steps, err := parseScript(*script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid script: %v\n", err)
		os.Exit(1)
	}

	cfgs, err := app.LoadConfigs(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configs: %v\n", err)
		os.Exit(1)
	}

	nav, err := app.BuildNavigation(cfgs.Scenes, *cfgs.Navigation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build navigation: %v\n", err)
		os.Exit(1)
	}

	sim := newSimulation(nav, os.Stdout)
	nav.Manager.Start()

	frames := sim.run(steps, *interval, *settleFrame)
	fmt.Printf("done after %d frames: scene %s, %d transitions\n", frames, nav.Env.State.Current(), sim.transitions)
}

// simulation 记录模拟过程
type simulation struct {
	nav *app.Navigation
	out io.Writer

	transitions int
	lastDecile  map[types.SceneID]int
}

func newSimulation(nav *app.Navigation, out io.Writer) *simulation {
	s := &simulation{
		nav:        nav,
		out:        out,
		lastDecile: make(map[types.SceneID]int),
	}

	nav.Env.State.OnSceneChange(func(from, to types.SceneID, direction types.ZoomState) {
		s.transitions++
		fmt.Fprintf(s.out, "scene %s -> %s (%s)\n", from, to, direction)
		delete(s.lastDecile, to)
	})

	// 每跨过一个 10% 打印一次进度
	nav.Env.Bus.Subscribe(func(ev navigation.ProgressEvent) {
		decile := int(ev.Progress * 10)
		if last, ok := s.lastDecile[ev.Scene]; ok && last == decile {
			return
		}
		s.lastDecile[ev.Scene] = decile
		fmt.Fprintf(s.out, "  %-24s %5.1f%%\n", ev.Scene, ev.Progress*100)
	})

	return s
}

// run 执行脚本，返回推进的总帧数
func (s *simulation) run(steps []scriptStep, interval, settle int) int {
	interval = max(interval, 1)
	frames := 0

	for _, step := range steps {
		for i := 0; i < step.count; i++ {
			s.nav.Env.Input.DispatchWheel(navigation.WheelEvent{DeltaY: step.deltaY, Mode: navigation.DeltaLine})
			for f := 0; f < interval; f++ {
				s.nav.Step(1.0 / 60.0)
				frames++
			}
		}
	}

	for f := 0; f < settle; f++ {
		s.nav.Step(1.0 / 60.0)
		frames++
	}
	return frames
}
