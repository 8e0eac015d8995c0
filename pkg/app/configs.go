package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/decker502/zoomnav/pkg/config"
	"github.com/decker502/zoomnav/pkg/embedded"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/sync/errgroup"
)

// 配置文件名（相对于数据目录）
const (
	navigationConfigFile = "navigation.yaml"
	sceneConfigFile      = "scenes.yaml"
)

// Configs 启动时加载的全部配置
type Configs struct {
	Navigation *config.NavigationConfig
	Scenes     *config.SceneConfig
}

// LoadConfigs 并行加载导航配置和场景配置
//
// 参数:
//   - dir: 配置目录，支持 ~ 开头的路径；为空时从嵌入资源的 data/ 读取
//
// 返回:
//   - *Configs: 加载并验证后的配置
//   - error: 任一配置读取或解析失败时返回第一个错误
func LoadConfigs(dir string) (*Configs, error) {
	read := readEmbedded
	if dir != "" {
		expanded, err := homedir.Expand(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to expand config dir %q: %w", dir, err)
		}
		read = func(name string) ([]byte, error) {
			return os.ReadFile(filepath.Join(expanded, name))
		}
		log.Printf("[Config] Loading configs from %s", expanded)
	}

	var cfgs Configs
	var g errgroup.Group

	g.Go(func() error {
		data, err := read(navigationConfigFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", navigationConfigFile, err)
		}
		cfg, err := config.ParseNavigationConfig(data)
		if err != nil {
			return err
		}
		cfgs.Navigation = cfg
		return nil
	})

	g.Go(func() error {
		data, err := read(sceneConfigFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", sceneConfigFile, err)
		}
		cfg, err := config.ParseSceneConfig(data)
		if err != nil {
			return err
		}
		cfgs.Scenes = cfg
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Printf("[Config] Loaded %d scenes", len(cfgs.Scenes.Scenes))
	return &cfgs, nil
}

func readEmbedded(name string) ([]byte, error) {
	return embedded.ReadFile("data/" + name)
}
