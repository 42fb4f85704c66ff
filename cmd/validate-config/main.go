// validate-config 校验参数表 YAML（格式 + 取值范围）
//
// 用法:
//
//	go run ./cmd/validate-config                       # 校验 data/ 下的默认参数表
//	go run ./cmd/validate-config -shooter my.yaml      # 只校验指定文件
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/arcade/pkg/config"
)

var (
	shooterPath = flag.String("shooter", config.ShooterConfigPath, "射击模式参数表，为空跳过")
	avoidPath   = flag.String("avoid", config.AvoidConfigPath, "躲避模式参数表，为空跳过")
)

func main() {
	flag.Parse()

	failed := 0
	if *shooterPath != "" {
		cfg, err := config.LoadShooterConfig(*shooterPath)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", *shooterPath, err)
			failed++
		} else {
			fmt.Printf("✅ %s: 竞技场 %vx%v, 生成间隔 %v → %v\n",
				*shooterPath, cfg.ArenaWidth, cfg.ArenaHeight, cfg.Spawn.InitialInterval, cfg.Spawn.MinInterval)
		}
	}
	if *avoidPath != "" {
		cfg, err := config.LoadAvoidConfig(*avoidPath)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", *avoidPath, err)
			failed++
		} else {
			fmt.Printf("✅ %s: 竞技场 %vx%v, 速度 %v\n", *avoidPath, cfg.ArenaWidth, cfg.ArenaHeight, cfg.Chaser.Speed)
		}
	}

	if failed > 0 {
		fmt.Printf("❌ 有 %d 个参数表校验失败\n", failed)
		os.Exit(1)
	}
}
