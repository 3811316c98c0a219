//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.arspawn -o build/android/arspawn.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/ARSpawn.xcframework ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/arspawn/pkg/app"
)

func init() {
	// 移动端使用内置默认配置，触摸输入由 EbitenProvider 处理
	gameApp, err := app.NewApp(app.Config{})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
