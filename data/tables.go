// Package data 内置参数表
//
// 桌面端和移动端通过根目录 embed.go 的 data FS 读取同样的文件；
// 终端前端位于 cmd/ 下，无法向上嵌入，直接使用这里的字节。
package data

import _ "embed"

// ShooterYAML 射击模式参数表
//
//go:embed shooter.yaml
var ShooterYAML []byte

// AvoidYAML 躲避模式参数表
//
//go:embed avoid.yaml
var AvoidYAML []byte
