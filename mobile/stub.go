//go:build !mobile

// Package mobile 的桌面端占位：不带 mobile 标签构建时包里只有这个文件，
// 这样 go build ./... 和 go test ./... 不会因为包内没有可编译文件而失败。
package mobile

// Dummy 与 mobile.go 中的同名函数对应
func Dummy() {}
