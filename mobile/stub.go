//go:build !mobile

// 桌面端构建时 mobile 包只剩这个文件。
// 绑定入口在 mobile.go 和 embed.go 中，需要 -tags mobile 才会编译，
// 这样 go build ./... 和 go vet ./... 在桌面端也能通过。
package mobile

// Dummy 空导出函数，ebitenmobile bind 要求包内至少有一个导出符号
func Dummy() {}
