//go:build mobile

package utils

// IsMobile 移动端编译时总是返回 true
// 导航提示显示"滑动"文案，鼠标不再模拟触摸
func IsMobile() bool {
	return true
}
