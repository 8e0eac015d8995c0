//go:build !android

package utils

// EnsureStorageDir 确保设置存储目录存在
// 非 Android 平台由 gdata 自动创建目录，这里什么都不做
func EnsureStorageDir(appName string) error {
	return nil
}

// StoragePath 返回设置存储路径（非 Android 平台返回空字符串，由 gdata 决定）
func StoragePath(appName string) string {
	return ""
}
