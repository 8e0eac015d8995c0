//go:build !android

package utils

import "testing"

// TestEnsureStorageDir_Desktop 非 Android 平台不需要预先创建目录
func TestEnsureStorageDir_Desktop(t *testing.T) {
	if err := EnsureStorageDir("zoomnav"); err != nil {
		t.Errorf("EnsureStorageDir() error: %v", err)
	}
	if path := StoragePath("zoomnav"); path != "" {
		t.Errorf("StoragePath() = %q, want empty", path)
	}
}
