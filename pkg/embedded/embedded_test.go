package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/navigation.yaml": {Data: []byte("friction: 0.85\n")},
		"data/scenes.yaml":     {Data: []byte("scenes: []\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	initialized = false
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	initialized = false

	_, err := ReadFile("data/navigation.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

// TestReadFile 测试读取文件，包括路径标准化
func TestReadFile(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"标准路径", "data/navigation.yaml", "friction: 0.85\n"},
		{"带 ./ 前缀", "./data/scenes.yaml", "scenes: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if string(data) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, data, tt.want)
			}
		})
	}
}

// TestUnknownPrefix 测试不以 data/ 开头的路径
func TestUnknownPrefix(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	if _, err := ReadFile("assets/logo.png"); err == nil {
		t.Error("Expected error for unknown prefix")
	}
	if Exists("navigation.yaml") {
		t.Error("Expected Exists() to be false without data/ prefix")
	}
}

func TestExistsAndGlob(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	if !Exists("data/scenes.yaml") {
		t.Error("Expected data/scenes.yaml to exist")
	}
	if Exists("data/missing.yaml") {
		t.Error("Expected data/missing.yaml to be missing")
	}

	matches, err := Glob("data/*.yaml")
	if err != nil {
		t.Fatalf("Glob() error: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Expected 2 matches, got %v", matches)
	}
}
