package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func resetForTest(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	resetForTest(t)
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
	if IsInitialized() {
		t.Error("Init(nil) should leave the package uninitialized")
	}
}

// TestReadFileNotInitialized 测试未初始化时读取
func TestReadFileNotInitialized(t *testing.T) {
	resetForTest(t)
	initialized = false

	if _, err := ReadFile(DemoConfigPath); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile error = %v, want ErrNotInitialized", err)
	}
	if Exists(DemoConfigPath) {
		t.Error("Exists should be false before Init()")
	}
}

// TestReadFile 测试路径标准化和前缀检查
func TestReadFile(t *testing.T) {
	resetForTest(t)
	Init(fstest.MapFS{
		"data/demo.yaml": {Data: []byte("transition:\n  duration: 1\n")},
	})

	tests := []struct {
		path    string
		wantErr bool
	}{
		{"data/demo.yaml", false},
		{"./data/demo.yaml", false},
		{"assets/demo.yaml", true},
		{"data/missing.yaml", true},
	}
	for _, tt := range tests {
		data, err := ReadFile(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && len(data) == 0 {
			t.Errorf("ReadFile(%q) returned empty data", tt.path)
		}
		if Exists(tt.path) == tt.wantErr {
			t.Errorf("Exists(%q) = %v", tt.path, !tt.wantErr)
		}
	}
}
