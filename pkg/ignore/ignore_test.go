package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher_Defaults(t *testing.T) {
	// 空目录：模拟没有 .didignore 的情况
	tmpDir := t.TempDir()

	matcher, err := NewMatcher(tmpDir)
	require.NoError(t, err)

	tests := []struct {
		path     string
		shouldIg bool
	}{
		{".did", true},
		{".did/objects/aa", true}, // 子路径也应该被忽略
		{".git", true},
		{"config.yaml", true},
		{".DS_Store", true},
		{"main.go", false}, // 普通文件不应忽略
		{"data/model.bin", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.shouldIg, matcher.Matches(tt.path), "Path: %s", tt.path)
		})
	}
}

func TestMatcher_WithUserFile(t *testing.T) {
	tmpDir := t.TempDir()

	// 自定义规则 + 默认规则混合
	ignoreContent := `
# 这是注释
*.log
temp
!important.log
`
	err := os.WriteFile(filepath.Join(tmpDir, ".didignore"), []byte(ignoreContent), 0644)
	require.NoError(t, err)

	matcher, err := NewMatcher(tmpDir)
	require.NoError(t, err)

	tests := []struct {
		path     string
		shouldIg bool
	}{
		// --- 默认规则依然要生效 ---
		{".did", true},
		{"config.yaml", true},

		// --- 用户规则生效 ---
		{"app.log", true},        // *.log
		{"logs/error.log", true}, // *.log 递归
		{"temp", true},
		{"temp/file", true},

		// --- 正常文件 ---
		{"main.go", false},

		// --- 负向规则 (Whitelisting) ---
		{"important.log", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.shouldIg, matcher.Matches(tt.path), "Path: %s", tt.path)
		})
	}
}
