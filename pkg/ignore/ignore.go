package ignore

import (
	"os"
	"path/filepath"

	gitignore "github.com/sabhiram/go-gitignore"
)

// Matcher 封装了忽略逻辑
// 判断一个文件要不要进入 dataid 的登记流程
type Matcher struct {
	ignorer *gitignore.GitIgnore
}

// NewMatcher 初始化忽略匹配器
// rootPath: 仓库根目录 (用于查找 .didignore 文件)
func NewMatcher(rootPath string) (*Matcher, error) {
	// 系统级默认忽略规则 (Hardcoded Defaults)，强制生效
	defaultRules := []string{
		// --- 关键系统目录 ---
		".did", // 绝对禁止登记自己的元数据目录，否则无限递归！
		".git",

		// --- 安全与配置 ---
		"config.yaml", // 防止 S3 Secret Key 泄露
		".env",

		// --- 常见垃圾文件 ---
		".DS_Store", // macOS
		"Thumbs.db", // Windows
	}

	var ignorer *gitignore.GitIgnore
	var err error

	// 用户的 .didignore 和默认规则合并编译
	ignoreFilePath := filepath.Join(rootPath, ".didignore")
	if _, errStat := os.Stat(ignoreFilePath); errStat == nil {
		ignorer, err = gitignore.CompileIgnoreFileAndLines(ignoreFilePath, defaultRules...)
	} else {
		ignorer = gitignore.CompileIgnoreLines(defaultRules...)
	}
	if err != nil {
		return nil, err
	}

	return &Matcher{ignorer: ignorer}, nil
}

// Matches 检查路径是否命中忽略规则
// path 应该是相对于仓库根目录的相对路径 (例如 "data/model.bin")
// 返回 true 表示应该忽略 (Skip)
func (m *Matcher) Matches(path string) bool {
	if m.ignorer == nil {
		return false
	}
	return m.ignorer.MatchesPath(path)
}
