package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStore_Disk(t *testing.T) {
	// 1. Mock 配置
	viper.Reset()
	viper.Set("storage.type", "disk")
	objects := filepath.Join(t.TempDir(), ".did", "objects")
	viper.Set("storage.path", objects)

	// 2. 调用私有函数 (因为我们在同一个包)
	store, repoPath, err := buildStore(context.Background())

	// 3. 验证
	require.NoError(t, err)
	assert.NotNil(t, store)
	assert.Equal(t, filepath.Dir(objects), repoPath)
}

func TestBuildStore_UnknownType(t *testing.T) {
	viper.Reset()
	viper.Set("storage.type", "ftp") // 不支持的类型

	store, _, err := buildStore(context.Background())
	assert.Error(t, err)
	assert.Nil(t, store)
	assert.Contains(t, err.Error(), "unsupported storage type")
}

func TestBuildStore_Disk_MissingPath(t *testing.T) {
	viper.Reset()
	viper.Set("storage.type", "disk")
	// 故意不设置 storage.path

	store, _, err := buildStore(context.Background())
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewApp_DiskWithSqliteCatalog(t *testing.T) {
	viper.Reset()
	root := t.TempDir()
	viper.Set("storage.type", "disk")
	viper.Set("storage.path", filepath.Join(root, ".did", "objects"))
	viper.Set("cache.enabled", false)
	viper.Set("catalog.driver", "sqlite")
	viper.Set("catalog.path", filepath.Join(root, ".did", "catalog.db"))

	a, err := NewApp(context.Background())
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.NotNil(t, a.Store)
	assert.NotNil(t, a.Catalog)
	assert.NotNil(t, a.Ignore)
	assert.Equal(t, filepath.Join(root, ".did"), a.RepoPath)

	// 默认忽略规则必须生效
	assert.True(t, a.Ignore.Matches(".did/objects/aa/bb"))
}
