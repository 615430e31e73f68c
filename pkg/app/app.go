// pkg/app/app.go
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"dataid/pkg/catalog"
	"dataid/pkg/ignore"
	"dataid/pkg/storage"
	"dataid/pkg/storage/cache"
	"dataid/pkg/storage/disk"
	s3store "dataid/pkg/storage/s3"

	"github.com/spf13/viper"
)

// App 是整个应用程序的依赖容器 (Dependency Container)
// 持有所有“单例”服务
type App struct {
	Store    storage.Store
	Catalog  *catalog.Repository
	Ignore   *ignore.Matcher
	RepoPath string
}

// NewApp 是工厂函数，按 Viper 配置组装这台机器
// 它不知道任何 CLI 命令的存在。
func NewApp(ctx context.Context) (*App, error) {
	// 1. 存储后端 (Dependency Injection)
	store, repoPath, err := buildStore(ctx)
	if err != nil {
		return nil, err
	}

	// 2. 可选的 Redis 缓存装饰层
	if viper.GetBool("cache.enabled") {
		ttl, err := time.ParseDuration(viper.GetString("cache.ttl"))
		if err != nil {
			return nil, fmt.Errorf("invalid cache.ttl: %w", err)
		}
		store, err = cache.NewCachedStore(store, cache.Config{
			RedisURL: viper.GetString("cache.redis_url"),
			TTL:      ttl,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to init cache: %w", err)
		}
	}

	// 3. Catalog 数据库
	db, err := catalog.NewDB(ctx, catalog.Config{
		Driver:   viper.GetString("catalog.driver"),
		Path:     viper.GetString("catalog.path"),
		Host:     viper.GetString("catalog.host"),
		Port:     viper.GetInt("catalog.port"),
		User:     viper.GetString("catalog.user"),
		Password: viper.GetString("catalog.password"),
		DBName:   viper.GetString("catalog.dbname"),
		SSLMode:  viper.GetString("catalog.sslmode"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init catalog: %w", err)
	}

	// 4. 忽略规则
	matcher, err := ignore.NewMatcher(filepath.Dir(repoPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load ignore rules: %w", err)
	}

	return &App{
		Store:    store,
		Catalog:  catalog.NewRepository(db),
		Ignore:   matcher,
		RepoPath: repoPath,
	}, nil
}

// buildStore 根据配置选择磁盘或 S3 后端
// 返回 (store, repoPath)。repoPath 是 .did 目录 (磁盘场景下 objects 的上一层)。
func buildStore(ctx context.Context) (storage.Store, string, error) {
	switch viper.GetString("storage.type") {
	case "", "disk":
		storePath := viper.GetString("storage.path")
		if storePath == "" {
			return nil, "", fmt.Errorf("storage path not set")
		}
		store, err := disk.NewAdapter(storePath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to init storage: %w", err)
		}
		// storePath: .../.did/objects -> repoPath: .../.did
		return store, filepath.Dir(storePath), nil

	case "s3":
		store, err := s3store.NewAdapter(ctx, s3store.Config{
			Endpoint:        viper.GetString("s3.endpoint"),
			Region:          viper.GetString("s3.region"),
			Bucket:          viper.GetString("s3.bucket"),
			AccessKeyID:     viper.GetString("s3.access_key_id"),
			SecretAccessKey: viper.GetString("s3.secret_access_key"),
		})
		if err != nil {
			return nil, "", fmt.Errorf("failed to init s3 storage: %w", err)
		}
		// S3 场景下 catalog/ignore 还是落在本地 .did
		storePath := viper.GetString("storage.path")
		return store, filepath.Dir(storePath), nil

	default:
		return nil, "", fmt.Errorf("unsupported storage type: %q", viper.GetString("storage.type"))
	}
}
