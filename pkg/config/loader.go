package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load 初始化 Viper 配置
// cfgFile: 可选，用户显式指定的配置文件路径
func Load(cfgFile string) error {
	// 1. 设置默认值 (Defaults)
	setDefaults()

	// 2. 配置搜索路径
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		// 搜索顺序：当前目录 -> ./.did -> ~/.did
		viper.AddConfigPath(".")
		viper.AddConfigPath(".did")
		viper.AddConfigPath(filepath.Join(home, ".did"))

		viper.SetConfigType("yaml")
		viper.SetConfigName("config") // 找 config.yaml
	}

	// 3. 读取环境变量 (DID_STORAGE_TYPE 等)
	viper.SetEnvPrefix("DID")
	viper.AutomaticEnv()

	// 4. 读取配置文件
	if err := viper.ReadInConfig(); err != nil {
		// 没找到配置文件不算错 (可能全靠默认值/环境变量)；格式错才是错
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("fatal error config file: %w", err)
		}
	}

	return nil
}

func setDefaults() {
	wd, _ := os.Getwd()
	repoDir := filepath.Join(wd, ".did")

	// 存储默认值
	viper.SetDefault("storage.type", "disk")
	viper.SetDefault("storage.path", filepath.Join(repoDir, "objects"))

	// S3 后端 (storage.type = "s3" 时生效)
	viper.SetDefault("s3.region", "us-east-1")
	viper.SetDefault("s3.bucket", "dataid")

	// Redis 存在性缓存 (可选)
	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.redis_url", "redis://localhost:6379/0")
	viper.SetDefault("cache.ttl", "24h")

	// Catalog 数据库
	viper.SetDefault("catalog.driver", "sqlite")
	viper.SetDefault("catalog.path", filepath.Join(repoDir, "catalog.db"))
	viper.SetDefault("catalog.host", "localhost")
	viper.SetDefault("catalog.port", 5432)
	viper.SetDefault("catalog.sslmode", "disable")
}
