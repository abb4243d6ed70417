package config

import "time"

const (
	StorageDriverOss    = "oss"
	StorageDriverMinio  = "minio"
	StorageDriverMemory = "memory"
)

// StorageConfig 文件存储后端选择
type StorageConfig struct {
	Driver     string        `json:"driver" yaml:"driver"`
	SignExpire time.Duration `json:"sign_expire" yaml:"sign_expire"`
}

type MinioConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	SecretAccessKey string `json:"sk" yaml:"sk"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	UseSSL          bool   `json:"use_ssl" yaml:"use_ssl"`
	PublicBaseURL   string `json:"public_base_url" yaml:"public_base_url"`
}

func ProvideStorageConfig(cfg *Config) *StorageConfig {
	return cfg.Storage
}
