package config

import "time"

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// AnonymousUpload 允许未登录用户上传笔记（文件存放在 anonymous 目录下）
	AnonymousUpload bool `json:"anonymous_upload" yaml:"anonymous_upload"`
	// DownloadFlushInterval 下载计数从 redis 回写 mysql 的间隔
	DownloadFlushInterval time.Duration `json:"download_flush_interval" yaml:"download_flush_interval"`
}

func ProvideAppConfig(cfg *Config) *App {
	return cfg.App
}
