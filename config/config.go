package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App            `json:"app" yaml:"app"`
	Redis    *Redis          `json:"redis" yaml:"redis"`
	MySQL    *MySQL          `json:"mysql" yaml:"mysql"`
	Jwt      *Jwt            `json:"jwt" yaml:"jwt"`
	Storage  *StorageConfig  `json:"storage" yaml:"storage"`
	Oss      *OssConfig      `json:"oss" yaml:"oss"`
	Minio    *MinioConfig    `json:"minio" yaml:"minio"`
	Server   *Server         `json:"server" yaml:"server"`
	RocketMQ *RocketMQConfig `json:"rocketmq" yaml:"rocketmq"`
	Upload   *Upload         `json:"upload" yaml:"upload"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}

	return conf
}

// Parse 解析 yaml 内容并补齐默认值
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}
	conf.applyDefaults()
	return &conf, nil
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.App.DownloadFlushInterval <= 0 {
		c.App.DownloadFlushInterval = 30 * time.Second
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Storage == nil {
		c.Storage = &StorageConfig{}
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageDriverMemory
	}
	if c.Storage.SignExpire <= 0 {
		c.Storage.SignExpire = 15 * time.Minute
	}
	if c.Upload == nil {
		c.Upload = &Upload{}
	}
	if c.Upload.MaxSize <= 0 {
		c.Upload.MaxSize = DefaultUploadMaxSize
	}
	if c.Upload.TitleMinLen <= 0 {
		c.Upload.TitleMinLen = 3
	}
	if c.Upload.TitleMaxLen <= 0 {
		c.Upload.TitleMaxLen = 100
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
