package config

import (
	"fmt"
	"time"
)

// Redis 下载计数缓冲用的 redis
type Redis struct {
	Address     string        `json:"address" yaml:"address"`
	Port        int           `json:"port" yaml:"port"`
	Username    string        `json:"username" yaml:"username"`
	Password    string        `json:"password" yaml:"password"`
	Database    int           `json:"database" yaml:"database"`
	PoolSize    int           `json:"pool_size" yaml:"pool_size"`
	DialTimeout time.Duration `json:"dial_timeout" yaml:"dial_timeout"`
}

// Addr host:port，端口未配置时用 6379
func (r *Redis) Addr() string {
	port := r.Port
	if port == 0 {
		port = 6379
	}
	return fmt.Sprintf("%s:%d", r.Address, port)
}
