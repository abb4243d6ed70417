package config

const DefaultUploadMaxSize int64 = 20 << 20 // 20MB

type Upload struct {
	MaxSize     int64 `json:"max_size" yaml:"max_size"`
	TitleMinLen int   `json:"title_min_len" yaml:"title_min_len"`
	TitleMaxLen int   `json:"title_max_len" yaml:"title_max_len"`
}

func ProvideUploadConfig(cfg *Config) *Upload {
	return cfg.Upload
}
