package models

import "time"

// MConfig Structure
type MConfig struct {
	Name      string          `yaml:"name"`
	Host      string          `yaml:"host"`
	Port      int             `yaml:"port"`
	LogLevel  string          `yaml:"log_level"`
	GrpcHost  string          `yaml:"grpc_host"`
	GrpcPort  int             `yaml:"grpc_port"`
	StaticDir string          `yaml:"static_dir"`
	Upstream  MUpstreamConfig `yaml:"upstream"`
	Cache     MCacheConfig    `yaml:"cache"`
	Market    MMarketConfig   `yaml:"market"`
	Analysis  MAnalysisConfig `yaml:"analysis"`
}

type MUpstreamConfig struct {
	URL            string   `yaml:"url"`
	ResultPath     string   `yaml:"result_path"` // JSONPath of the wrapped list, e.g. $.Result
	RequestTimeout int      `yaml:"timeout"`     // seconds
	UserAgent      string   `yaml:"user_agent"`
	Proxies        []string `yaml:"proxies"`
}

type MCacheConfig struct {
	TTL         time.Duration `yaml:"ttl"`
	MinInterval time.Duration `yaml:"min_interval"`
}

type MMarketConfig struct {
	MIC      string `yaml:"mic"`
	Timezone string `yaml:"timezone"`
}

type MAnalysisConfig struct {
	HistoryDays int `yaml:"history_days"`
}
