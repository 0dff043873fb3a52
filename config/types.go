package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port        int      `yaml:"port" validate:"gt=0"`
	CORSOrigins []string `yaml:"corsOrigins"`
}

// AnalysisConfig contains defaults for the aggregation endpoints
type AnalysisConfig struct {
	TopN       int     `yaml:"topN" validate:"gte=0"`
	ZThreshold float64 `yaml:"zThreshold" validate:"gte=0"`
}

// DatasetConfig contains dataset ingestion configuration
type DatasetConfig struct {
	Path           string `yaml:"path" validate:"omitempty"`
	MaxUploadBytes int64  `yaml:"maxUploadBytes" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server" validate:"required"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Dataset  DatasetConfig  `yaml:"dataset"`
}
