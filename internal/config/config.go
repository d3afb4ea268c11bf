package config

type Config struct {
	Target      TargetConfig       `mapstructure:"target"`
	Competitors []CompetitorConfig `mapstructure:"competitors"`
	Location    LocationConfig     `mapstructure:"location"`
	APIs        APIConfig          `mapstructure:"apis"`
	Audit       AuditConfig        `mapstructure:"audit"`
	Storage     StorageConfig      `mapstructure:"storage"`
	Server      ServerConfig       `mapstructure:"server"`
	Logger      LoggerConfig       `mapstructure:"logger"`
}

type TargetConfig struct {
	Domain       string   `mapstructure:"domain"`
	CompanyName  string   `mapstructure:"company_name"`
	SeedKeywords []string `mapstructure:"seed_keywords"`
}

type CompetitorConfig struct {
	Domain string `mapstructure:"domain"`
	Name   string `mapstructure:"name"`
}

type LocationConfig struct {
	Country      string `mapstructure:"country"`
	LanguageCode string `mapstructure:"language_code"`
}

type APIConfig struct {
	Labs      LabsAPIConfig      `mapstructure:"labs"`
	PageSpeed PageSpeedAPIConfig `mapstructure:"pagespeed"`
}

// LabsAPIConfig configures the DataForSEO-compatible labs API.
type LabsAPIConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Login    string `mapstructure:"login"`
	Password string `mapstructure:"password"`
	Timeout  int    `mapstructure:"timeout"`
	PaceMs   int    `mapstructure:"pace_ms"`
}

type PageSpeedAPIConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"api_key"`
}

// AuditConfig lists the pages checked for structured data and performance.
type AuditConfig struct {
	Pages []string `mapstructure:"pages"`
}

type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"time_format"`
}

type Manager interface {
	Load(configPath string) (*Config, error)
	Reload() error
	GetConfig() *Config
}
