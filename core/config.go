package core

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"
)

type Config struct {
	Server  Server  `yaml:"server"`
	Catalog Catalog `yaml:"catalog"`
	SRD     SRD     `yaml:"srd"`
	Profile Profile `yaml:"profile"`
}

type Server struct {
	ListenAddr    string `yaml:"listenAddr" env:"CHARSHEET_LISTEN_ADDR"`
	Dsn           string `yaml:"dsn" env:"CHARSHEET_DSN"`
	RedisAddr     string `yaml:"redisAddr" env:"CHARSHEET_REDIS_ADDR"`
	RedisDB       int    `yaml:"redisDB" env:"CHARSHEET_REDIS_DB"`
	MemcachedAddr string `yaml:"memcachedAddr" env:"CHARSHEET_MEMCACHED_ADDR"`
	EnableTrace   bool   `yaml:"enableTrace" env:"CHARSHEET_ENABLE_TRACE"`
	TraceEndpoint string `yaml:"traceEndpoint" env:"CHARSHEET_TRACE_ENDPOINT"`
	LogPath       string `yaml:"logPath" env:"CHARSHEET_LOG_PATH"`
}

type Catalog struct {
	CacheTTL time.Duration `yaml:"cacheTTL" env:"CHARSHEET_CATALOG_CACHE_TTL"`
}

type SRD struct {
	BaseURL     string `yaml:"baseURL" env:"CHARSHEET_SRD_BASE_URL"`
	Concurrency int    `yaml:"concurrency" env:"CHARSHEET_SRD_CONCURRENCY"`
}

type Profile struct {
	Nickname        string `yaml:"nickname" json:"nickname"`
	Description     string `yaml:"description" json:"description"`
	MaintainerName  string `yaml:"maintainerName" json:"maintainerName"`
	MaintainerEmail string `yaml:"maintainerEmail" json:"maintainerEmail"`

	// internal generated
	Version string `yaml:"version" json:"version"`
}

// DefaultConfig returns the values used when neither the file nor the environment sets them
func DefaultConfig() Config {
	return Config{
		Server: Server{
			ListenAddr:    ":8000",
			RedisAddr:     "localhost:6379",
			MemcachedAddr: "localhost:11211",
		},
		Catalog: Catalog{
			CacheTTL: 10 * time.Minute,
		},
		SRD: SRD{
			BaseURL:     "https://www.dnd5eapi.co",
			Concurrency: 8,
		},
	}
}

// Load reads the yaml file at path on top of the current values, then applies environment overrides.
// A missing file is not an error so that the service can be configured from the environment alone.
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to open configuration file")
	}
	if err == nil {
		defer f.Close()
		err = yaml.NewDecoder(f).Decode(c)
		if err != nil {
			return errors.Wrap(err, "failed to load configuration file")
		}
	}

	if err := env.Parse(c); err != nil {
		return errors.Wrap(err, "failed to parse environment")
	}

	return nil
}
