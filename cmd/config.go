package cmd

import (
	"fmt"

	"kebabhouse/internal/pkg/props"
)

// Storage backend kinds selectable through STORAGE_KIND.
const (
	StoragePostgres = "postgres"
	StorageFile     = "file"
	StorageMemory   = "memory"
)

// Config carries everything the composition root needs to assemble the
// application. Database settings are read only when the postgres backend is
// selected; the file backend needs only the data path.
type Config struct {
	HTTPPort     string
	FrontEndKind string
	StorageKind  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	DataPath string

	RoleCacheRefreshCron string
}

// ConfigFromProps assembles the Config from the property provider. The HTTP
// port is the only universally required key.
func ConfigFromProps(p *props.Provider) (Config, error) {
	httpPort, err := p.Get("HTTP_PORT")
	if err != nil {
		return Config{}, err
	}

	config := Config{
		HTTPPort:             httpPort,
		FrontEndKind:         p.GetDefault("FRONT_END_KIND", "api"),
		StorageKind:          p.GetDefault("STORAGE_KIND", StorageMemory),
		RoleCacheRefreshCron: p.GetDefault("ROLE_CACHE_REFRESH_CRON", ""),
	}

	switch config.StorageKind {
	case StoragePostgres:
		keys := []struct {
			key    string
			target *string
		}{
			{"DB_HOST", &config.DBHost},
			{"DB_PORT", &config.DBPort},
			{"DB_USER", &config.DBUser},
			{"DB_PASSWORD", &config.DBPassword},
			{"DB_NAME", &config.DBName},
			{"DB_SSLMODE", &config.DBSslMode},
		}
		for _, k := range keys {
			value, keyErr := p.Get(k.key)
			if keyErr != nil {
				return Config{}, keyErr
			}
			*k.target = value
		}
	case StorageFile:
		path, pathErr := p.Get("DATA_PATH")
		if pathErr != nil {
			return Config{}, pathErr
		}
		config.DataPath = path
	case StorageMemory:
		// nothing to configure
	default:
		return Config{}, fmt.Errorf("unknown storage kind %q", config.StorageKind)
	}

	return config, nil
}

// DSN renders the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
