package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Addr string `yaml:"-"` // computed after load
	} `yaml:"server"`

	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`

	Catalog struct {
		Source  string `yaml:"source"`   // csv or mysql
		CSVPath string `yaml:"csv_path"` // used when source=csv
		Table   string `yaml:"table"`    // used when source=mysql
	} `yaml:"catalog"`

	DB struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Username        string `yaml:"username"`
		Password        string `yaml:"password"`
		Database        string `yaml:"database"`
		Charset         string `yaml:"charset"`
		ParseTime       bool   `yaml:"parse_time"`
		DSN             string `yaml:"-"` // computed after load
		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // minutes
	} `yaml:"database"`

	Engine struct {
		DefaultTopN int `yaml:"default_top_n"` // recommendations per request when top_n is omitted
	} `yaml:"engine"`

	Refresh struct {
		Hour             int `yaml:"hour"`               // daily catalog refresh hour (0-23)
		Minute           int `yaml:"minute"`             // daily catalog refresh minute (0-59)
		CheckIntervalSec int `yaml:"check_interval_sec"` // scheduler tick interval (seconds)
	} `yaml:"refresh"`

	Debug struct {
		Enabled        bool `yaml:"enabled"`          // run the refresh task on a short interval instead of daily
		RefreshFreqSec int  `yaml:"refresh_freq_sec"` // refresh interval in debug mode (seconds)
	} `yaml:"debug"`
}

func Load() *Config {
	// Load .env first; a missing file just means plain environment variables.
	_ = godotenv.Load()

	var cfg Config

	if data, err := os.ReadFile("config.yaml"); err == nil {
		err = yaml.Unmarshal(data, &cfg)
		if err != nil {
			log.Printf("Error loading config.yaml: %v, falling back to environment variables", err)
			return loadFromEnv()
		}
		log.Println("Loading configuration from config.yaml")

		cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)

		// Credentials come from the environment, never from the yaml file.
		if envUsername := os.Getenv("DATABASE_USERNAME"); envUsername != "" {
			cfg.DB.Username = envUsername
		}
		if envPassword := os.Getenv("DATABASE_PASSWORD"); envPassword != "" {
			cfg.DB.Password = envPassword
		}
		if envPath := os.Getenv("CATALOG_CSV_PATH"); envPath != "" {
			cfg.Catalog.CSVPath = envPath
		}

		applyDefaults(&cfg)
		cfg.DB.DSN = buildDSN(&cfg)

		return &cfg
	}

	return loadFromEnv()
}

func loadFromEnv() *Config {
	// Minimal configuration when config.yaml is absent or broken.
	var cfg Config

	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)

	if source := os.Getenv("CATALOG_SOURCE"); source != "" {
		cfg.Catalog.Source = source
	}
	if path := os.Getenv("CATALOG_CSV_PATH"); path != "" {
		cfg.Catalog.CSVPath = path
	}
	if table := os.Getenv("CATALOG_TABLE"); table != "" {
		cfg.Catalog.Table = table
	}

	if username := os.Getenv("DATABASE_USERNAME"); username != "" {
		cfg.DB.Username = username
	}
	if password := os.Getenv("DATABASE_PASSWORD"); password != "" {
		cfg.DB.Password = password
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		cfg.DB.DSN = dsn
	}

	applyDefaults(&cfg)
	if cfg.DB.DSN == "" && cfg.DB.Host != "" {
		cfg.DB.DSN = buildDSN(&cfg)
	}

	log.Println("Configuration loaded from environment variables, some settings may be missing")
	return &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = "csv"
	}
	if cfg.Catalog.CSVPath == "" {
		cfg.Catalog.CSVPath = "data/destinations.csv"
	}
	if cfg.Catalog.Table == "" {
		cfg.Catalog.Table = "destinations"
	}
	if cfg.Engine.DefaultTopN <= 0 {
		cfg.Engine.DefaultTopN = 5
	}
	if cfg.DB.Charset == "" {
		cfg.DB.Charset = "utf8mb4"
	}
}

func buildDSN(cfg *Config) string {
	if cfg.DB.DSN != "" {
		return cfg.DB.DSN
	}
	parseTime := ""
	if cfg.DB.ParseTime {
		parseTime = "&parseTime=true"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s%s",
		cfg.DB.Username,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Database,
		cfg.DB.Charset,
		parseTime)
}
