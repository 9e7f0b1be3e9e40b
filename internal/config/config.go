package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Mapbox   MapboxConfig
	Pricing  PricingConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	RouteCacheTTL time.Duration
}

type MapboxConfig struct {
	AccessToken    string
	BaseURL        string
	DrivingProfile string
	RequestTimeout int // seconds
}

type PricingConfig struct {
	Currency       string
	ReturnDiscount float64 // доля скидки на комбинированную поездку туда-обратно
	Region         string  // регион оператора для индекса аэропортов
	PersistQuotes  bool

	// Граница зоны обслуживания
	AreaNorth float64
	AreaSouth float64
	AreaEast  float64
	AreaWest  float64
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			RouteCacheTTL: time.Duration(viper.GetInt("ROUTE_CACHE_TTL")) * time.Second,
		},
		Mapbox: MapboxConfig{
			AccessToken:    viper.GetString("MAPBOX_ACCESS_TOKEN"),
			BaseURL:        viper.GetString("MAPBOX_BASE_URL"),
			DrivingProfile: viper.GetString("MAPBOX_DRIVING_PROFILE"),
			RequestTimeout: viper.GetInt("MAPBOX_REQUEST_TIMEOUT"),
		},
		Pricing: PricingConfig{
			Currency:       viper.GetString("PRICING_CURRENCY"),
			ReturnDiscount: viper.GetFloat64("PRICING_RETURN_DISCOUNT"),
			Region:         viper.GetString("PRICING_REGION"),
			PersistQuotes:  viper.GetBool("PRICING_PERSIST_QUOTES"),
			AreaNorth:      viper.GetFloat64("SERVICE_AREA_NORTH"),
			AreaSouth:      viper.GetFloat64("SERVICE_AREA_SOUTH"),
			AreaEast:       viper.GetFloat64("SERVICE_AREA_EAST"),
			AreaWest:       viper.GetFloat64("SERVICE_AREA_WEST"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.RouteCacheTTL == 0 {
		cfg.Cache.RouteCacheTTL = 300 * time.Second
	}
	if cfg.Mapbox.BaseURL == "" {
		cfg.Mapbox.BaseURL = "https://api.mapbox.com"
	}
	if cfg.Mapbox.DrivingProfile == "" {
		cfg.Mapbox.DrivingProfile = "mapbox/driving"
	}
	if cfg.Mapbox.RequestTimeout == 0 {
		cfg.Mapbox.RequestTimeout = 10
	}
	if cfg.Pricing.Currency == "" {
		cfg.Pricing.Currency = "GBP"
	}
	if cfg.Pricing.ReturnDiscount == 0 {
		cfg.Pricing.ReturnDiscount = 0.10
	}
	if cfg.Pricing.Region == "" {
		cfg.Pricing.Region = "london"
	}
	if cfg.Pricing.AreaNorth == 0 && cfg.Pricing.AreaSouth == 0 {
		// Юго-восток Англии по умолчанию
		cfg.Pricing.AreaNorth = 52.7
		cfg.Pricing.AreaSouth = 50.5
		cfg.Pricing.AreaEast = 1.8
		cfg.Pricing.AreaWest = -2.0
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
