package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go-hardware-demo/internal/model"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Shop    ShopConfig    `mapstructure:"shop"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowOrigins    string        `mapstructure:"allow_origins"`
}

// StorageConfig selects the snapshot backend: file, redis, postgres or sqlite.
type StorageConfig struct {
	Driver     string `mapstructure:"driver"`
	Key        string `mapstructure:"key"`
	FilePath   string `mapstructure:"file_path"`
	DSN        string `mapstructure:"dsn"`
	StrictLoad bool   `mapstructure:"strict_load"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AuthConfig struct {
	OperatorPassword string        `mapstructure:"operator_password"`
	JWTSecret        string        `mapstructure:"jwt_secret"`
	TokenTTL         time.Duration `mapstructure:"token_ttl"`
	Issuer           string        `mapstructure:"issuer"`
}

type ShopConfig struct {
	AutoSeed    bool   `mapstructure:"auto_seed"`
	Timezone    string `mapstructure:"timezone"`
	PhoneRegion string `mapstructure:"phone_region"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Location resolves the shop timezone, falling back to a fixed IST offset
// when the tz database is unavailable.
func (s ShopConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

// Load reads configFile when given, otherwise config.yaml from ./configs or
// the working directory if present. Environment variables override both.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVariables(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.allow_origins", "*")

	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.key", model.DefaultStorageKey)
	v.SetDefault("storage.file_path", "data/"+model.DefaultStorageKey+".json")
	v.SetDefault("storage.dsn", "")
	v.SetDefault("storage.strict_load", false)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.operator_password", "")
	v.SetDefault("auth.jwt_secret", "change-me-in-production")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("auth.issuer", "go-hardware-demo")

	v.SetDefault("shop.auto_seed", true)
	v.SetDefault("shop.timezone", "Asia/Kolkata")
	v.SetDefault("shop.phone_region", "IN")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

func bindEnvVariables(v *viper.Viper) {
	v.BindEnv("server.port", "SERVER_PORT", "PORT")
	v.BindEnv("auth.jwt_secret", "JWT_SECRET")
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "file":
		if c.Storage.FilePath == "" {
			return errors.New("storage.file_path is required for the file driver")
		}
	case "redis":
		if c.Redis.Addr == "" {
			return errors.New("redis.addr is required for the redis driver")
		}
	case "postgres", "sqlite":
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required for the %s driver", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.Key == "" {
		return errors.New("storage.key must not be empty")
	}
	return nil
}
