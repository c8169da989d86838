package config

import (
	"fmt"
	"net"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Http          Http          `yaml:"http"`
	JwtTTL        time.Duration `yaml:"jwt_ttl" env:"JWT_TTL" validate:"required"`
	LogLevel      string        `yaml:"log_level" env:"LOG_LEVEL"`
	LogJSON       bool          `yaml:"log_json" env:"LOG_JSON"`
	CorsOrigins   []string      `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:","`
	SecureCookies bool          `yaml:"secure_cookies" env:"SECURE_COOKIES"` // Secure cookie flag and HSTS, enable behind TLS
}

type Http struct {
	Host            string        `yaml:"host" env:"HTTP_HOST"`
	Port            int           `yaml:"port" env:"HTTP_PORT" validate:"required,min=1,max=65535"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT"`
}

type Pg struct {
	Host     string `yaml:"host" env:"PG_HOST" validate:"required"`
	Port     int    `yaml:"port" env:"PG_PORT" validate:"required"`
	User     string `yaml:"user" env:"PG_USER" validate:"required"`
	Password string `yaml:"password" env:"PG_PASSWORD"`
	Dbname   string `yaml:"dbname" env:"PG_DBNAME" validate:"required"`
	InitPath string `yaml:"init_path" env:"PG_INIT_PATH"` // optional schema file applied on startup
}

type Private struct {
	Pg     Pg     `yaml:"pg"`
	JwtKey string `yaml:"jwt_key" env:"JWT_KEY" validate:"required"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL
}

func (h Http) Addr() string {
	return net.JoinHostPort(h.Host, strconv.Itoa(h.Port))
}

func loadPath(configPath string, output interface{}) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("config file does not exist: %s", configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("can't read config file %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		return fmt.Errorf("can't unmarshal config file %s: %w", configPath, err)
	}
	// environment variables take precedence over yaml values
	if err := cleanenv.ReadEnv(output); err != nil {
		return fmt.Errorf("can't read env for %s: %w", configPath, err)
	}
	return nil
}

func setDefaults(cfg *Config) {
	if cfg.Public.LogLevel == "" {
		cfg.Public.LogLevel = "info"
	}
	if cfg.Public.Http.ShutdownTimeout == 0 {
		cfg.Public.Http.ShutdownTimeout = 10 * time.Second
	}
}

// Load reads public.yaml and private.yaml from configFolder, overlays env and validates the result.
func Load(configFolder string) (*Config, error) {
	var public Public
	if err := loadPath(path.Join(configFolder, "public.yaml"), &public); err != nil {
		return nil, err
	}

	var private Private
	if err := loadPath(path.Join(configFolder, "private.yaml"), &private); err != nil {
		return nil, err
	}

	cfg := &Config{Public: public, Private: private}
	setDefaults(cfg)

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func MustLoad(configFolder string) *Config {
	cfg, err := Load(configFolder)
	if err != nil {
		panic(err)
	}
	return cfg
}
