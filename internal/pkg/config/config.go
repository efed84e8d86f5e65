package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"recopayment/internal/pkg/logger"
)

// ServerConfig holds server-level config
type ServerConfig struct {
	SERVICE_NAME string `yaml:"service_name"`
	Port         int    `yaml:"port"`
}

type LogConfig struct {
	LogLevel string `yaml:"level"`
}

// OracleConfig holds the connection settings for the AV_RECO_ENVIOS database.
type OracleConfig struct {
	User           string        `yaml:"user"`
	Password       string        `yaml:"password"`
	Host           string        `yaml:"host"`
	Port           int           `yaml:"port"`
	ServiceName    string        `yaml:"service_name"`
	ConnectTimeout time.Duration `yaml:"connect_timeout_seconds"`
}

// SOAPConfig holds the upstream ConsultaPago endpoint settings.
// InsecureSkipVerify disables TLS peer verification for the internal banking
// link; it must be set deliberately in config, never assumed.
type SOAPConfig struct {
	URL                string        `yaml:"url"`
	InsecureSkipVerify bool          `yaml:"insecure_skip_verify"`
	HTTPTimeout        time.Duration `yaml:"http_timeout_seconds"`
}

// AppConfig is the main config struct that holds all configs
type AppConfig struct {
	Server  ServerConfig `yaml:"server"`
	Logging LogConfig    `yaml:"logging"`
	Oracle  OracleConfig `yaml:"oracle"`
	SOAP    SOAPConfig   `yaml:"soap"`
}

// ConfigurationError marks settings that are missing or invalid at startup.
// It is fatal: main refuses to serve without a complete configuration.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: missing required setting %q", e.Field)
}

func assignDefaultConfigValues(cfg *AppConfig) {

	// server config defaults
	cfg.Server.SERVICE_NAME = GetEnvOrDefaultAsString("SERVICE_NAME", "reco_paymentIntegration")
	cfg.Server.Port = GetEnvOrDefaultAsInt("SERVER_PORT", 8000)

	// log config defaults
	cfg.Logging.LogLevel = GetEnvOrDefaultAsString("LOGGING_LEVEL", cfg.Logging.LogLevel)

	// Oracle config defaults
	cfg.Oracle.User = GetEnvOrDefaultAsString("DB_USER", cfg.Oracle.User)
	cfg.Oracle.Password = GetEnvOrDefaultAsString("DB_PASSWORD", cfg.Oracle.Password)
	cfg.Oracle.Host = GetEnvOrDefaultAsString("DB_HOST", cfg.Oracle.Host)
	cfg.Oracle.Port = GetEnvOrDefaultAsInt("DB_PORT", defaultInt(cfg.Oracle.Port, 1521))
	cfg.Oracle.ServiceName = GetEnvOrDefaultAsString("DB_SERVICE_NAME", cfg.Oracle.ServiceName)
	cfg.Oracle.ConnectTimeout = time.Duration(
		GetEnvOrDefaultAsInt("DB_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second

	// SOAP config defaults
	cfg.SOAP.URL = GetEnvOrDefaultAsString("SOAP_URL", cfg.SOAP.URL)
	cfg.SOAP.InsecureSkipVerify = GetEnvOrDefaultAsInt("SOAP_INSECURE_SKIP_VERIFY",
		boolToInt(cfg.SOAP.InsecureSkipVerify)) == 1
	cfg.SOAP.HTTPTimeout = time.Duration(GetEnvOrDefaultAsInt("SOAP_HTTP_TIMEOUT_SECONDS", 30)) * time.Second
}

// validate rejects incomplete settings before the server is allowed to start.
func validate(cfg *AppConfig) error {
	required := map[string]string{
		"oracle.user":         cfg.Oracle.User,
		"oracle.password":     cfg.Oracle.Password,
		"oracle.host":         cfg.Oracle.Host,
		"oracle.service_name": cfg.Oracle.ServiceName,
		"soap.url":            cfg.SOAP.URL,
	}
	for field, value := range required {
		if value == "" {
			return &ConfigurationError{Field: field}
		}
	}
	return nil
}

// LoadFromConfigFilePath loads and parses config file into AppConfig
func LoadFromConfigFilePath(configPath string) (*AppConfig, error) {

	data, err := os.ReadFile(configPath)
	if err != nil {
		logger.Error("Failed to read config file", err, slog.String("path", configPath))
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("Failed to unmarshal config", err)
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	assignDefaultConfigValues(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	logger.Info("Configuration loaded successfully", slog.String("path", configPath))

	return &cfg, nil
}

// LoadFromConfig resolves the config file path from the environment and loads it.
func LoadFromConfig() (*AppConfig, error) {
	configPath := GetEnvOrDefaultAsString("CONFIG_PATH", "configs/config.yaml")

	cfg, err := LoadFromConfigFilePath(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	return cfg, nil
}

func GetEnvOrDefaultAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return int(value)
}

// GetEnvOrDefaultAsString returns the value of the given env variable or the default value if not set.
func GetEnvOrDefaultAsString(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func defaultInt(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
