package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var baseValidConfig = AppConfig{
	Server:  ServerConfig{Port: 8000},
	Logging: LogConfig{LogLevel: "info"},
	Oracle: OracleConfig{
		User:        "reco",
		Password:    "secret",
		Host:        "oracle.internal",
		Port:        1521,
		ServiceName: "RECOPROD",
	},
	SOAP: SOAPConfig{
		URL:                "https://bank.internal/ConsultaPago.asmx",
		InsecureSkipVerify: true,
	},
}

// Helper to write a config file to temp path
func writeTempConfig(t *testing.T, cfg AppConfig) string {
	t.Helper()
	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	tmp := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmp, data, 0644))
	return tmp
}

func TestLoadFromConfigFilePath_FileNotFound(t *testing.T) {
	_, err := LoadFromConfigFilePath("/does/not/exist.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadFromConfigFilePath_InvalidYAML(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmp, []byte("{ invalid yaml"), 0644))

	_, err := LoadFromConfigFilePath(tmp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config")
}

func TestLoadFromConfigFilePath_Valid(t *testing.T) {
	path := writeTempConfig(t, baseValidConfig)

	cfg, err := LoadFromConfigFilePath(path)
	require.NoError(t, err)

	assert.Equal(t, "reco", cfg.Oracle.User)
	assert.Equal(t, 1521, cfg.Oracle.Port)
	assert.Equal(t, "RECOPROD", cfg.Oracle.ServiceName)
	assert.True(t, cfg.SOAP.InsecureSkipVerify)
	assert.Equal(t, 30*time.Second, cfg.SOAP.HTTPTimeout)
	assert.Equal(t, 10*time.Second, cfg.Oracle.ConnectTimeout)
	assert.Equal(t, "reco_paymentIntegration", cfg.Server.SERVICE_NAME)
}

func TestLoadFromConfigFilePath_MissingRequiredSetting(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*AppConfig)
		field  string
	}{
		{"no db user", func(c *AppConfig) { c.Oracle.User = "" }, "oracle.user"},
		{"no db password", func(c *AppConfig) { c.Oracle.Password = "" }, "oracle.password"},
		{"no db host", func(c *AppConfig) { c.Oracle.Host = "" }, "oracle.host"},
		{"no service name", func(c *AppConfig) { c.Oracle.ServiceName = "" }, "oracle.service_name"},
		{"no soap url", func(c *AppConfig) { c.SOAP.URL = "" }, "soap.url"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := baseValidConfig
			tc.mutate(&cfg)
			path := writeTempConfig(t, cfg)

			_, err := LoadFromConfigFilePath(path)
			require.Error(t, err)

			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}

func TestLoadFromConfigFilePath_EnvOverrides(t *testing.T) {
	cfg := baseValidConfig
	cfg.SOAP.URL = "https://old.example/soap"
	path := writeTempConfig(t, cfg)

	t.Setenv("SOAP_URL", "https://new.example/soap")
	t.Setenv("DB_PORT", "1522")
	t.Setenv("SOAP_INSECURE_SKIP_VERIFY", "0")

	loaded, err := LoadFromConfigFilePath(path)
	require.NoError(t, err)

	assert.Equal(t, "https://new.example/soap", loaded.SOAP.URL)
	assert.Equal(t, 1522, loaded.Oracle.Port)
	assert.False(t, loaded.SOAP.InsecureSkipVerify)
}

func TestGetEnvOrDefaultAsInt(t *testing.T) {
	t.Setenv("SOME_INT", "42")
	assert.Equal(t, 42, GetEnvOrDefaultAsInt("SOME_INT", 7))
	assert.Equal(t, 7, GetEnvOrDefaultAsInt("MISSING_INT", 7))

	t.Setenv("BAD_INT", "forty-two")
	assert.Equal(t, 7, GetEnvOrDefaultAsInt("BAD_INT", 7))
}

func TestLoadFromConfig_DefaultPath(t *testing.T) {
	path := writeTempConfig(t, baseValidConfig)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := LoadFromConfig()
	require.NoError(t, err)
	assert.Equal(t, "oracle.internal", cfg.Oracle.Host)
}
