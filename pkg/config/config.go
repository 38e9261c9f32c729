package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Log     LogConfig
	Ledger  LedgerConfig
	Metrics MetricsConfig
	Docs    DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig nivel del logger (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
}

// LedgerConfig parámetros del libro mayor.
// Timezone define el día calendario usado en /statement/date ("Local" = zona del proceso).
type LedgerConfig struct {
	Timezone string
	location *time.Location
}

// Location zona horaria resuelta por Load.
func (c LedgerConfig) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// MetricsConfig exposición de /metrics.
type MetricsConfig struct {
	Enabled bool
}

// DocsConfig Swagger UI; si el archivo no existe la ruta /docs no se registra.
type DocsConfig struct {
	FilePath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, LEDGER_TIMEZONE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env o config.env; se ignora si no existe.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "ledger-api"),
		},
		HTTP: HTTPConfig{
			Host:         getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:         getInt(v, "HTTP_PORT", 3333),
			ReadTimeout:  time.Duration(getInt(v, "HTTP_READ_TIMEOUT_SECONDS", 10)) * time.Second,
			WriteTimeout: time.Duration(getInt(v, "HTTP_WRITE_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Ledger: LedgerConfig{
			Timezone: getString(v, "LEDGER_TIMEZONE", "Local"),
		},
		Metrics: MetricsConfig{
			Enabled: getBool(v, "METRICS_ENABLED", true),
		},
		Docs: DocsConfig{
			FilePath: getString(v, "DOCS_PATH", "./docs/swagger.json"),
		},
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: HTTP_PORT inválido: %d", cfg.HTTP.Port)
	}
	loc, err := time.LoadLocation(cfg.Ledger.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: LEDGER_TIMEZONE %q: %w", cfg.Ledger.Timezone, err)
	}
	cfg.Ledger.location = loc

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
