package settings

import (
	"fmt"
	"time"

	"github.com/docker/go-units"
	"github.com/kelseyhightower/envconfig"
)

// ByteSize is a size in bytes read from a human readable value such as "1MB" or "512KiB".
type ByteSize int64

// Decode implements envconfig.Decoder.
func (b *ByteSize) Decode(value string) error {
	n, err := units.RAMInBytes(value)
	if err != nil {
		return fmt.Errorf("invalid byte size %q: %w", value, err)
	}
	*b = ByteSize(n)
	return nil
}

func (b ByteSize) String() string {
	return units.BytesSize(float64(b))
}

// Settings is the configuration to start main server.
type Settings struct {
	// Mode can be "prod" or "dev"
	Mode string `envconfig:"MODE" default:"dev"`

	// ServiceName names the product in logs and the Server header.
	ServiceName string `envconfig:"SERVICE_NAME" default:"todos-api"`

	// Server listen address config
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// API versioning
	ServerVersion string `envconfig:"SERVER_VERSION" default:"dev"`
	APIVersion    string `envconfig:"API_VERSION" default:"1.0"`
	MinAPIVersion string `envconfig:"MIN_API_VERSION" default:"1.0"`

	// MaxBodySize caps request bodies decoded by the controllers.
	MaxBodySize ByteSize `envconfig:"MAX_BODY_SIZE" default:"1MB"`

	// Driver is the database driver: mysql, postgres or memory.
	Driver string `envconfig:"DRIVER" default:"mysql"`

	// MySQL settings
	MySQLHost     string `envconfig:"MYSQL_HOST" default:"127.0.0.1"`
	MySQLPort     int    `envconfig:"MYSQL_PORT" default:"3306"`
	MySQLDatabase string `envconfig:"MYSQL_DB" default:"todos"`
	MySQLUser     string `envconfig:"MYSQL_USER" default:"appuser"`
	MySQLPassword string `envconfig:"MYSQL_PASSWORD" default:"password"`
	// Timeouts
	MySQLConnectTimeout time.Duration `envconfig:"MYSQL_CONNECT_TIMEOUT" default:"5s"`
	MySQLQueryTimeout   time.Duration `envconfig:"MYSQL_QUERY_TIMEOUT" default:"5s"`

	// PostgreSQL settings
	PostgresHost     string `envconfig:"POSTGRES_HOST" default:"127.0.0.1"`
	PostgresPort     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	PostgresDatabase string `envconfig:"POSTGRES_DB" default:"todos"`
	PostgresUser     string `envconfig:"POSTGRES_USER" default:"appuser"`
	PostgresPassword string `envconfig:"POSTGRES_PASSWORD" default:"password"`
	PostgresSSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
	// Timeouts
	PostgresConnectTimeout time.Duration `envconfig:"POSTGRES_CONNECT_TIMEOUT" default:"5s"`

	// Pool, shared by the SQL drivers
	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"10"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
	DBConnMaxIdleTime time.Duration `envconfig:"DB_CONN_MAX_IDLE_TIME" default:"5m"`

	// Logging settings
	LogLevel  string `envconfig:"LOG_LEVEL" default:"debug"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	// Metrics settings
	MetricsEnabled   bool   `envconfig:"METRICS_ENABLED" default:"true"`
	MetricsPath      string `envconfig:"METRICS_PATH" default:"/metrics"`
	MetricsNamespace string `envconfig:"METRICS_NAMESPACE" default:"todos"`

	// Origins is the list of allowed origins
	Origins []string `envconfig:"ORIGINS" default:""`
}

// NewSettings loads settings  by reading environment variables.
func NewSettings() *Settings {
	s, err := Load()
	if err != nil {
		panic(err)
	}

	return s
}

// Load reads settings from the environment, returning the first decoding error.
func Load() (*Settings, error) {
	s := new(Settings)
	if err := envconfig.Process("", s); err != nil {
		return nil, err
	}
	return s, nil
}
