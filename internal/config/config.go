package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Postgres  DBConfig
	Redis     RedisConfig
	S3        S3Config
	TMDB      TMDBConfig
	Newznab   NewznabConfig
	Worker    WorkerConfig
	Logger    Logger
	Metrics   MetricsConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	AppVersion        string
	Port              string
	Mode              string
	PublicURL         string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	CtxDefaultTimeout time.Duration
	CorsOrigins       []string
}

// WorkerConfig describes how the out-of-process download worker reaches us.
// An empty CallbackSecret disables callback authentication; the callback
// endpoint is then expected to be reachable only from a private network.
type WorkerConfig struct {
	CallbackURL    string
	CallbackSecret string
	TokenTTL       time.Duration
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	PgDriver string
}

type RedisConfig struct {
	RedisAddr       string
	RedisPassword   string
	DB              int
	MinIdleConns    int
	PoolSize        int
	PoolTimeout     int
	UseTLS          bool
	JobQueueKey     string
	TitleCacheTTL   time.Duration
	ReleaseCacheTTL time.Duration
}

type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
}

type TMDBConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type NewznabConfig struct {
	BaseURL           string
	APIKey            string
	Categories        []string
	Timeout           time.Duration
	RequestsPerSecond float64
}

type Logger struct {
	Development       bool
	DisableCaller     bool
	DisableStacktrace bool
	Encoding          string
	Level             string
}

type MetricsConfig struct {
	Enabled bool
}

type TelemetryConfig struct {
	ServiceName string
}

// GetConfigPath resolves the config file location, CONFIG_PATH wins over the default.
func GetConfigPath() string {
	if p := strings.TrimSpace(os.Getenv("CONFIG_PATH")); p != "" {
		return p
	}
	return "config.yml"
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(filename)
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFound) {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.mode", "Development")
	v.SetDefault("server.readTimeout", 10*time.Second)
	v.SetDefault("server.writeTimeout", 0)
	v.SetDefault("server.ctxDefaultTimeout", 30*time.Second)
	v.SetDefault("postgres.pgDriver", "pgx")
	v.SetDefault("postgres.sslMode", "require")
	v.SetDefault("redis.jobQueueKey", "reelfetch:downloads")
	v.SetDefault("redis.titleCacheTTL", 24*time.Hour)
	v.SetDefault("redis.releaseCacheTTL", 15*time.Minute)
	v.SetDefault("tmdb.baseURL", "https://api.themoviedb.org/3")
	v.SetDefault("tmdb.timeout", 10*time.Second)
	v.SetDefault("newznab.categories", []string{"2000"})
	v.SetDefault("newznab.timeout", 20*time.Second)
	v.SetDefault("newznab.requestsPerSecond", 1.0)
	v.SetDefault("worker.tokenTTL", 72*time.Hour)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("telemetry.serviceName", "reelfetch")
}
