package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	Engine   EngineConfig   `json:"engine"`
	Alerts   AlertsConfig   `json:"alerts"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

// EngineConfig feeds the coordination engine; all figures are policy,
// not hardcoded behavior, and can be tuned per deployment.
type EngineConfig struct {
	AmbulanceSpeedKmh      float64 `json:"ambulance_speed_kmh"`
	DroneSpeedKmh          float64 `json:"drone_speed_kmh"`
	RescueTeamSpeedKmh     float64 `json:"rescue_team_speed_kmh"`
	FireTruckSpeedKmh      float64 `json:"fire_truck_speed_kmh"`
	SupplyUnitSpeedKmh     float64 `json:"supply_unit_speed_kmh"`
	DefaultSpeedKmh        float64 `json:"default_speed_kmh"`
	VolunteerSpeedKmh      float64 `json:"volunteer_speed_kmh"`
	HighSeverityThreshold  float64 `json:"high_severity_threshold"`
	DefaultClusterRadiusKm float64 `json:"default_cluster_radius_km"`
	DefaultSearchRadiusKm  float64 `json:"default_search_radius_km"`
}

type AlertsConfig struct {
	WebhookURL  string        `json:"webhook_url"`
	Disabled    bool          `json:"disabled"`
	SnapshotTTL time.Duration `json:"snapshot_ttl"`
}

func Load() (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "resilience_hub"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Engine: EngineConfig{
			AmbulanceSpeedKmh:      getEnvFloat("ENGINE_AMBULANCE_SPEED_KMH", 60),
			DroneSpeedKmh:          getEnvFloat("ENGINE_DRONE_SPEED_KMH", 80),
			RescueTeamSpeedKmh:     getEnvFloat("ENGINE_RESCUE_TEAM_SPEED_KMH", 40),
			FireTruckSpeedKmh:      getEnvFloat("ENGINE_FIRE_TRUCK_SPEED_KMH", 50),
			SupplyUnitSpeedKmh:     getEnvFloat("ENGINE_SUPPLY_UNIT_SPEED_KMH", 45),
			DefaultSpeedKmh:        getEnvFloat("ENGINE_DEFAULT_SPEED_KMH", 50),
			VolunteerSpeedKmh:      getEnvFloat("ENGINE_VOLUNTEER_SPEED_KMH", 40),
			HighSeverityThreshold:  getEnvFloat("ENGINE_HIGH_SEVERITY_THRESHOLD", 7.0),
			DefaultClusterRadiusKm: getEnvFloat("ENGINE_CLUSTER_RADIUS_KM", 2.0),
			DefaultSearchRadiusKm:  getEnvFloat("ENGINE_SEARCH_RADIUS_KM", 10.0),
		},
		Alerts: AlertsConfig{
			WebhookURL:  getEnv("ALERT_WEBHOOK_URL", ""),
			Disabled:    getEnvBool("ALERT_WEBHOOK_DISABLED", false),
			SnapshotTTL: getEnvDuration("SOS_SNAPSHOT_TTL", 30*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("config loaded",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
	)

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}
	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}
	if c.Engine.HighSeverityThreshold < 0 || c.Engine.HighSeverityThreshold > 10 {
		return errors.New("ENGINE_HIGH_SEVERITY_THRESHOLD must be within 0..10")
	}
	if c.Engine.DefaultClusterRadiusKm <= 0 {
		return errors.New("ENGINE_CLUSTER_RADIUS_KM must be positive")
	}
	if !c.Alerts.Disabled && c.Alerts.WebhookURL == "" {
		return errors.New("ALERT_WEBHOOK_URL required unless ALERT_WEBHOOK_DISABLED=true")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
