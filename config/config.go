package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Auth     AuthConfig     `yaml:"auth"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Booking  BookingConfig  `yaml:"booking"`
	Admin    AdminConfig    `yaml:"admin"`
	Worker   WorkerConfig   `yaml:"worker"`
}

type HTTPConfig struct {
	Address        string   `yaml:"address"`
	OpenAPIFile    string   `yaml:"openapi_file"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	SecureCookies  bool     `yaml:"secure_cookies"`
}

type DatabaseConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	User        string `yaml:"user"`
	Password    string `yaml:"password"`
	Name        string `yaml:"name"`
	SSLMode     string `yaml:"ssl_mode"`
	AutoMigrate bool   `yaml:"auto_migrate"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingEventsTopic string   `yaml:"booking_events_topic"`
	GroupID            string   `yaml:"group_id"`
}

type AuthConfig struct {
	JWTSecret       string `yaml:"jwt_secret"`
	TokenTTLMinutes int    `yaml:"token_ttl_minutes"`
}

func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	FromName string `yaml:"from_name"`
}

type BookingConfig struct {
	FlightsCacheTTL   int `yaml:"flights_cache_ttl_seconds"`
	SubmitLockSeconds int `yaml:"submit_lock_seconds"`
	HoldTTLMinutes    int `yaml:"hold_ttl_minutes"`
}

type AdminConfig struct {
	StatsCacheTTL int `yaml:"stats_cache_ttl_seconds"`
	PageLimit     int `yaml:"page_limit"`
	MaxPageLimit  int `yaml:"max_page_limit"`
}

// WorkerConfig holds cron specs. An empty ExpireSchedule leaves pending
// bookings alone.
type WorkerConfig struct {
	ExpireSchedule string `yaml:"expire_schedule"`
	StatsSchedule  string `yaml:"stats_schedule"`
}

// LoadConfig reads the YAML file at path. Values from the process
// environment (optionally seeded from a .env file) override secrets.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"DB_PASSWORD":    &c.Database.Password,
		"JWT_SECRET":     &c.Auth.JWTSecret,
		"SMTP_PASSWORD":  &c.SMTP.Password,
		"REDIS_PASSWORD": &c.Redis.Password,
	}
	for key, dst := range overrides {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Auth.TokenTTLMinutes <= 0 {
		c.Auth.TokenTTLMinutes = 24 * 60
	}
	if c.SMTP.Port == 0 {
		c.SMTP.Port = 587
	}
	if c.SMTP.FromName == "" {
		c.SMTP.FromName = "HappyFares"
	}
	if c.Booking.FlightsCacheTTL <= 0 {
		c.Booking.FlightsCacheTTL = 60
	}
	if c.Booking.SubmitLockSeconds <= 0 {
		c.Booking.SubmitLockSeconds = 30
	}
	if c.Booking.HoldTTLMinutes <= 0 {
		c.Booking.HoldTTLMinutes = 24 * 60
	}
	if c.Admin.StatsCacheTTL <= 0 {
		c.Admin.StatsCacheTTL = 300
	}
	if c.Admin.PageLimit <= 0 {
		c.Admin.PageLimit = 10
	}
	if c.Admin.MaxPageLimit <= 0 {
		c.Admin.MaxPageLimit = 100
	}
	if c.Kafka.BookingEventsTopic == "" {
		c.Kafka.BookingEventsTopic = "booking-events"
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "happyfares-worker"
	}
	if c.Worker.StatsSchedule == "" {
		c.Worker.StatsSchedule = "@every 5m"
	}
}

func (c *Config) Validate() error {
	if c.Database.Name == "" {
		return errors.New("database.name is required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret (or JWT_SECRET) is required")
	}
	return nil
}
