package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	App        AppConfig

	// Upstream APIs
	GitHub GitHubConfig
	Sonar  SonarConfig
	HTTP   HTTPClientConfig

	// Delivery
	Webhook WebhookConfig
	Telex   TelexConfig

	// Background processing
	Worker WorkerConfig
	Tick   TickConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host           string
	Port           int
	Mode           string
	TrustedProxies []string // proxies whose X-Forwarded-For is honored; empty trusts none
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AppConfig describes how the integration presents itself in /integration.json.
type AppConfig struct {
	BaseURL string // public URL of this service; derived from the request when empty
}

type GitHubConfig struct {
	Token       string
	Owner       string
	Repo        string
	CommitCount int
	BaseURL     string // empty means api.github.com
}

type SonarConfig struct {
	Token      string
	ProjectKey string
	BaseURL    string
	MetricKeys []string
}

type HTTPClientConfig struct {
	Timeout time.Duration
}

type WebhookConfig struct {
	RetryDelay time.Duration
	Username   string
	EventName  string
}

// TelexConfig holds the optional log channel the report is mirrored to.
type TelexConfig struct {
	LogURL string
}

type WorkerConfig struct {
	Count     int
	QueueSize int
}

type TickConfig struct {
	RateLimitPerMin int
	AllowedIPs      []string
}

var (
	ErrMissingGitHubToken = errors.New("GITHUB_TOKEN is required")
	ErrInvalidPort        = errors.New("http_server.port must be positive")
	ErrInvalidWorkerCount = errors.New("worker.count must be positive")
)

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first if present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// Missing .env is fine; the process environment is used as is.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := fromViper(v)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = splitList(v.GetString("http_server.trusted_proxies"))
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.App.BaseURL = strings.TrimRight(v.GetString("app.base_url"), "/")

	// GitHub. Flat env names (GITHUB_TOKEN) are what deployments actually set.
	cfg.GitHub.Token = v.GetString("github.token")
	cfg.GitHub.Owner = v.GetString("github.owner")
	cfg.GitHub.Repo = v.GetString("github.repo")
	cfg.GitHub.CommitCount = v.GetInt("github.commit_count")
	cfg.GitHub.BaseURL = v.GetString("github.base_url")

	// SonarCloud
	cfg.Sonar.Token = v.GetString("sonar.token")
	cfg.Sonar.ProjectKey = v.GetString("sonar.project_key")
	cfg.Sonar.BaseURL = strings.TrimRight(v.GetString("sonar.base_url"), "/")
	cfg.Sonar.MetricKeys = splitList(v.GetString("sonar.metric_keys"))

	cfg.HTTP.Timeout = v.GetDuration("http.timeout")

	cfg.Webhook.RetryDelay = v.GetDuration("webhook.retry_delay")
	cfg.Webhook.Username = v.GetString("webhook.username")
	cfg.Webhook.EventName = v.GetString("webhook.event_name")
	cfg.Telex.LogURL = v.GetString("telex.log_url")

	cfg.Worker.Count = v.GetInt("worker.count")
	cfg.Worker.QueueSize = v.GetInt("worker.queue_size")

	cfg.Tick.RateLimitPerMin = v.GetInt("tick.rate_limit_per_min")
	// Split allowed IPs since viper might not parse array seamlessly from env
	cfg.Tick.AllowedIPs = splitList(v.GetString("tick.allowed_ips"))

	return cfg
}

func (cfg *Config) validate() error {
	if cfg.GitHub.Token == "" {
		return ErrMissingGitHubToken
	}
	if cfg.HTTPServer.Port <= 0 {
		return ErrInvalidPort
	}
	if cfg.Worker.Count <= 0 {
		return ErrInvalidWorkerCount
	}
	if cfg.GitHub.CommitCount <= 0 {
		cfg.GitHub.CommitCount = DefaultCommitCount
	}
	if cfg.Worker.QueueSize < 0 {
		cfg.Worker.QueueSize = 0
	}
	return nil
}

// SonarEnabled reports whether both SonarCloud credentials are present.
func (c SonarConfig) SonarEnabled() bool {
	return c.Token != "" && c.ProjectKey != ""
}

const (
	DefaultCommitCount = 5
	DefaultOwner       = "codenamemomi"
	DefaultRepo        = "CodeRefactorInsight_HNG12_stage3"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.host", "0.0.0.0")
	v.SetDefault("http_server.port", 8000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("github.owner", DefaultOwner)
	v.SetDefault("github.repo", DefaultRepo)
	v.SetDefault("github.commit_count", DefaultCommitCount)
	v.SetDefault("sonar.base_url", "https://sonarcloud.io")
	v.SetDefault("sonar.metric_keys", "code_smells,bugs,vulnerabilities")
	v.SetDefault("http.timeout", "10s")

	v.SetDefault("webhook.retry_delay", "2s")
	v.SetDefault("webhook.username", "codename Bot")
	v.SetDefault("webhook.event_name", "code_refactor_insight")

	v.SetDefault("worker.count", 4)
	v.SetDefault("worker.queue_size", 64)
	// Telex sends every channel's tick from the same addresses, so throttling is opt-in.
	v.SetDefault("tick.rate_limit_per_min", 0)

	// Flat aliases for the environment variables named in the README.
	_ = v.BindEnv("github.token", "GITHUB_TOKEN")
	_ = v.BindEnv("github.owner", "GITHUB_OWNER")
	_ = v.BindEnv("github.repo", "GITHUB_REPO")
	_ = v.BindEnv("sonar.token", "SONAR_TOKEN")
	_ = v.BindEnv("sonar.project_key", "SONAR_PROJECT_KEY")
	_ = v.BindEnv("telex.log_url", "TELEX_LOG_URL")
	_ = v.BindEnv("app.base_url", "APP_BASE_URL")
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
