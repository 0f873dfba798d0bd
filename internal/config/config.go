package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	AdminAPIKeys           []string `mapstructure:"admin_api_keys"`
	StripeWebhookSecret    string   `mapstructure:"stripe_webhook_secret"`
	FactoringWebhookSecret string   `mapstructure:"factoring_webhook_secret"`
}

// MailDomainConfig holds the tagged-address domain settings
type MailDomainConfig struct {
	Domain   string `mapstructure:"domain"`    // e.g. "drive.greencandle.io"
	FromName string `mapstructure:"from_name"` // display name on outbound mail
}

// SMTPConfig holds outbound mail configuration (implicit TLS, port 465)
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// IMAPConfig holds inbound mailbox configuration
type IMAPConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Username     string        `mapstructure:"username"`
	Password     string        `mapstructure:"password"`
	Mailbox      string        `mapstructure:"mailbox"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	ErrorBackoff time.Duration `mapstructure:"error_backoff"`
	FetchLimit   int           `mapstructure:"fetch_limit"`
}

// DrafterConfig holds the AI draft vendor configuration
type DrafterConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	APIKey       string        `mapstructure:"api_key"`
	AssistantID  string        `mapstructure:"assistant_id"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	RunTimeout   time.Duration `mapstructure:"run_timeout"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// TreasuryConfig holds burn pipeline and invoice job configuration
type TreasuryConfig struct {
	BurnRateBps     int    `mapstructure:"burn_rate_bps"`
	MaxBurnUSD      string `mapstructure:"max_burn_usd"` // decimal string, empty = uncapped
	DryRun          bool   `mapstructure:"dry_run"`
	BurnSchedule    string `mapstructure:"burn_schedule"`    // cron spec
	InvoiceSchedule string `mapstructure:"invoice_schedule"` // cron spec
	WalletName      string `mapstructure:"wallet_name"`
	Chain           string `mapstructure:"chain"`
	GatewayURL      string `mapstructure:"gateway_url"` // buyback/burn execution service
	GatewayAPIKey   string `mapstructure:"gateway_api_key"`
	RPCURL          string `mapstructure:"rpc_url"` // EVM node for receipt verification
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Mail       MailDomainConfig `mapstructure:"mail"`
	SMTP       SMTPConfig       `mapstructure:"smtp"`
	Drafter    DrafterConfig    `mapstructure:"drafter"`
	NATS       NATSConfig       `mapstructure:"nats"`
}

// MailroomConfig holds configuration for the inbound mail poller
type MailroomConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Mail       MailDomainConfig `mapstructure:"mail"`
	IMAP       IMAPConfig       `mapstructure:"imap"`
	SMTP       SMTPConfig       `mapstructure:"smtp"`
	NATS       NATSConfig       `mapstructure:"nats"`
}

// SchedulerConfig holds configuration for the cron job runner
type SchedulerConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Treasury   TreasuryConfig `mapstructure:"treasury"`
	NATS       NATSConfig     `mapstructure:"nats"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("smtp.port", 465)
	v.SetDefault("drafter.poll_interval", "500ms")
	v.SetDefault("drafter.run_timeout", "30s")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "DISPATCH_EVENTS")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadMailroomConfig loads configuration for the mailroom poller
func LoadMailroomConfig(configFile string, envPath string) (*MailroomConfig, error) {
	v := configureViper("mailroom", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("imap.port", 993)
	v.SetDefault("imap.mailbox", "INBOX")
	v.SetDefault("imap.poll_interval", "15s")
	v.SetDefault("imap.error_backoff", "30s")
	v.SetDefault("imap.fetch_limit", 50)
	v.SetDefault("smtp.port", 465)
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "DISPATCH_EVENTS")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config MailroomConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if config.IMAP.Host == "" {
		return nil, errors.New("imap.host is required")
	}
	if config.Mail.Domain == "" {
		return nil, errors.New("mail.domain is required")
	}

	return &config, nil
}

// LoadSchedulerConfig loads configuration for the cron job runner
func LoadSchedulerConfig(configFile string, envPath string) (*SchedulerConfig, error) {
	v := configureViper("scheduler", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("treasury.burn_rate_bps", 1000)
	v.SetDefault("treasury.dry_run", true)
	v.SetDefault("treasury.burn_schedule", "0 6 * * 1")    // Mondays 06:00 UTC
	v.SetDefault("treasury.invoice_schedule", "0 7 * * 1") // Mondays 07:00 UTC
	v.SetDefault("treasury.wallet_name", "treasury-main")
	v.SetDefault("treasury.chain", "eip155:8453")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "DISPATCH_EVENTS")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config SchedulerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if config.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if config.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &config, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/, cmd/mailroom/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("GCD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.admin_api_keys",
		"auth.stripe_webhook_secret",
		"auth.factoring_webhook_secret",
		// Mail domain
		"mail.domain",
		"mail.from_name",
		// SMTP
		"smtp.host",
		"smtp.port",
		"smtp.username",
		"smtp.password",
		// IMAP
		"imap.host",
		"imap.port",
		"imap.username",
		"imap.password",
		"imap.mailbox",
		"imap.poll_interval",
		"imap.error_backoff",
		"imap.fetch_limit",
		// Drafter
		"drafter.base_url",
		"drafter.api_key",
		"drafter.assistant_id",
		"drafter.poll_interval",
		"drafter.run_timeout",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Treasury
		"treasury.burn_rate_bps",
		"treasury.max_burn_usd",
		"treasury.dry_run",
		"treasury.burn_schedule",
		"treasury.invoice_schedule",
		"treasury.wallet_name",
		"treasury.chain",
		"treasury.gateway_url",
		"treasury.gateway_api_key",
		"treasury.rpc_url",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
