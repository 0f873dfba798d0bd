package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 20
  write_timeout: 20
  idle_timeout: 180
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
auth:
  admin_api_keys:
    - "key1"
    - "key2"
  stripe_webhook_secret: "whsec_test"
mail:
  domain: "drive.example.com"
  from_name: "Example Dispatch"
smtp:
  host: "smtp.example.com"
  username: "mailer"
  password: "secret"
drafter:
  base_url: "https://api.vendor.example"
  api_key: "vk_test"
  assistant_id: "asst_123"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 20, cfg.Server.ReadTimeout)
				assert.Equal(t, 180, cfg.Server.IdleTimeout)
				assert.Len(t, cfg.Auth.AdminAPIKeys, 2)
				assert.Equal(t, "whsec_test", cfg.Auth.StripeWebhookSecret)
				assert.Equal(t, "drive.example.com", cfg.Mail.Domain)
				assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
				assert.Equal(t, 465, cfg.SMTP.Port) // default
				assert.Equal(t, "https://api.vendor.example", cfg.Drafter.BaseURL)
				assert.Equal(t, "asst_123", cfg.Drafter.AssistantID)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)                   // default
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)  // default
				assert.Equal(t, 8080, cfg.Server.Port)       // default
				assert.Equal(t, 10, cfg.Server.ReadTimeout)  // default
				assert.Equal(t, 10, cfg.Server.WriteTimeout) // default
				assert.Equal(t, 120, cfg.Server.IdleTimeout) // default
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 500*time.Millisecond, cfg.Drafter.PollInterval)
				assert.Equal(t, 30*time.Second, cfg.Drafter.RunTimeout)
				assert.Equal(t, "DISPATCH_EVENTS", cfg.NATS.StreamName)
			},
		},
		{
			name:        "missing config file - should work with env vars",
			configFile:  "",
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.NotNil(t, cfg)
				assert.Equal(t, 8080, cfg.Server.Port) // default
			},
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true, // Invalid port should cause unmarshal error
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var configFile string

			if tt.configFile != "" {
				tmpDir := t.TempDir()
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			}

			cfg, err := LoadAPIConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadMailroomConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *MailroomConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
mail:
  domain: "drive.example.com"
imap:
  host: "imap.example.com"
  username: "dispatch@example.com"
  password: "secret"
  poll_interval: "10s"
  error_backoff: "1m"
smtp:
  host: "smtp.example.com"
  username: "dispatch@example.com"
  password: "secret"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *MailroomConfig) {
				assert.Equal(t, "imap.example.com", cfg.IMAP.Host)
				assert.Equal(t, 993, cfg.IMAP.Port)        // default
				assert.Equal(t, "INBOX", cfg.IMAP.Mailbox) // default
				assert.Equal(t, 10*time.Second, cfg.IMAP.PollInterval)
				assert.Equal(t, time.Minute, cfg.IMAP.ErrorBackoff)
				assert.Equal(t, 50, cfg.IMAP.FetchLimit) // default
				assert.Equal(t, "drive.example.com", cfg.Mail.Domain)
			},
		},
		{
			name: "missing imap host",
			configFile: `
database:
  host: localhost
  dbname: testdb
mail:
  domain: "drive.example.com"
`,
			expectError: true,
			validate:    nil,
		},
		{
			name: "missing mail domain",
			configFile: `
database:
  host: localhost
  dbname: testdb
imap:
  host: "imap.example.com"
`,
			expectError: true,
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadMailroomConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadSchedulerConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *SchedulerConfig)
	}{
		{
			name: "valid config file",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
treasury:
  burn_rate_bps: 500
  max_burn_usd: "2500"
  dry_run: false
  burn_schedule: "30 5 * * 1"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *SchedulerConfig) {
				assert.Equal(t, 500, cfg.Treasury.BurnRateBps)
				assert.Equal(t, "2500", cfg.Treasury.MaxBurnUSD)
				assert.False(t, cfg.Treasury.DryRun)
				assert.Equal(t, "30 5 * * 1", cfg.Treasury.BurnSchedule)
				assert.Equal(t, "0 7 * * 1", cfg.Treasury.InvoiceSchedule) // default
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			expectError: false,
			validate: func(t *testing.T, cfg *SchedulerConfig) {
				assert.Equal(t, 1000, cfg.Treasury.BurnRateBps) // default
				assert.True(t, cfg.Treasury.DryRun)             // default
				assert.Equal(t, "0 6 * * 1", cfg.Treasury.BurnSchedule)
				assert.Equal(t, "treasury-main", cfg.Treasury.WalletName)
				assert.Equal(t, "eip155:8453", cfg.Treasury.Chain)
			},
		},
		{
			name: "missing database host",
			configFile: `
treasury:
  burn_rate_bps: 500
`,
			expectError: true,
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadSchedulerConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		DBName:   "testdb",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		cfg.DSN())
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// Env vars carry the GCD_ prefix
	envFile := filepath.Join(envDir, ".env")
	envContent := `GCD_DEBUG=true
GCD_DATABASE_HOST=env-host
GCD_DATABASE_PORT=3306
GCD_DATABASE_USER=env-user
GCD_DATABASE_PASSWORD=env-pass
GCD_DATABASE_DBNAME=env-db
GCD_DATABASE_SSLMODE=require
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)

	// Config file carries different values to verify env vars override
	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
  user: file-user
  password: file-pass
  dbname: file-db
  sslmode: disable
`

	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "env-user", cfg.Database.User)
	assert.Equal(t, "env-pass", cfg.Database.Password)
	assert.Equal(t, "env-db", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
}
