// =================================
// File: internal/config/config_test.go
// =================================
package config

import (
	"os"
	"path/filepath"
	"testing"
)

var validConfigJSON = `{
    "api_base_url": "https://api.niveshak.example",
    "currency": "INR",
    "request_timeout_ms": 5000,
    "retries": 3,
    "debug_logging": true,
    "return_rates": {"6M": 6.0, "1Y": 12.5, "3Y": 38.0},
    "sip_min_monthly": 500,
    "sip_max_monthly": 100000,
    "sip_step_monthly": 500
}`

var invalidConfigJSON = `{
    "api_base_url": "",
    "currency": "RUPEES"
}`

func setupTestConfig(t *testing.T, content string) string {
	t.Helper()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return configPath
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		check   func(*Config) bool
	}{
		{
			name:    "Valid config",
			content: validConfigJSON,
			wantErr: false,
			check: func(cfg *Config) bool {
				return cfg.APIBaseURL == "https://api.niveshak.example" &&
					cfg.Currency == "INR" &&
					cfg.RequestTimeoutMS == 5000 &&
					cfg.ReturnRates["1Y"] == 12.5
			},
		},
		{
			name:    "Defaults fill the gaps",
			content: `{"api_base_url": "https://api.niveshak.example"}`,
			wantErr: false,
			check: func(cfg *Config) bool {
				return cfg.Currency == DefaultCurrency &&
					cfg.Retries == DefaultRetries &&
					cfg.SIPMaxMonthly == DefaultSIPMaxMonthly &&
					cfg.ReturnRates["6M"] == 6.0
			},
		},
		{
			name:    "Invalid config - empty required fields",
			content: invalidConfigJSON,
			wantErr: true,
			check:   nil,
		},
		{
			name:    "Invalid JSON syntax",
			content: "{invalid json",
			wantErr: true,
			check:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := setupTestConfig(t, tt.content)

			cfg, err := LoadConfig(configPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadConfig() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && tt.check != nil {
				if !tt.check(cfg) {
					t.Error("LoadConfig() returned invalid configuration")
				}
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			APIBaseURL:       "https://api.niveshak.example",
			Currency:         "INR",
			RequestTimeoutMS: 5000,
			Retries:          3,
			ReturnRates:      map[string]float64{"1Y": 12.5},
			SIPMinMonthly:    500,
			SIPMaxMonthly:    100000,
			SIPStepMonthly:   500,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "Valid configuration", mutate: func(*Config) {}, wantErr: false},
		{name: "Missing base URL", mutate: func(c *Config) { c.APIBaseURL = "" }, wantErr: true},
		{name: "Non-HTTP base URL", mutate: func(c *Config) { c.APIBaseURL = "ftp://x.example" }, wantErr: true},
		{name: "Bad currency code", mutate: func(c *Config) { c.Currency = "RUPEES" }, wantErr: true},
		{name: "Zero timeout", mutate: func(c *Config) { c.RequestTimeoutMS = 0 }, wantErr: true},
		{name: "Negative retries", mutate: func(c *Config) { c.Retries = -1 }, wantErr: true},
		{name: "Inverted SIP bounds", mutate: func(c *Config) { c.SIPMaxMonthly = 100 }, wantErr: true},
		{name: "Unknown return period", mutate: func(c *Config) { c.ReturnRates["2W"] = 3 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			if err := validateConfig(cfg); (err != nil) != tt.wantErr {
				t.Errorf("validateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
