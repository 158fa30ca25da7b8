// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	APIBaseURL       string             `mapstructure:"api_base_url"`
	Currency         string             `mapstructure:"currency"`
	RequestTimeoutMS int                `mapstructure:"request_timeout_ms"`
	Retries          int                `mapstructure:"retries"`
	DebugLogging     bool               `mapstructure:"debug_logging"`
	LogFile          string             `mapstructure:"log_file"`
	ReturnRates      map[string]float64 `mapstructure:"return_rates"`
	SIPMinMonthly    float64            `mapstructure:"sip_min_monthly"`
	SIPMaxMonthly    float64            `mapstructure:"sip_max_monthly"`
	SIPStepMonthly   float64            `mapstructure:"sip_step_monthly"`
}

const (
	DefaultRequestTimeoutMS = 5000
	DefaultRetries          = 3
	DefaultCurrency         = "INR"
	DefaultLogFile          = "niveshak.log"
	DefaultSIPMinMonthly    = 500
	DefaultSIPMaxMonthly    = 100000
	DefaultSIPStepMonthly   = 500
)

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := map[string]interface{}{
		"currency":           DefaultCurrency,
		"request_timeout_ms": DefaultRequestTimeoutMS,
		"retries":            DefaultRetries,
		"log_file":           DefaultLogFile,
		"sip_min_monthly":    DefaultSIPMinMonthly,
		"sip_max_monthly":    DefaultSIPMaxMonthly,
		"sip_step_monthly":   DefaultSIPStepMonthly,
		// Trailing cumulative returns offered by the Return Calculator,
		// keyed by period label.
		"return_rates": map[string]float64{
			"6M": 6.0,
			"1Y": 12.5,
			"3Y": 38.0,
		},
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix("NIVESHAK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Viper lowercases map keys; period labels are uppercase everywhere else.
	rates := make(map[string]float64, len(cfg.ReturnRates))
	for period, rate := range cfg.ReturnRates {
		rates[strings.ToUpper(period)] = rate
	}
	cfg.ReturnRates = rates

	return &cfg, validateConfig(&cfg)
}

// Periods offered by the Return Calculator.
var returnPeriods = map[string]struct{}{
	"6M": {},
	"1Y": {},
	"3Y": {},
}

func validateConfig(cfg *Config) error {
	if cfg.APIBaseURL == "" {
		return errors.New("missing api_base_url in configuration")
	}
	if err := validateHTTPURL(cfg.APIBaseURL); err != nil {
		return err
	}
	if len(cfg.Currency) != 3 {
		return errors.New("currency must be a 3-letter ISO code")
	}
	if err := validateNumericParams(cfg); err != nil {
		return err
	}
	for period := range cfg.ReturnRates {
		if _, ok := returnPeriods[period]; !ok {
			return errors.New("unknown return_rates period: " + period)
		}
	}
	return nil
}

func validateNumericParams(cfg *Config) error {
	if cfg.RequestTimeoutMS <= 0 {
		return errors.New("invalid request_timeout_ms")
	}
	if cfg.Retries < 0 {
		return errors.New("invalid retries count")
	}
	if cfg.SIPMinMonthly <= 0 || cfg.SIPMaxMonthly <= cfg.SIPMinMonthly {
		return errors.New("invalid sip monthly bounds")
	}
	if cfg.SIPStepMonthly <= 0 {
		return errors.New("invalid sip_step_monthly")
	}
	return nil
}

func validateHTTPURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return errors.New("invalid api_base_url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("api_base_url must use HTTP or HTTPS")
	}
	return nil
}
