package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type OTPConfig struct {
	TTL    string `yaml:"ttl"`
	Length int    `yaml:"length"`
}

type RateLimitConfig struct {
	Limit  int    `yaml:"limit"`
	Window string `yaml:"window"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type NewsConfig struct {
	Timeout string `yaml:"timeout"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type ConfigFile struct {
	App       AppConfig       `yaml:"app"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	JWT       JWTConfig       `yaml:"jwt"`
	OTP       OTPConfig       `yaml:"otp"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	News      NewsConfig      `yaml:"news"`
	Twilio    TwilioConfig    `yaml:"twilio"`
}

type Config struct {
	Port            string
	GinMode         string
	DSN             string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	JWTSecret       string
	JWTIssuer       string
	TokenTTL        time.Duration
	OTP_TTL         time.Duration
	OTP_Length      int
	RateLimit       int
	RateLimitWindow time.Duration
	GeminiAPIKey    string
	GeminiModel     string
	NewsTimeout     time.Duration
	TwilioSID       string
	TwilioToken     string
	TwilioFrom      string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml (overridable via CONFIG_PATH) and applies
// environment overrides for secrets and deploy-time settings. A missing
// file is not an error: every field carries a default.
func Load() (*Config, error) {
	path := env("CONFIG_PATH", "config/config.yml")

	configFile := &ConfigFile{}
	if bytes, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(bytes, configFile); err != nil {
			return nil, fmt.Errorf("could not parse config yaml at %s: %w", path, err)
		}
	}

	tokenTTL, err := duration(configFile.JWT.TTL, 60*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT TTL: %w", err)
	}
	otpTTL, err := duration(configFile.OTP.TTL, 5*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}
	rateWindow, err := duration(configFile.RateLimit.Window, 60*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit window: %w", err)
	}
	newsTimeout, err := duration(configFile.News.Timeout, 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid news timeout: %w", err)
	}

	port := configFile.App.Port
	if p := os.Getenv("PORT"); p != "" {
		port, _ = strconv.Atoi(p)
	}
	if port == 0 {
		port = 8000
	}

	rateLimit := configFile.RateLimit.Limit
	if rateLimit == 0 {
		rateLimit = 10
	}
	otpLength := configFile.OTP.Length
	if otpLength == 0 {
		otpLength = 6
	}

	return &Config{
		Port:            strconv.Itoa(port),
		GinMode:         configFile.App.GinMode,
		DSN:             env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:       env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:   env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:         configFile.Redis.DB,
		JWTSecret:       env("SECRET_KEY", defaultString(configFile.JWT.Secret, "change_this")),
		JWTIssuer:       defaultString(configFile.JWT.Issuer, "tradeops"),
		TokenTTL:        tokenTTL,
		OTP_TTL:         otpTTL,
		OTP_Length:      otpLength,
		RateLimit:       rateLimit,
		RateLimitWindow: rateWindow,
		GeminiAPIKey:    env("GEMINI_API_KEY", configFile.Gemini.APIKey),
		GeminiModel:     defaultString(configFile.Gemini.Model, "gemini-2.5-flash"),
		NewsTimeout:     newsTimeout,
		TwilioSID:       env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:     env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:      env("TWILIO_FROM_NUMBER", configFile.Twilio.FromNumber),
	}, nil
}

func duration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
