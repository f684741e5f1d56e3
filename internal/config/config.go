package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates every setting of the service.
type Config struct {
	Server    ServerConfig
	Chat      ChatConfig
	Storage   StorageConfig
	Messaging MessagingConfig
	Log       LogConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	chat, err := loadChatConfig()
	if err != nil {
		return nil, err
	}

	logCfg, err := loadLogConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: server,
		Chat:   chat,
		Storage: StorageConfig{
			ProfileDBPath: getEnvOrDefault("PROFILE_DB_PATH", "./data/groovehire.db"),
		},
		Messaging: MessagingConfig{
			WhatsAppNumber: getEnvOrDefault("WHATSAPP_NUMBER", "14155238886"),
			Greeting:       getEnvOrDefault("WHATSAPP_GREETING", DefaultWhatsAppGreeting),
		},
		Log: logCfg,
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	var addr string
	switch {
	case strings.Contains(port, ":"):
		// ":8080" and "127.0.0.1:8080" are taken as-is.
		addr = port
	case strings.Contains(port, " "):
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	default:
		addr = ":" + port
	}

	return ServerConfig{
		Addr:           addr,
		AllowedOrigins: parseListEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}, nil
}

// ChatConfig tunes the scripted conversation engine.
type ChatConfig struct {
	ReplyDelay time.Duration
	RulesFile  string
}

func loadChatConfig() (ChatConfig, error) {
	delay := 1500 * time.Millisecond
	delayMS, err := parseOptionalIntEnv("CHAT_REPLY_DELAY_MS")
	if err != nil {
		return ChatConfig{}, err
	}
	if delayMS != nil {
		if *delayMS < 0 {
			return ChatConfig{}, fmt.Errorf("invalid CHAT_REPLY_DELAY_MS value %d: must be >= 0", *delayMS)
		}
		delay = time.Duration(*delayMS) * time.Millisecond
	}

	return ChatConfig{
		ReplyDelay: delay,
		RulesFile:  strings.TrimSpace(os.Getenv("CHAT_RULES_FILE")),
	}, nil
}

// StorageConfig locates the local profile database.
type StorageConfig struct {
	ProfileDBPath string
}

// DefaultWhatsAppGreeting pre-fills the deep link when the caller sends none.
const DefaultWhatsAppGreeting = "Hi! I'd like to book a service through GrooveHire. Can you help me find a service provider?"

// MessagingConfig feeds the external messaging deep link.
type MessagingConfig struct {
	WhatsAppNumber string
	Greeting       string
}

// LogConfig controls zerolog output.
type LogConfig struct {
	Level  string
	Format string
	Caller bool
}

func loadLogConfig() (LogConfig, error) {
	format := strings.ToLower(getEnvOrDefault("LOG_FORMAT", "auto"))
	switch format {
	case "auto", "console", "json":
	default:
		return LogConfig{}, fmt.Errorf("invalid LOG_FORMAT value %q: want auto, console or json", format)
	}

	caller, err := parseBoolEnv("LOG_CALLER", false)
	if err != nil {
		return LogConfig{}, err
	}

	return LogConfig{
		Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
		Format: format,
		Caller: caller,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseListEnv(key string, defaultValue []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
