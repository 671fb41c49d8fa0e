package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App      App      `yaml:"app"`
	Database Database `yaml:"database"`
	Allows   Allows   `yaml:"allows"`
	LLM      LLM      `yaml:"llm"`
	Log      Log      `yaml:"log"`
	Tracing  Tracing  `yaml:"tracing"`
	WhatsApp WhatsApp `yaml:"whatsapp"`
}

type App struct {
	Name string `yaml:"name"`
	Port string `yaml:"port"`
	Host string `yaml:"host"`
}

// Database selects the gorm dialector. Driver "postgres" uses the
// host/port fields, "sqlite" uses Path as the DSN.
type Database struct {
	Driver string `yaml:"driver"`
	Host   string `yaml:"host"`
	Port   string `yaml:"port"`
	User   string `yaml:"user"`
	Pass   string `yaml:"pass"`
	Name   string `yaml:"name"`
	Path   string `yaml:"path"`
	Seed   bool   `yaml:"seed"`
}

type Allows struct {
	Methods []string `yaml:"methods"`
	Origins []string `yaml:"origins"`
	Headers []string `yaml:"headers"`
}

// LLM holds the chat-completion endpoint credentials. The model and the
// prompts are fixed in pkg/llm and are not configurable.
type LLM struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Tracing struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate float64 `yaml:"sample_rate"`
}

type WhatsApp struct {
	Enabled   bool   `yaml:"enabled"`
	StorePath string `yaml:"store_path"`
	LogLevel  string `yaml:"log_level"`
}

const (
	DefaultLLMBaseURL     = "https://apps.abacus.ai/v1"
	DefaultWhatsAppStore  = "file:whatsapp_store.db?_pragma=foreign_keys(1)"
	DefaultSQLitePath     = "file:msgdesk.db?_foreign_keys=on"
	defaultConfigFileName = "./config.yaml"
)

func InitConfig() *Config {
	file_name, _ := filepath.Abs(defaultConfigFileName)
	return Load(file_name)
}

// Load reads the yaml file at path (a missing file is not an error),
// applies environment overrides and fills defaults.
func Load(path string) *Config {
	var configs Config
	if yaml_file, err := os.ReadFile(path); err == nil {
		yaml.Unmarshal(yaml_file, &configs)
	}

	applyEnv(&configs)
	applyDefaults(&configs)
	return &configs
}

func applyEnv(configs *Config) {
	// Override with environment variables if they exist (for Docker)
	if dbDriver := os.Getenv("DB_DRIVER"); dbDriver != "" {
		configs.Database.Driver = dbDriver
	}
	if dbHost := os.Getenv("DB_HOST"); dbHost != "" {
		configs.Database.Host = dbHost
	}
	if dbPort := os.Getenv("DB_PORT"); dbPort != "" {
		configs.Database.Port = dbPort
	}
	if dbUser := os.Getenv("DB_USER"); dbUser != "" {
		configs.Database.User = dbUser
	}
	if dbPassword := os.Getenv("DB_PASSWORD"); dbPassword != "" {
		configs.Database.Pass = dbPassword
	}
	if dbName := os.Getenv("DB_NAME"); dbName != "" {
		configs.Database.Name = dbName
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		configs.Database.Path = dbPath
	}
	if dbSeed := os.Getenv("DB_SEED"); dbSeed != "" {
		configs.Database.Seed, _ = strconv.ParseBool(dbSeed)
	}

	// Override app configuration with environment variables
	if appHost := os.Getenv("APP_HOST"); appHost != "" {
		configs.App.Host = appHost
	}
	if appPort := os.Getenv("APP_PORT"); appPort != "" {
		configs.App.Port = appPort
	}
	if appName := os.Getenv("APP_NAME"); appName != "" {
		configs.App.Name = appName
	}

	if apiKey := os.Getenv("ABACUSAI_API_KEY"); apiKey != "" {
		configs.LLM.APIKey = apiKey
	}
	if baseURL := os.Getenv("LLM_BASE_URL"); baseURL != "" {
		configs.LLM.BaseURL = baseURL
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		configs.Log.Level = level
	}
	if enabled := os.Getenv("WHATSAPP_ENABLED"); enabled != "" {
		configs.WhatsApp.Enabled, _ = strconv.ParseBool(enabled)
	}
}

func applyDefaults(configs *Config) {
	if configs.App.Name == "" {
		configs.App.Name = "msgdesk"
	}
	if configs.App.Port == "" {
		configs.App.Port = "8000"
	}
	if configs.Database.Driver == "" {
		configs.Database.Driver = "postgres"
	}
	if configs.Database.Driver == "sqlite" && configs.Database.Path == "" {
		configs.Database.Path = DefaultSQLitePath
	}
	if configs.LLM.BaseURL == "" {
		configs.LLM.BaseURL = DefaultLLMBaseURL
	}
	if configs.Log.Level == "" {
		configs.Log.Level = "info"
	}
	if configs.Log.Format == "" {
		configs.Log.Format = "json"
	}
	if configs.Tracing.SampleRate <= 0 {
		configs.Tracing.SampleRate = 1
	}
	if configs.WhatsApp.StorePath == "" {
		configs.WhatsApp.StorePath = DefaultWhatsAppStore
	}
	if configs.WhatsApp.LogLevel == "" {
		configs.WhatsApp.LogLevel = "INFO"
	}
}
