package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Events   EventsConfig   `yaml:"events"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// AnalysisConfig controls the dream-analysis pipeline.
type AnalysisConfig struct {
	// Engine selects the analysis backend: "gemini" calls the model
	// provider with ranked fallback; "offline" uses only the
	// deterministic generator (for deployments without provider access).
	Engine string `yaml:"engine"`

	// CandidateModels are the ranked model identifiers, most economical
	// first. Each is attempted at most once per request.
	CandidateModels []string `yaml:"candidate_models"`

	// AttemptTimeoutSeconds bounds each model attempt so that fallback
	// across N candidates cannot grow into an unbounded total wait.
	// 0 or less means 30.
	AttemptTimeoutSeconds int `yaml:"attempt_timeout_seconds"`

	Quota QuotaConfig `yaml:"quota"`
}

// QuotaConfig defines rate/daily limits for analysis LLM calls.
// Values of 0 or less mean no limit in that direction.
type QuotaConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	RequestsPerDay    int `yaml:"requests_per_day"`
}

// EventsConfig names the Kafka topics for domain events. Brokers come
// from the KAFKA_BROKERS environment variable; when it is empty the
// event bus degrades to a no-op publisher.
type EventsConfig struct {
	DreamsTopic   string `yaml:"dreams_topic"`
	AnalysesTopic string `yaml:"analyses_topic"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
