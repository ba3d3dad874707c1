package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
		MaxBodyBytes int64         `yaml:"max_body_bytes" default:"1048576"`
	} `yaml:"server"`

	LLM struct {
		Provider    string        `yaml:"provider" default:"claude"`
		APIKey      string        `yaml:"api_key"`
		Model       string        `yaml:"model" default:"claude-sonnet-4-20250514"`
		MaxTokens   int           `yaml:"max_tokens" default:"2000"`
		Temperature float32       `yaml:"temperature" default:"0.7"`
		Timeout     time.Duration `yaml:"timeout" default:"120s"`
	} `yaml:"llm"`

	Advisor struct {
		// RequestTimeout bounds a single advice operation, including the
		// three sequential model calls of the comprehensive path.
		RequestTimeout time.Duration `yaml:"request_timeout" default:"300s"`
		RateLimit      float64       `yaml:"rate_limit" default:"10"` // requests per second per client
		RateBurst      int           `yaml:"rate_burst" default:"20"`
	} `yaml:"advisor"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`

		Adapters []AdapterConfig `yaml:"adapters"`
	} `yaml:"logging"`
}

// AdapterConfig configures a single logging output adapter
type AdapterConfig struct {
	Name    string                 `yaml:"name"`
	Type    string                 `yaml:"type"`
	Enabled bool                   `yaml:"enabled"`
	Options map[string]interface{} `yaml:"options"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second
	config.Server.MaxBodyBytes = 1 << 20

	config.LLM.Provider = "claude"
	config.LLM.Model = "claude-sonnet-4-20250514"
	config.LLM.MaxTokens = 2000
	config.LLM.Temperature = 0.7
	config.LLM.Timeout = 120 * time.Second

	config.Advisor.RequestTimeout = 300 * time.Second
	config.Advisor.RateLimit = 10
	config.Advisor.RateBurst = 20

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		c.LLM.Provider = provider
	}

	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		c.LLM.APIKey = apiKey
	}

	// Provider-specific key names kept for compatibility with existing
	// deployments; LLM_API_KEY wins when both are set.
	if c.LLM.APIKey == "" {
		if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
			c.LLM.APIKey = apiKey
		}
	}
	if c.LLM.APIKey == "" {
		if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
			c.LLM.APIKey = apiKey
		}
	}

	if model := os.Getenv("LLM_MODEL"); model != "" {
		c.LLM.Model = model
	}

	if maxTokens := os.Getenv("LLM_MAX_TOKENS"); maxTokens != "" {
		if tokens, err := strconv.Atoi(maxTokens); err == nil {
			c.LLM.MaxTokens = tokens
		}
	}

	if timeout := os.Getenv("LLM_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.LLM.Timeout = d
		}
	}

	if requestTimeout := os.Getenv("ADVISOR_REQUEST_TIMEOUT"); requestTimeout != "" {
		if d, err := time.ParseDuration(requestTimeout); err == nil {
			c.Advisor.RequestTimeout = d
		}
	}

	if rateLimit := os.Getenv("ADVISOR_RATE_LIMIT"); rateLimit != "" {
		if limit, err := strconv.ParseFloat(rateLimit, 64); err == nil {
			c.Advisor.RateLimit = limit
		}
	}

	if rateBurst := os.Getenv("ADVISOR_RATE_BURST"); rateBurst != "" {
		if burst, err := strconv.Atoi(rateBurst); err == nil {
			c.Advisor.RateBurst = burst
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		c.Logging.Adapters = append(c.Logging.Adapters, AdapterConfig{
			Name:    "env_file",
			Type:    "file",
			Enabled: true,
			Options: map[string]interface{}{"file_path": logFile},
		})
	}
}
