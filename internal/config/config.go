package config

import "fmt"

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Storage     StorageConfig     `yaml:"storage"`
	Performance PerformanceConfig `yaml:"performance"`
}

type ServerConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	UploadedBy string `yaml:"uploaded_by"`
}

type PathsConfig struct {
	Raw       string `yaml:"raw"`
	Inbox     string `yaml:"inbox"`
	Processed string `yaml:"processed"`
	Summaries string `yaml:"summaries"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type GeminiConfig struct {
	Model             string   `yaml:"model"`
	APIKeys           []string `yaml:"api_keys"`
	Retries           int      `yaml:"retries"`
	RetryDelaySeconds int      `yaml:"retry_delay_seconds"`
	MinSectionWords   int      `yaml:"min_section_words"`
	DocxOutput        bool     `yaml:"docx_output"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

type PerformanceConfig struct {
	MaxConcurrent int  `yaml:"max_concurrent"`
	WatchInbox    bool `yaml:"watch_inbox"`
}

func (c *Config) Validate() error {
	if c.Paths.Raw == "" {
		return fmt.Errorf("paths.raw is required")
	}
	if c.Paths.Summaries == "" {
		return fmt.Errorf("paths.summaries is required")
	}
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required (or set GEMINI_API_KEYS)")
	}

	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	// The watcher must not observe the HTTP upload directory, or every
	// upload would be processed twice.
	if c.Paths.Inbox == c.Paths.Raw {
		return fmt.Errorf("paths.inbox must differ from paths.raw")
	}
	if c.Paths.Processed == "" {
		c.Paths.Processed = "data/processed"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.UploadedBy == "" {
		c.Server.UploadedBy = "anonymous"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.Retries == 0 {
		c.Gemini.Retries = 3
	}
	if c.Gemini.RetryDelaySeconds == 0 {
		c.Gemini.RetryDelaySeconds = 5
	}
	if c.Gemini.MinSectionWords == 0 {
		c.Gemini.MinSectionWords = 10
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "data/db"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
