// Package config handles loading and parsing application configuration.
// It supports two sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// The parsed values are returned as a *Config pointer so the struct is
// shared by reference rather than copied everywhere.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
//
// env-required:"true" means the app refuses to start if that value is
// missing — better to crash at boot than to silently use a wrong default.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-required:"true"`

	// StudentDataPath is the XLSX workbook holding the student reference
	// table (scholar_No, student_name, class, section, parent details).
	// Loaded once at startup; a load failure is fatal.
	StudentDataPath string `yaml:"student_data_path" env:"STUDENT_DATA_PATH" env-required:"true"`

	// ExamOptionsPath is the XLSX workbook holding the exam price list
	// (exam_name, exam_fee).
	ExamOptionsPath string `yaml:"exam_options_path" env:"EXAM_OPTIONS_PATH" env-required:"true"`

	// StoragePath is the registrations CSV file — the system's only
	// writable durable state. The containing directory is created on
	// first append if it does not exist.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-required:"true"`

	// ReceiptPrefix is the leading token of every receipt number
	// (PREFIX-YEAR-SEQ).
	ReceiptPrefix string `yaml:"receipt_prefix" env:"RECEIPT_PREFIX" env-default:"DPS"`

	// Letterhead is the institution line printed at the top of every
	// receipt PDF.
	Letterhead string `yaml:"letterhead" env:"LETTERHEAD" env-default:"DELHI PUBLIC SCHOOL, INDORE"`

	// HTTPServer is embedded (not a pointer) so its fields are accessible
	// directly on Config: cfg.HTTPServer.Addr
	HTTPServer `yaml:"http_server"`
}

// HTTPServer holds settings specific to the HTTP server.
// Nested under http_server: in the YAML file.
type HTTPServer struct {
	// Addr is the TCP address the server listens on, e.g. "localhost:8082".
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-required:"true"`
}

// MustLoad reads, validates, and returns the application config.
//
// The name "MustLoad" follows a Go convention: functions prefixed with
// "Must" are allowed to panic/fatal on failure. Callers do not need to
// check a returned error — if this function returns, the config is valid.
func MustLoad() *Config {
	var configPath string

	// Source 1: environment variable. The standard way to pass config
	// to a container.
	configPath = os.Getenv("CONFIG_PATH")

	// Source 2: command-line flag, for running locally:
	//   go run ./cmd/examreg-api --config=config/local.yaml
	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	if configPath == "" {
		log.Fatal("config path is not set: use --config flag or CONFIG_PATH env var")
	}

	// Verify the file exists before trying to read it, so the error
	// message names the path rather than a cryptic open failure later.
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	// cleanenv.ReadConfig reads the YAML file, populates the struct,
	// applies env:"..." overrides, and enforces env-required constraints.
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return &cfg
}
