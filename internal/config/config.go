// Package config provides functionality for managing configuration options
// for the server and the client using command-line flags, a JSON config
// file, a .env file and environment variables.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the server.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string `json:"port"`

	// DatabaseDSN holds the database connection string for the application.
	DatabaseDSN string `json:"database_dsn"`

	// TLSCert and TLSKey enable HTTPS when both are set.
	TLSCert string `json:"tls_cert"`
	TLSKey  string `json:"tls_key"`

	// LogLevel is the zap level name.
	LogLevel string `json:"log_level"`

	// Config is the path to the Config file.
	Config string `json:"-"`
}

// ClientOptions holds the configuration values for the client shell.
type ClientOptions struct {
	// BaseURL is the API base address, e.g. http://127.0.0.1:5000.
	BaseURL string
	// CAFile verifies the server certificate when set.
	CAFile string
	// Timeout bounds every request.
	Timeout time.Duration
	// LogLevel is the zap level name.
	LogLevel string
	// ShowVersion prints build metadata and exits.
	ShowVersion bool
}

// Parse parses os.Args and the environment into server Options.
// It exits the process on invalid configuration.
func Parse() *Options {
	opts, err := Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return opts
}

// Load builds server Options from args. Precedence, lowest first: defaults,
// flags, the JSON config file, environment variables (a .env file in the
// working directory is loaded first and never overrides the real environment).
func Load(args []string) (*Options, error) {
	loadDotEnv()

	opts := &Options{}
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&opts.Port, "a", "localhost:5000", "run on ip:port server")
	fs.StringVar(&opts.DatabaseDSN, "d", "", "db address")
	fs.StringVar(&opts.TLSCert, "tls-cert", "", "path to server TLS certificate")
	fs.StringVar(&opts.TLSKey, "tls-key", "", "path to server TLS key")
	fs.StringVar(&opts.LogLevel, "log-level", "Info", "log level")
	fs.StringVar(&opts.Config, "config", "config.json", "path to config file")
	fs.StringVar(&opts.Config, "c", "config.json", "path to config file (shorthand)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		opts.Config = configPath
	}

	if opts.Config != "" {
		if _, err := os.Stat(opts.Config); err == nil {
			data, err := os.ReadFile(opts.Config)
			if err != nil {
				return nil, fmt.Errorf("error while reading config file: %w", err)
			}
			if err := json.Unmarshal(data, opts); err != nil {
				return nil, fmt.Errorf("error while parsing config file: %w", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		opts.Port = serverAddress
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		opts.DatabaseDSN = dsn
	}

	if opts.DatabaseDSN == "" {
		return nil, errors.New("database DSN is required (-d or DATABASE_DSN)")
	}
	if (opts.TLSCert == "") != (opts.TLSKey == "") {
		return nil, errors.New("tls-cert and tls-key must be set together")
	}
	return opts, nil
}

// LoadClient builds ClientOptions from args. PAQUETES_URL overrides -url.
func LoadClient(args []string) (*ClientOptions, error) {
	loadDotEnv()

	opts := &ClientOptions{}
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&opts.BaseURL, "url", "http://127.0.0.1:5000", "server base URL")
	fs.StringVar(&opts.CAFile, "ca", "", "path to CA cert for HTTPS servers")
	fs.DurationVar(&opts.Timeout, "timeout", 10*time.Second, "request timeout")
	fs.StringVar(&opts.LogLevel, "log-level", "Warn", "log level")
	fs.BoolVar(&opts.ShowVersion, "version", false, "show build version and date")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if baseURL := os.Getenv("PAQUETES_URL"); baseURL != "" {
		opts.BaseURL = baseURL
	}
	if opts.Timeout <= 0 {
		return nil, errors.New("timeout must be positive")
	}
	return opts, nil
}

func loadDotEnv() {
	// A missing .env is the normal case.
	_ = godotenv.Load()
}
