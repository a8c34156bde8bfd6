package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultAPIBaseURL is the ScanBack backend API endpoint.
	DefaultAPIBaseURL = "https://api.scanback.co.za/api"

	// DefaultRateLimit is the default requests per minute per IP address.
	DefaultRateLimit = 100

	// DefaultCountry is the pre-selected phone country for new activations.
	DefaultCountry = "ZA"
)

// File holds the optional TOML configuration. Flag and environment values
// take precedence over file values; the file only fills in what they leave
// unset.
type File struct {
	Port      string `toml:"port"`
	APIURL    string `toml:"api_url"`
	RateLimit int    `toml:"rate_limit"`
	LogLevel  string `toml:"log_level"`
}

// LoadFile parses a TOML config file. A missing path is not an error; an
// unreadable or malformed file is.
func LoadFile(path string) (*File, error) {
	if path == "" {
		return &File{}, nil
	}
	var f File
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &File{}, nil
	}
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &f, nil
}
