/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"os"
	"path/filepath"

	"github.com/openportal/gate/internal/system/log"

	yaml "gopkg.in/yaml.v3"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	HTTPOnly bool   `yaml:"http_only"`
}

// GateClientConfig holds the client-facing configuration details.
type GateClientConfig struct {
	BaseURL string `yaml:"base_url"`
}

// SecurityConfig holds the security configuration details.
type SecurityConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// CORSConfig holds the allowed origins for cross-origin requests.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// NotificationConfig holds the deferred notification cookie configuration details.
type NotificationConfig struct {
	CookieName string `yaml:"cookie_name"`
	SigningKey string `yaml:"signing_key"`
	MaxAge     int    `yaml:"max_age"`
}

// SessionConfig holds the session state configuration details.
type SessionConfig struct {
	CookieName     string `yaml:"cookie_name"`
	ValidityPeriod int64  `yaml:"validity_period"`
}

// Authenticator holds the configuration details for an individual authenticator.
type Authenticator struct {
	Type   string         `yaml:"type"`
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params"`
}

// AuthenticatorConfig holds the configuration details for the authenticators.
type AuthenticatorConfig struct {
	DefaultAuthenticator string          `yaml:"default"`
	Authenticators       []Authenticator `yaml:"authenticators"`
}

// LoginConfig holds the login entry point configuration details.
type LoginConfig struct {
	EntryPath string `yaml:"entry_path"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type     string `yaml:"type"`
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	Path     string `yaml:"path"`
	Options  string `yaml:"options"`
}

// DatabaseConfig holds the different database configuration details.
type DatabaseConfig struct {
	Identity DataSource `yaml:"identity"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	GateClient    GateClientConfig    `yaml:"gate_client"`
	Security      SecurityConfig      `yaml:"security"`
	CORS          CORSConfig          `yaml:"cors"`
	Notification  NotificationConfig  `yaml:"notification"`
	Session       SessionConfig       `yaml:"session"`
	Authenticator AuthenticatorConfig `yaml:"authenticator"`
	Login         LoginConfig         `yaml:"login"`
	Database      DatabaseConfig      `yaml:"database"`
}

// LoadConfig loads the configurations from the specified deployment file.
func LoadConfig(path string) (*Config, error) {
	logger := log.GetLogger()

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		logger.Error("Failed to read the config file", log.String("path", cleanPath), log.Error(err))
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("Failed to parse the config file", log.String("path", cleanPath), log.Error(err))
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills the optional configuration values that were left unset.
func applyDefaults(cfg *Config) {
	if cfg.Notification.CookieName == "" {
		cfg.Notification.CookieName = "gate_messages"
	}
	if cfg.Notification.MaxAge <= 0 {
		// One navigation hop. The cookie only needs to survive a single redirect.
		cfg.Notification.MaxAge = 60
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "gate_sid"
	}
	if cfg.Session.ValidityPeriod <= 0 {
		cfg.Session.ValidityPeriod = 600
	}
	if cfg.Login.EntryPath == "" {
		cfg.Login.EntryPath = "/login"
	}
}
