// Package config resolves launcher settings from the environment. A .env
// file next to the working directory is honoured, then plain environment
// variables; everything has a sane default so the commands run with zero
// setup.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// DefaultPort is where the launchers try to bind first.
	DefaultPort = 8000

	// DefaultHost is the interface served and probed.
	DefaultHost = "localhost"

	// MaxPortAttempts bounds the linear free-port search.
	MaxPortAttempts = 10

	// DefaultBrowserDelay is how long the browser task waits before
	// opening the tab. A heuristic, not a readiness signal.
	DefaultBrowserDelay = time.Second
)

// Server is the resolved launcher configuration. Built once at startup and
// passed by value; the running server never mutates it.
type Server struct {
	Host         string
	Port         int
	Root         string
	BrowserDelay time.Duration
}

// Addr returns the host:port pair to bind or probe.
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// URL returns the address a browser can open.
func (s Server) URL() string {
	return fmt.Sprintf("http://%s:%d", s.Host, s.Port)
}

// Load reads HOST, PORT and BROWSER_DELAY_MS from a .env file or the
// environment. Out-of-range values fall back to the defaults.
func Load() Server {
	// Missing .env is the normal case.
	_ = godotenv.Overload(".env")

	v := viper.New()
	v.SetDefault("host", DefaultHost)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("browser_delay_ms", int(DefaultBrowserDelay.Milliseconds()))
	v.AutomaticEnv()

	cfg := Server{
		Host:         v.GetString("host"),
		Port:         v.GetInt("port"),
		Root:         ResolveRoot(),
		BrowserDelay: time.Duration(v.GetInt("browser_delay_ms")) * time.Millisecond,
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		cfg.Port = DefaultPort
	}
	if cfg.BrowserDelay < 0 {
		cfg.BrowserDelay = DefaultBrowserDelay
	}
	return cfg
}

// ResolveRoot returns the directory to serve: the directory containing the
// executable, falling back to the working directory when the executable
// path cannot be resolved (go run, symlink races).
func ResolveRoot() string {
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			return filepath.Dir(resolved)
		}
		return filepath.Dir(exe)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
