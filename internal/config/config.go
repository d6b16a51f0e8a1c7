package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config collects every knob the console needs. The three service URLs
// point at independent backends; everything else is local behaviour.
type Config struct {
	// Backend services
	UserServiceURL    string `env:"USER_SERVICE_URL"`
	ContentServiceURL string `env:"CONTENT_SERVICE_URL"`
	UploadServiceURL  string `env:"UPLOAD_SERVICE_URL"`

	// ARLinkBase is the public base URL embedded into generated QR codes
	// ({base}/ar/{ref_id}).
	ARLinkBase string `env:"AR_LINK_BASE"`

	// Local tooling
	FFProbePath string `env:"FFPROBE_PATH"`
	StateDir    string `env:"MRC_STATE_DIR"`

	Version bool `env:"-"` // show version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags only take effect when the env variables are not set
	flag.StringVar(&cfg.UserServiceURL, "user-url", cfg.UserServiceURL, "base URL of the user-management service")
	flag.StringVar(&cfg.ContentServiceURL, "content-url", cfg.ContentServiceURL, "base URL of the MR content service")
	flag.StringVar(&cfg.UploadServiceURL, "upload-url", cfg.UploadServiceURL, "base URL of the asset-upload service")
	flag.StringVar(&cfg.ARLinkBase, "ar-link-base", cfg.ARLinkBase, "public base URL encoded into QR codes")
	flag.StringVar(&cfg.FFProbePath, "ffprobe", cfg.FFProbePath, "path to the ffprobe binary")
	flag.StringVar(&cfg.StateDir, "state-dir", cfg.StateDir, "directory for session, settings and cache files")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show version and exit")

	flag.Parse()

	// Defaults
	if cfg.UserServiceURL == "" {
		cfg.UserServiceURL = "http://127.0.0.1:8080"
	}
	if cfg.ContentServiceURL == "" {
		cfg.ContentServiceURL = "http://127.0.0.1:8083"
	}
	if cfg.UploadServiceURL == "" {
		cfg.UploadServiceURL = "http://127.0.0.1:8082"
	}
	if cfg.ARLinkBase == "" {
		cfg.ARLinkBase = "https://e.oms.com"
	}
	cfg.ARLinkBase = strings.TrimRight(cfg.ARLinkBase, "/")
	if cfg.FFProbePath == "" {
		cfg.FFProbePath = "ffprobe"
	}
	if cfg.StateDir == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.StateDir = filepath.Join(dir, "mrconsole")
		}
	}

	return cfg
}
