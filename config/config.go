package config

import (
	"flag"
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/mbolis/quick-forms/log"
)

type Config struct {
	Addr        string
	LogLevel    log.Level
	CORSOrigins []string
	SeedDemo    bool
}

// Parse reads configuration from the given command line arguments. Every
// flag default can also be set through a QF_* environment variable (a .env
// file in the working directory is honored), with the flag winning when both
// are present.
func Parse(args []string) (cfg Config, err error) {
	_ = godotenv.Load()

	fs := flag.NewFlagSet("quick-forms", flag.ContinueOnError)

	var host string
	fs.StringVar(&host, "host", envOr("QF_HOST", "0.0.0.0"), "listen host name")
	var port uint
	fs.UintVar(&port, "port", envOrUint("QF_PORT", 8080), "listen port number")
	var level string
	fs.StringVar(&level, "log-level", envOr("QF_LOG_LEVEL", "info"), "log level (trace|debug|info|warn|error)")
	var origins string
	fs.StringVar(&origins, "cors-origins", envOr("QF_CORS_ORIGINS", "*"), "comma-separated list of allowed CORS origins")
	fs.BoolVar(&cfg.SeedDemo, "seed-demo", envOrBool("QF_SEED_DEMO", true), "insert a sample form at startup if the store is empty")

	err = fs.Parse(args)
	if err != nil {
		return
	}

	var errs *multierror.Error
	if port > 65535 {
		errs = multierror.Append(errs, fmt.Errorf("invalid -port %d: out of range", port))
	}
	cfg.LogLevel, err = log.ParseLevel(level)
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("invalid -log-level %q", level))
	}

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	cfg.CORSOrigins = splitTrim(origins, ",")

	err = errs.ErrorOrNil()
	return
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrUint(key string, fallback uint) uint {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			return uint(n)
		}
	}
	return fallback
}

func envOrBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func splitTrim(s, sep string) []string {
	var out []string
	for _, v := range strings.Split(s, sep) {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}
