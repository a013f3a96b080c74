package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/usermanager/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-g string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN; empty keeps users in memory
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-l string   log level (debug, info, warn, error)
//	-L string   log backend (slog, zap)
//	-o string   comma separated CORS origins
//	-u string   bootstrap admin login
//	-p string   bootstrap admin password
//
// os.Args is filtered with flagx.FilterArgs first, so the -c/-config flag
// and anything unknown are left to other parsers.
func parseFlags(config *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-d", "-s", "-t", "-l", "-L", "-o", "-u", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogBackend, "L", config.LogBackend, "log backend: slog or zap")
	origins := fs.String("o", strings.Join(config.CORSAllowedOrigins, ","), "allowed CORS origins, comma separated")
	fs.StringVar(&config.AdminLogin, "u", config.AdminLogin, "bootstrap admin login")
	fs.StringVar(&config.AdminPassword, "p", config.AdminPassword, "bootstrap admin password")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
		case "o":
			config.CORSAllowedOrigins = splitList(*origins)
		}
	})

	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
