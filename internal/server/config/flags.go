package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/motorpool/internal/flagx"
)

// parseFlags overlays command-line flags onto config.
//
//	-a string    HTTP bind address
//	-g string    gRPC health bind address
//	-d string    database DSN, or "memory"
//	-s string    JWT HMAC secret
//	-t duration  access token validity
//	-l string    log format: slog or zap
//	-r uint      database connect retries
//	-m duration  maximum delay between connect retries
//	-w duration  graceful shutdown timeout
//
// The config file flags are filtered out beforehand so they do not trip
// the parser.
func parseFlags(args []string, config *Config) error {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-d", "-s", "-t", "-l", "-r", "-m", "-w"})

	fs := flag.NewFlagSet("motorpool", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC health address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.AccessTokenValidityDuration, "t", config.AccessTokenValidityDuration, "access token validity")
	fs.StringVar(&config.LogFormat, "l", config.LogFormat, "log format")
	fs.Uint64Var(&config.DBConnectRetries, "r", config.DBConnectRetries, "database connect retries")
	fs.DurationVar(&config.DBConnectMaxDelay, "m", config.DBConnectMaxDelay, "max delay between connect retries")
	fs.DurationVar(&config.ShutdownTimeout, "w", config.ShutdownTimeout, "shutdown timeout")

	return fs.Parse(args)
}
