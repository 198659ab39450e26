package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the settings flags of command name from args and returns
// the remaining positional arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json settings file path
//	-env-file dotenv file path
//	-log-level log level (debug, info, warn, error)
//	-root project root that content globs are expanded against
//	-modules package modules directory searched for plugins
//	-strict require plugins to be installed in the modules directory
//	-remote remote twconf server address
//	-request-timeout request timeout (e.g., "10s", "1m")
//	-cache-size LRU cache size
//	-watch-interval watch polling interval (e.g., "2s")
//	-format output format of the print command (json, yaml, toml)
func ParseFlags(name string, args []string) (*StructuredConfig, []string, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var envFilePath string
	var logLevel string
	var projectRoot string
	var modulesDir string
	var strictModules bool
	var remoteAddress string
	var requestTimeout time.Duration
	var cacheSize int
	var watchInterval time.Duration
	var outputFormat string

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON settings file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON settings file path (alias)")
	fs.StringVar(&envFilePath, "env-file", "", "Dotenv file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&projectRoot, "root", "", "Project root")
	fs.StringVar(&modulesDir, "modules", "", "Package modules directory")
	fs.BoolVar(&strictModules, "strict", false, "Require plugins to be installed")
	fs.StringVar(&remoteAddress, "remote", "", "Remote twconf server address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	fs.IntVar(&cacheSize, "cache-size", 0, "LRU cache size")
	fs.DurationVar(&watchInterval, "watch-interval", 0, "Watch polling interval (e.g., 2s)")
	fs.StringVar(&outputFormat, "format", "", "Output format: json, yaml or toml")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel:      logLevel,
			ProjectRoot:   projectRoot,
			ModulesDir:    modulesDir,
			StrictModules: strictModules,
			OutputFormat:  outputFormat,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: requestTimeout,
		},
		Cache:        Cache{Size: cacheSize},
		Workers:      Workers{WatchInterval: watchInterval},
		JSONFilePath: jsonConfigPath,
		EnvFilePath:  envFilePath,
	}, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
