// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the values of the configuration flags bound to a FlagSet.
// Values are read after the FlagSet has been parsed (cobra does that before
// running a command).
type Flags struct {
	serverAddress      NetAddress
	adapterAddress     string
	probeURL           string
	databaseDSN        string
	jsonConfigPath     string
	hashKey            string
	tokenFile          string
	tokenSignKey       string
	requestTimeout     time.Duration
	syncTimeout        time.Duration
	batchSize          int
	strategy           string
	strategies         map[string]string
	foregroundInterval time.Duration
	backgroundInterval time.Duration
	background         bool
	probeOnly          bool
	logFile            string
	logLevel           string
}

// BindFlags registers all configuration flags on fs.
//
// Flags:
//
//	-a/--address          server listen address in format [host]:[port]
//	-s/--server           sync server base URL
//	--probe-url           URL probed for reachability
//	-d/--dsn              SQLite database path
//	-c/--config           json file path with configs
//	--hash-key            request signing key
//	--token-file          bearer token file
//	--token-sign-key      device token signing key (server)
//	--request-timeout     server request timeout
//	--sync-timeout        pull/push call timeout
//	--batch-size          push/pull batch size
//	--strategy            default conflict strategy
//	--strategies          per-collection strategies (orders=merge,...)
//	--foreground-interval periodic sync interval
//	--background-interval background sync interval
//	--background          use the background interval
//	--probe-only          derive connectivity from probes
//	--log-file            log file path
//	--log-level           log level
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.VarP(&f.serverAddress, "address", "a", "Net address host:port")
	fs.StringVarP(&f.adapterAddress, "server", "s", "", "Sync server base URL")
	fs.StringVar(&f.probeURL, "probe-url", "", "Reachability probe URL")
	fs.StringVarP(&f.databaseDSN, "dsn", "d", "", "SQLite database path")
	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&f.hashKey, "hash-key", "", "Security hash key")
	fs.StringVar(&f.tokenFile, "token-file", "", "Bearer token file")
	fs.StringVar(&f.tokenSignKey, "token-sign-key", "", "Device token signing key")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&f.syncTimeout, "sync-timeout", 0, "Pull/push call timeout (e.g., 30s)")
	fs.IntVar(&f.batchSize, "batch-size", 0, "Sync batch size")
	fs.StringVar(&f.strategy, "strategy", "", "Default conflict resolution strategy")
	fs.StringToStringVar(&f.strategies, "strategies", nil, "Per-collection strategies (orders=merge,staff=server_wins)")
	fs.DurationVar(&f.foregroundInterval, "foreground-interval", 0, "Foreground sync interval")
	fs.DurationVar(&f.backgroundInterval, "background-interval", 0, "Background sync interval")
	fs.BoolVar(&f.background, "background", false, "Use the background sync interval")
	fs.BoolVar(&f.probeOnly, "probe-only", false, "Derive connectivity from probes only")
	fs.StringVar(&f.logFile, "log-file", "", "Log file path")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level")

	return f
}

func (f *Flags) config() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			HashKey:      f.hashKey,
			TokenFile:    f.tokenFile,
			TokenSignKey: f.tokenSignKey,
		},
		Storage: Storage{
			DB: DB{DSN: f.databaseDSN},
		},
		Server: Server{
			HTTPAddress:    f.serverAddress.String(),
			RequestTimeout: f.requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress: f.adapterAddress,
			ProbeURL:    f.probeURL,
			SyncTimeout: f.syncTimeout,
		},
		Workers: Workers{
			ForegroundInterval: f.foregroundInterval,
			BackgroundInterval: f.backgroundInterval,
			Background:         f.background,
		},
		Sync: Sync{
			BatchSize:       f.batchSize,
			DefaultStrategy: f.strategy,
			Strategies:      f.strategies,
		},
		Network: Network{
			ProbeOnly: f.probeOnly,
		},
		Log: Log{
			File:  f.logFile,
			Level: f.logLevel,
		},
		JSONFilePath: f.jsonConfigPath,
	}
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "address"
}
