// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
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

// fileList collects repeated or comma separated file paths.
// It implements the flag.Value interface.
type fileList []string

func (f *fileList) String() string {
	return strings.Join(*f, ",")
}

func (f *fileList) Set(s string) error {
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			*f = append(*f, p)
		}
	}
	return nil
}

// ParseFlags parses configuration flags from args (without the program
// name).
//
// Flags:
//
//	-s settings file path; repeatable or comma separated
//	-no-env-settings disable EUREKA_* env overrides
//	-a HTTP server address in format [host]:[port]
//	-grpc-address gRPC server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-token-timeout token request timeout (e.g., "5s")
//	-version application version
//	-refresh-interval discovery options refresh interval (e.g., "1m")
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var settingsFiles fileList
	var disableEnvSettings bool
	var jsonConfigPath string
	var requestTimeout time.Duration
	var tokenTimeout time.Duration
	var version string
	var refreshInterval time.Duration

	fs := flag.NewFlagSet("discovery", flag.ContinueOnError)
	fs.Var(&settingsFiles, "s", "Settings file path (repeatable)")
	fs.BoolVar(&disableEnvSettings, "no-env-settings", false, "Disable EUREKA_* env overrides")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&tokenTimeout, "token-timeout", 0, "Token request timeout (e.g., 5s)")
	fs.StringVar(&version, "version", "", "Application version")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Discovery options refresh interval (e.g., 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SettingsFiles:      settingsFiles,
			DisableEnvSettings: disableEnvSettings,
			Version:            version,
			RefreshInterval:    refreshInterval,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: tokenTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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
// It validates the port range, checks IP correctness unless host is empty or
// "localhost", and returns an error if the format or values are invalid.
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
