package main

import (
	"encoding/json"
	"net"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

const defaultPort = 8000

type serverConfig struct {
	Host    string `json:"host,omitempty"`
	Port    *int   `json:"port,omitempty"`
	RootDir string `json:"root_dir,omitempty"`
}

// loadConfig reads the config file at confPath, or builds a default
// configuration when confPath is empty.
func loadConfig(confPath string) (*serverConfig, error) {
	cfg := serverConfig{}
	if confPath != "" {
		f, err := os.Open(confPath)
		if err != nil {
			return nil, errors.Wrap(err, "unable to open config file")
		}
		defer f.Close()
		if err = json.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, errors.Wrap(err, "unable to parse config file")
		}
	}

	if cfg.Host == "" {
		cfg.Host = "0.0.0.0"
	}
	if cfg.Port == nil {
		port := defaultPort
		cfg.Port = &port
	}
	if *cfg.Port < 1 || *cfg.Port > 65535 {
		return nil, errors.Errorf("invalid port (%d); should be between 1 and 65535", *cfg.Port)
	}
	if cfg.RootDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "unable to determine working directory")
		}
		cfg.RootDir = wd
	}

	return &cfg, nil
}

// applyOverrides applies the -addr and -root command line flags on top of the
// config file values. Empty strings leave the config untouched.
func (c *serverConfig) applyOverrides(addr, rootDir string) error {
	if addr != "" {
		host, portStr, err := net.SplitHostPort(addr)
		if err != nil {
			return errors.Wrapf(err, "invalid listen address %q", addr)
		}
		port, err := strconv.Atoi(portStr)
		if err != nil || port < 1 || port > 65535 {
			return errors.Errorf("invalid port in listen address %q", addr)
		}
		c.Host = host
		c.Port = &port
	}
	if rootDir != "" {
		c.RootDir = rootDir
	}
	return nil
}

func (c *serverConfig) listenAddr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(*c.Port))
}
