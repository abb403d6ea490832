// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the command-line overrides accepted by the serve command.
// Zero values mean "not given" and leave the environment value in place.
type Flags struct {
	Address     NetAddress
	Environment string
	EnvFile     string
}

// BindFlags registers the configuration flags on fs and returns the struct
// they are parsed into.
//
// Flags:
//
//	-a/--address     server address in format [host]:[port]
//	-e/--environment deployment environment (local, staging, production)
//	--env-file       path of the .env override file
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := new(Flags)

	fs.VarP(&f.Address, "address", "a", "Net address host:port")
	fs.StringVarP(&f.Environment, "environment", "e", "", "Deployment environment (local, staging, production)")
	fs.StringVar(&f.EnvFile, "env-file", "", "Path of the .env override file (default \".env\")")

	return f
}

// config converts the parsed flags into a partial [StructuredConfig] that
// is merged over the environment values.
func (f *Flags) config() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment: f.Environment,
		},
		Server: Server{
			HTTPAddress: f.Address.String(),
		},
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

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host binds every interface. It validates the port
// range and checks IP correctness unless host is empty or "localhost".
func (a *NetAddress) Set(s string) error {
	host, portStr, found := strings.Cut(s, ":")
	if !found || strings.Contains(portStr, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
