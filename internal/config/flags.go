package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-env runtime environment name ("development" enables 500-body details)
//	-auth-tokens comma-separated initial bearer tokens
//	-auth-users comma-separated "user:secret" credential pairs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var environment string
	var authTokens string
	var authUsers string
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&environment, "env", "", "Runtime environment (development/production)")
	flag.StringVar(&authTokens, "auth-tokens", "", "Comma-separated initial bearer tokens")
	flag.StringVar(&authUsers, "auth-users", "", "Comma-separated user:secret credential pairs")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Env: environment,
		},
		Auth: Auth{
			Tokens: splitTokens(authTokens),
			Users:  splitCredentials(authUsers),
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// splitTokens splits a comma-separated token list, dropping empty entries.
// Returns nil for an empty input so that mergo treats the field as unset.
func splitTokens(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string
	for _, token := range strings.Split(s, ",") {
		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
	}

	return tokens
}

// splitCredentials parses a comma-separated list of "user:secret" pairs into
// a credential map. Entries without a ":" separator are skipped. Returns nil
// for an empty input so that mergo treats the field as unset.
func splitCredentials(s string) map[string]string {
	if s == "" {
		return nil
	}

	users := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		username, secret, found := strings.Cut(pair, ":")
		if !found {
			continue
		}
		users[strings.TrimSpace(username)] = secret
	}

	if len(users) == 0 {
		return nil
	}

	return users
}

// String returns a canonical host:port string for a NetAddress.
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
