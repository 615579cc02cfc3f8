package config

import (
	"net"
	"net/url"
	"os"
	"strings"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8000"

	webshareProxyHost = "p.webshare.io:80"
)

// Config holds everything the service reads from the environment. It is built
// once in main and passed down; nothing consults env vars after startup.
type Config struct {
	Host string
	Port string

	ProxyUsername  string
	ProxyPassword  string
	ProxyLocations string
}

func Load() Config {
	return Config{
		Host:           getenv("HOST", defaultHost),
		Port:           getenv("PORT", defaultPort),
		ProxyUsername:  os.Getenv("WEBSHARE_PROXY_USERNAME"),
		ProxyPassword:  os.Getenv("WEBSHARE_PROXY_PASSWORD"),
		ProxyLocations: os.Getenv("PROXY_LOCATIONS"),
	}
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// WebshareProxy returns the proxy specification, or nil when either credential
// is missing and the service should connect directly.
func (c Config) WebshareProxy() *WebshareProxy {
	if c.ProxyUsername == "" || c.ProxyPassword == "" {
		return nil
	}
	return &WebshareProxy{
		Username:  c.ProxyUsername,
		Password:  c.ProxyPassword,
		Locations: ParseLocations(c.ProxyLocations),
	}
}

// ParseLocations splits a comma-separated country code list, trimming
// whitespace and lowercasing each entry. An empty or blank input yields nil,
// meaning no location filter at all.
func ParseLocations(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	locations := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		locations = append(locations, part)
	}

	if len(locations) == 0 {
		return nil
	}
	return locations
}

// WebshareProxy describes the rotating residential proxy endpoint. Locations
// holds lowercase country codes; nil means unfiltered.
type WebshareProxy struct {
	Username  string
	Password  string
	Locations []string
}

// URL builds the rotating-proxy endpoint. Webshare routes location-filtered
// sessions by folding the country codes into the proxy username.
func (p *WebshareProxy) URL() *url.URL {
	username := p.Username
	if len(p.Locations) > 0 {
		username += "-" + strings.Join(p.Locations, "-")
	}
	username += "-rotate"

	return &url.URL{
		Scheme: "http",
		User:   url.UserPassword(username, p.Password),
		Host:   webshareProxyHost,
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
