// Package bgg retrieves board game rankings and statistics from
// BoardGameGeek: the ranked browse pages (HTML) and the XMLAPI2
// statistics endpoint.
package bgg

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBrowseURL is the base URL for the ranked game listing pages.
	DefaultBrowseURL = "https://boardgamegeek.com/browse/boardgame"

	// DefaultAPIURL is the base URL for the BGG XML API.
	DefaultAPIURL = "https://boardgamegeek.com/xmlapi2"

	// DefaultSiteURL is the base URL used to build game display links.
	DefaultSiteURL = "https://boardgamegeek.com"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRetryDelay is the pause between attempts while the API
	// reports that the rate limit is exceeded.
	DefaultRetryDelay = 1 * time.Second
)

// Config holds the configuration for the BGG client. Zero values fall
// back to the package defaults, so Config{} targets the live site.
type Config struct {
	BrowseURL  string        // Optional: ranked listing base URL
	APIURL     string        // Optional: XML API base URL
	SiteURL    string        // Optional: display link base URL
	Timeout    time.Duration // Optional: HTTP request timeout (default: 30s)
	RetryDelay time.Duration // Optional: rate-limit retry pause (default: 1s)
}

// Client fetches ranked listing pages and per-game statistics.
type Client struct {
	http       *resty.Client
	browseURL  string
	apiURL     string
	siteURL    string
	retryDelay time.Duration
}

// NewClient creates a new BGG client.
func NewClient(cfg Config) *Client {
	browseURL := cfg.BrowseURL
	if browseURL == "" {
		browseURL = DefaultBrowseURL
	}

	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	siteURL := cfg.SiteURL
	if siteURL == "" {
		siteURL = DefaultSiteURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	retryDelay := cfg.RetryDelay
	if retryDelay == 0 {
		retryDelay = DefaultRetryDelay
	}

	return &Client{
		http:       resty.New().SetTimeout(timeout),
		browseURL:  browseURL,
		apiURL:     apiURL,
		siteURL:    siteURL,
		retryDelay: retryDelay,
	}
}

// GameURL returns the display URL for a game.
func (c *Client) GameURL(id string) string {
	return fmt.Sprintf("%s/boardgame/%s", c.siteURL, id)
}
