package utils

import (
	"fmt"
	"net/http"
	"time"
)

type HTTPClientConfig struct {
	Timeout   time.Duration // zero means no timeout
	KATimeout time.Duration
	UserAgent string
	Headers   map[string]string
}

// HTTPDoer is the capability the scraper needs from a transport.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type ScrapeHTTPClient struct {
	client *http.Client
	config HTTPClientConfig
}

func NewScrapeHTTPClient(cfg HTTPClientConfig) *ScrapeHTTPClient {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.KATimeout > 0 {
		transport.IdleConnTimeout = cfg.KATimeout
	}
	return &ScrapeHTTPClient{
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		config: cfg,
	}
}

func (c *ScrapeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}
	for k, v := range c.config.Headers {
		req.Header.Set(k, v)
	}
	return c.client.Do(req)
}

// Get issues a plain GET through doer. The caller closes the body.
func Get(doer HTTPDoer, url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating GET request: %w", err)
	}
	resp, err := doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error executing GET request: %w", err)
	}
	return resp, nil
}
