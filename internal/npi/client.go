package npi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-api/internal/config"
	"github.com/jwalitptl/clinic-api/pkg/circuitbreaker"
	"github.com/jwalitptl/clinic-api/pkg/metrics"
)

// Verifier checks a clinician's claimed identity against the NPI registry.
// The bool result is the match decision; a non-nil error means the registry
// could not be consulted at all and no decision was made.
type Verifier interface {
	Verify(ctx context.Context, npiNumber, firstName, lastName, state string) (bool, error)
}

// registryResponse mirrors the subset of the NPI registry payload we compare
// against. Only the first result and its first address participate in the
// match decision.
type registryResponse struct {
	Results []struct {
		Basic struct {
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
		} `json:"basic"`
		Addresses []struct {
			State string `json:"state"`
		} `json:"addresses"`
	} `json:"results"`
}

type Client struct {
	baseURL string
	http    *http.Client
	breaker *circuitbreaker.CircuitBreaker
	metrics *metrics.Metrics
}

func NewClient(cfg config.RegistryConfig, m *metrics.Metrics) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		breaker: circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
			Name:        "npi-registry",
			MaxFailures: cfg.BreakerMaxFail,
			Timeout:     cfg.BreakerTimeout,
		}),
		metrics: m,
	}
}

// Verify issues one registry lookup per call; prior lookups are never cached.
func (c *Client) Verify(ctx context.Context, npiNumber, firstName, lastName, state string) (bool, error) {
	start := time.Now()

	var verified bool
	err := c.breaker.Execute(func() error {
		var lookupErr error
		verified, lookupErr = c.lookup(ctx, npiNumber, firstName, lastName, state)
		return lookupErr
	})

	if c.metrics != nil {
		c.metrics.RegistryLatency.Observe(time.Since(start).Seconds())
		c.metrics.RegistryLookups.WithLabelValues(lookupResult(verified, err)).Inc()
	}

	if err != nil {
		log.Warn().Err(err).Str("npi_number", npiNumber).Msg("NPI registry lookup failed")
		return false, fmt.Errorf("npi registry lookup: %w", err)
	}
	return verified, nil
}

func (c *Client) lookup(ctx context.Context, npiNumber, firstName, lastName, state string) (bool, error) {
	endpoint := fmt.Sprintf("%s/api/?number=%s&version=2.1", c.baseURL, url.QueryEscape(npiNumber))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// The registry answered; a non-200 is "not verified", not an outage.
		log.Debug().Int("status", resp.StatusCode).Str("npi_number", npiNumber).Msg("NPI registry non-200 response")
		return false, nil
	}

	var body registryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, err
	}

	if len(body.Results) == 0 {
		return false, nil
	}

	provider := body.Results[0]
	if len(provider.Addresses) == 0 {
		return false, nil
	}

	return strings.EqualFold(provider.Basic.FirstName, firstName) &&
		strings.EqualFold(provider.Basic.LastName, lastName) &&
		strings.EqualFold(provider.Addresses[0].State, state), nil
}

func lookupResult(verified bool, err error) string {
	switch {
	case err != nil:
		return "error"
	case verified:
		return "verified"
	default:
		return "rejected"
	}
}
