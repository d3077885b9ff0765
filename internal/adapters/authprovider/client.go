// Package authprovider verifies creator bearer tokens against the external
// auth service's user endpoint.
package authprovider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"meanin/internal/platform/config"
	perr "meanin/internal/platform/errors"
	"meanin/internal/platform/logger"
)

const (
	userPath         = "/auth/v1/user"
	defaultTimeout   = 5 * time.Second
	defaultMaxRetry  = 2
	defaultRetryBase = 200 * time.Millisecond
)

// Options configures the Client
type Options struct {
	// BaseURL of the auth service; empty disables creator auth
	BaseURL string
	// APIKey is sent as the apikey header when set
	APIKey  string
	Timeout time.Duration

	// Retry config for transport failures and 5xx responses
	MaxRetries int
	RetryBase  time.Duration
}

// OptionsFromEnv reads AUTH_URL, AUTH_API_KEY and AUTH_TIMEOUT
func OptionsFromEnv(cfg config.Conf) Options {
	return Options{
		BaseURL: strings.TrimRight(cfg.MayString("AUTH_URL", ""), "/"),
		APIKey:  cfg.MayString("AUTH_API_KEY", ""),
		Timeout: cfg.MayDuration("AUTH_TIMEOUT", defaultTimeout),
	}
}

// Client calls the auth service
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	sleep func(time.Duration)
}

// New returns nil when no BaseURL is configured
func New(o Options) *Client {
	if o.BaseURL == "" {
		return nil
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("authprovider"),
		sleep: time.Sleep,
	}
}

type user struct {
	ID string `json:"id"`
}

// Verify resolves token to the subject id. Rejected tokens are Unauthorized,
// an unreachable service is Unavailable.
func (c *Client) Verify(ctx context.Context, token string) (string, error) {
	attempts := 0
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+userPath, nil)
		if err != nil {
			return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "auth new request failed")
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Accept", "application/json")
		if c.opts.APIKey != "" {
			req.Header.Set("apikey", c.opts.APIKey)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if attempts >= c.opts.MaxRetries {
				return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "auth service unreachable")
			}
			c.retry(attempts, "auth transport error retrying")
			attempts++
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			var u user
			err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&u)
			_ = resp.Body.Close()
			if err != nil || u.ID == "" {
				return "", perr.Unauthorizedf("auth user payload invalid")
			}
			return u.ID, nil
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			_ = drainAndClose(resp.Body)
			return "", perr.Unauthorizedf("token rejected")
		case resp.StatusCode >= 500:
			_ = drainAndClose(resp.Body)
			if attempts >= c.opts.MaxRetries {
				return "", perr.Newf(perr.ErrorCodeUnavailable, "auth service status %d", resp.StatusCode)
			}
			c.retry(attempts, "auth transient error retrying")
			attempts++
		default:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			_ = resp.Body.Close()
			return "", perr.Unauthorizedf("auth unexpected status %d body %s", resp.StatusCode, string(body))
		}
	}
}

func (c *Client) retry(attempt int, msg string) {
	back := c.opts.RetryBase << uint(attempt)
	c.log.Warn().Dur("retry_in", back).Int("attempt", attempt).Msg(msg)
	c.sleep(back)
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
