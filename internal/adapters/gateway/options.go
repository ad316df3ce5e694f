package gateway

import "time"

// Option applies a configuration option to the HTTP gateway client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.rc.SetTimeout(timeout)
		}
	}
}

// WithRetryCount sets how many times transport failures are retried.
func WithRetryCount(count int) Option {
	return func(c *Client) {
		if count >= 0 {
			c.rc.SetRetryCount(count)
		}
	}
}

// WithManagers folds /managers into List once the backend enumerates them.
// Off by default: the current backend only exposes employees and trainers.
func WithManagers(include bool) Option {
	return func(c *Client) {
		c.includeManagers = include
	}
}

// WithDebug enables request/response logging on the underlying client.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.rc.SetDebug(debug)
	}
}
