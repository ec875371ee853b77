// Package timeouts provides centralized timeout values for handler and
// coordinator operations, used with context.WithTimeout around database
// and GridFS I/O.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads or lookups
//   - Medium: list queries, aggregations, moderate writes
//   - Long: multi-collection transactions and logo up/downloads
package timeouts

import "time"

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
	long   = 30 * time.Second
)

// Ping returns the timeout for health checks.
func Ping() time.Duration { return ping }

// Short returns the timeout for single-document reads.
func Short() time.Duration { return short }

// Medium returns the timeout for list queries and moderate writes.
func Medium() time.Duration { return medium }

// Long returns the timeout for transactions and blob transfers.
func Long() time.Duration { return long }
