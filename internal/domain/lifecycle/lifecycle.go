// Package lifecycle holds shared constants for application start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds how long startup probes and graceful shutdown may take.
const DefaultTimeout = 30 * time.Second
