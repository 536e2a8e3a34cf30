package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks of long lived resources.
const DefaultTimeout = 10 * time.Second
