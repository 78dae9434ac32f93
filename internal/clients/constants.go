package clients

import "time"

const (
	MAX_RETRIES     = 5
	INITIAL_BACKOFF = 1 * time.Second
	MAX_BACKOFF     = 32 * time.Second
	REQUEST_TIMEOUT = 15 * time.Second
	USER_AGENT      = "trendmood-collector/1.0 (by /u/Data-Science-Project)"
)
