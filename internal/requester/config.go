package requester

import "time"

type Config struct {
	Timeout time.Duration
}
