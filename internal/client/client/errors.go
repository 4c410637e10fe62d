package client

import "errors"

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrNoObjects   = errors.New("no objects to send")
)
