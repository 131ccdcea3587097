package worker

import "errors"

var (
	ErrQueueFull  = errors.New("worker: queue is full")
	ErrPoolClosed = errors.New("worker: pool is closed")
	ErrNilJob     = errors.New("worker: job has no Run func")
)
