package domain

import "errors"

var (
	// ErrDiscovery is returned when a corpus or group directory cannot be read
	ErrDiscovery = errors.New("discovery failed")
	// ErrWorkspace is returned when the output workspace cannot be prepared
	ErrWorkspace = errors.New("workspace setup failed")
	// ErrConfig is returned for invalid configuration
	ErrConfig = errors.New("invalid configuration")
)
