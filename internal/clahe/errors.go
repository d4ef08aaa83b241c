package clahe

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig matches every *ConfigError through errors.Is.
	ErrConfig = errors.New("clahe: invalid configuration")
	// ErrChannelCount matches every *ChannelCountError through errors.Is.
	ErrChannelCount = errors.New("clahe: histogram input is not single-channel")
)

// ConfigError rejects a call before any work is done.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("clahe: bad %s %d: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// ChannelCountError is returned when a histogram is requested for an image
// whose color model does not carry exactly one channel.
type ChannelCountError struct {
	Channels int
}

func (e *ChannelCountError) Error() string {
	return fmt.Sprintf("clahe: histogram input has %d channels, want 1", e.Channels)
}

func (e *ChannelCountError) Is(target error) bool { return target == ErrChannelCount }
