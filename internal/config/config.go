package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/hostingcloud/framehost/internal/page"
)

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8501"

	// DefaultLogLevel is used when no level is given.
	DefaultLogLevel = "info"

	// DefaultFrameSrc is the address the shell page embeds.
	DefaultFrameSrc = page.DefaultFrameSrc
)

// ErrInvalidPort is returned for a port outside 1-65535.
var ErrInvalidPort = errors.New("invalid port")

// Config holds the settings for the serve command.
type Config struct {
	Port     string
	FrameSrc string
}

// Addr returns the listen address for Port on all interfaces.
func (c Config) Addr() string {
	return net.JoinHostPort("", c.Port)
}

// Validate checks Port and FrameSrc.
func (c Config) Validate() error {
	n, err := strconv.Atoi(c.Port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("%w: %q", ErrInvalidPort, c.Port)
	}

	return page.ValidateFrameSrc(c.FrameSrc)
}
