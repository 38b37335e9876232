// Package page renders the HostingCloud shell document: a full-viewport page
// whose only content is an iframe pointing at the site frontend.
package page

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/url"

	"github.com/hostingcloud/framehost/internal/static"
)

// DefaultFrameSrc is where the frontend is expected to listen.
const DefaultFrameSrc = "http://localhost"

var (
	ErrInvalidFrameSrc = errors.New("invalid frame source")
	ErrRender          = errors.New("failed to render page")
)

var shell = template.Must(template.New("index").Parse(static.IndexTemplate))

type shellData struct {
	FrameSrc string
}

// Render executes the shell template for frameSrc. The result never changes
// for a given input, so callers render once and reuse the bytes.
func Render(frameSrc string) ([]byte, error) {
	if err := ValidateFrameSrc(frameSrc); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := shell.Execute(&buf, shellData{FrameSrc: frameSrc}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// ValidateFrameSrc checks that frameSrc is an absolute http(s) URL with a host.
func ValidateFrameSrc(frameSrc string) error {
	if frameSrc == "" {
		return fmt.Errorf("%w: empty", ErrInvalidFrameSrc)
	}

	u, err := url.Parse(frameSrc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFrameSrc, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q has scheme %q, expected http or https", ErrInvalidFrameSrc, frameSrc, u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("%w: %q has no host", ErrInvalidFrameSrc, frameSrc)
	}

	return nil
}
