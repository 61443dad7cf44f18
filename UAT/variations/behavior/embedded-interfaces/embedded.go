// Package embedded exercises mocks of interfaces composed from embedded
// interfaces.
package embedded

import (
	"errors"
	"fmt"
	"io"
)

// Closer is a local interface.
type Closer interface {
	Close() error
}

// ReadCloser embeds an external (io.Reader) and a local (Closer) interface.
type ReadCloser interface {
	io.Reader
	Closer
}

// ErrShortHeader is returned when the stream ends before a full header.
var ErrShortHeader = errors.New("short header")

// ReadHeader reads exactly size bytes from rc. rc is closed on every path.
func ReadHeader(rc ReadCloser, size int) ([]byte, error) {
	buf := make([]byte, size)

	n, err := io.ReadFull(rc, buf)
	closeErr := rc.Close()

	switch {
	case err != nil:
		return nil, fmt.Errorf("%w: read %d of %d bytes: %w", ErrShortHeader, n, size, err)
	case closeErr != nil:
		return buf, fmt.Errorf("close failed: %w", closeErr)
	}

	return buf, nil
}
