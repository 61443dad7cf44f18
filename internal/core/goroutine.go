package core

import (
	"bytes"
	"runtime"
	"strconv"
)

// goroutineID returns the id of the calling goroutine, parsed from the first
// line of its stack trace ("goroutine 42 [running]:").
func goroutineID() uint64 {
	var buf [goroutineHeaderSize]byte

	n := runtime.Stack(buf[:], false)
	header := bytes.TrimPrefix(buf[:n], []byte("goroutine "))

	end := bytes.IndexByte(header, ' ')
	if end < 0 {
		return 0
	}

	id, err := strconv.ParseUint(string(header[:end]), 10, 64)
	if err != nil {
		return 0
	}

	return id
}

// unexported constants.
const (
	// enough for "goroutine <20 digits> [".
	goroutineHeaderSize = 64
)
