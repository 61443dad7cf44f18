package mockinterface_test

import (
	"fmt"

	"github.com/toejough/impmock"
)

type (
	addArgs    = impmock.Args2[int, int]
	notifyArgs = impmock.Args2[string, []int]
)

// recorder captures the failure message; Fatalf panics so the call stops.
type recorder struct {
	msg string
}

func (r *recorder) Fatalf(format string, args ...any) {
	r.msg = fmt.Sprintf(format, args...)
	panic(r.msg)
}

func (r *recorder) Helper() {}
