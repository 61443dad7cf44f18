package match

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Cmp matches values equal to want according to go-cmp, honoring opts
// (for example cmpopts.IgnoreFields or cmp.AllowUnexported). The failure
// message is the go-cmp diff.
func Cmp(want any, opts ...cmp.Option) Matcher {
	return cmpMatcher{want: want, opts: opts}
}

type cmpMatcher struct {
	want any
	opts []cmp.Option
}

func (m cmpMatcher) FailureMessage(actual any) string {
	return "mismatch (-want +got):\n" + cmp.Diff(m.want, actual, m.opts...)
}

func (m cmpMatcher) Match(actual any) (ok bool, err error) {
	// cmp panics on unexported fields without an option allowing them.
	defer func() {
		if r := recover(); r != nil {
			ok, err = false, fmt.Errorf("cmp: %v", r) //nolint:err113 // wraps a recovered panic
		}
	}()

	return cmp.Equal(m.want, actual, m.opts...), nil
}

func (m cmpMatcher) String() string {
	return fmt.Sprintf("cmp-equal to %#v", m.want)
}
