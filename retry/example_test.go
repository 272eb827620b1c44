package retry_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/aspect/retry"
)

// ExamplePolicy_Do demonstrates the boolean-success convention: the
// callable reports success by returning true, and the policy keeps
// re-invoking it — with growing waits — until it does or attempts run out.
func ExamplePolicy_Do() {
	p := retry.MustNew(3, time.Millisecond, 2)

	attempt := 0
	ok := p.Do(func() bool {
		attempt++

		return attempt == 3
	})

	fmt.Println(ok, attempt)
	// Output:
	// true 3
}
