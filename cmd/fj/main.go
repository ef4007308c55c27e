// Command fj runs memoized recursive workloads and reports how many times
// their bodies were evaluated.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
