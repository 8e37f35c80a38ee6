// SPDX-License-Identifier: MIT

// Command labsim replays YAML example scenarios against the labkit
// objects.
//
//	labsim examples
//	labsim run --fail-fast scenarios/*.yaml
//	labsim validate my_lab.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
