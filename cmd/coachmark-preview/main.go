// Command coachmark-preview inspects and plays walkthrough definitions.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
