// Command nnrtc is the primary CLI driving the compiler and execution
// drivers end to end against the in-tree refcpu backend.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
