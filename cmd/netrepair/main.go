// Command netrepair damages a communication network and compares how fast
// different repair policies restore its source-to-sink max flow.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
