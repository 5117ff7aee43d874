// Package main is the entry point for the iplmetrics CLI tool, which imports
// IPL ball-by-ball data and answers statistical questions about it.
package main

import "github.com/pitchview/iplmetrics/cmd"

func main() {
	cmd.Execute()
}
