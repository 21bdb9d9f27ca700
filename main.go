// Package main is the entry point for the zrank CLI.
package main

import "zrank.dev/pkg/zrank/cmd"

func main() {
	cmd.Execute()
}
