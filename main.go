package main

import (
	"os"

	"my-tweet-reviewer/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
