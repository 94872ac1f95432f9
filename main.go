package main

import (
	"fmt"
	"os"

	"github.com/zeu5/rl-agents/cmd"
)

func main() {
	if err := cmd.RootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
