// Command rivegolden renders scene files into contact sheets of frames and
// prints their contents.
//
//	rivegolden render --rivs testdata --destination out
//	rivegolden inspect testdata/button.yaml
package main

import (
	"os"

	"github.com/gogpu/rive/internal/cli"
	"github.com/gogpu/rive/internal/logging"
)

func main() {
	logger := logging.NewLogger(os.Stderr, logging.LevelInfo)
	if err := cli.Execute(os.Args[1:], logger); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
