package main

import (
	"os"

	"github.com/far4599/yt-trim/internal/pkg/context"
	"github.com/far4599/yt-trim/internal/pkg/log"
	_ "go.uber.org/automaxprocs"
)

func main() {
	ctx := context.NewSignalledContext()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Logger.Errorw("command failed", "error", err)
		os.Exit(1)
	}
}
