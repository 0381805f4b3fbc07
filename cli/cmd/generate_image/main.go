// generate_image creates an image from a text prompt with a Gemini image model.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/petal-labs/imagegen/cli/commands"
)

// ExitCoder is an interface for errors that have an exit code.
type ExitCoder interface {
	ExitCode() int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.NewGenerateApp().Run(ctx, os.Args[1:])
	stop()

	if err != nil {
		if ec, ok := err.(ExitCoder); ok {
			os.Exit(ec.ExitCode())
		}
		os.Exit(1)
	}
}
