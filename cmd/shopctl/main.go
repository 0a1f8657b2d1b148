package main

import (
	"context"
	"os"

	"go-hardware-demo/internal/cli"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cmd := cli.NewRootCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		format, _ := cmd.PersistentFlags().GetString("format")
		out := &cli.OutputFormatter{Format: format, Writer: os.Stderr}
		out.Error(err)
		os.Exit(cli.GetExitCode(err))
	}
}
