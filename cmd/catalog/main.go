package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Apurer/retail-catalog/internal/app/catalog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term := catalog.IO{In: os.Stdin, Prompt: os.Stdout, Log: os.Stderr}
	if err := catalog.Execute(ctx, term, os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "catalog:", err)
		stop()
		os.Exit(1)
	}
}
