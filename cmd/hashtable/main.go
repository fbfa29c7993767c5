package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/lleo/go-hashtable/cmd/hashtable/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app.MustExecute(ctx)
}
