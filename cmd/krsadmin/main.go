package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/projectkrs/krs/internal/adminclient"
)

const defaultAPI = "http://localhost:8000"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.LookupEnv, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, lookup func(string) (string, bool), stdout, stderr io.Writer) int {
	api := defaultAPI
	if v, ok := lookup("KRS_API"); ok && v != "" {
		api = v
	}

	fs := flag.NewFlagSet("krsadmin", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&api, "api", api, "Base URL of the krs service")
	timeout := fs.Duration("timeout", 10*time.Second, "Request timeout")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: krsadmin [-api URL] [-timeout 10s] list | show <code-or-id>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	client, err := adminclient.New(api, *timeout)
	if err != nil {
		fmt.Fprintf(stderr, "krsadmin: %v\n", err)
		return 2
	}

	switch fs.Arg(0) {
	case "list":
		orders, err := client.Orders(ctx)
		if err != nil {
			fmt.Fprintf(stderr, "krsadmin: %v\n", err)
			return 1
		}
		if err := adminclient.RenderOrders(stdout, orders); err != nil {
			fmt.Fprintf(stderr, "krsadmin: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "%d order(s)\n", len(orders))
	case "show":
		if fs.NArg() != 2 {
			fs.Usage()
			return 2
		}
		order, err := client.Order(ctx, fs.Arg(1))
		if err != nil {
			if errors.Is(err, adminclient.ErrOrderNotFound) {
				fmt.Fprintln(stderr, "order not found")
				return 1
			}
			fmt.Fprintf(stderr, "krsadmin: %v\n", err)
			return 1
		}
		if err := adminclient.RenderOrder(stdout, *order); err != nil {
			fmt.Fprintf(stderr, "krsadmin: %v\n", err)
			return 1
		}
	default:
		fs.Usage()
		return 2
	}
	return 0
}
