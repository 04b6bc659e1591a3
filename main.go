package main

import (
	"context"
	"os"

	"vincit.fi/selphy-print/backend"
)

func main() {
	os.Exit(backend.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, backend.NewCupsSpooler))
}
