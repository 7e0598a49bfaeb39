// Command dronereg extracts drone registrations from the FAA Releasable
// Aircraft database into ReleasableDrone.csv.
//
// Usage:
//
//	dronereg report [--database ReleasableAircraft.zip] [--data-dir DIR]
//	dronereg fetch [--data-dir DIR]
//	dronereg members [--database ReleasableAircraft.zip]
//
// Without --database the archive is downloaded from FAA_DATABASE_URL.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("dronereg failed", "error", err)
		stop()
		os.Exit(1)
	}
}
