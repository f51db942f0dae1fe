// Package cmd implements the CLI application to manage the finance tracker.
package cmd

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	finance "github.com/mmejia-loth/Personal-Finance-Management-App-6304"
	"github.com/mmejia-loth/Personal-Finance-Management-App-6304/persist"
)

// As a CLI application the process is short-lived, so shared flags and the
// store live in package globals.

var dataDir = flag.String("data", envOr("PFT_DATA", "pft-data"), "Directory holding the snapshot slot")
var dbPath = flag.String("db", envOr("PFT_DB", ""), "SQLite database path; when set, the slot lives there instead of a JSON file")
var slotName = flag.String("slot", envOr("PFT_SLOT", persist.DefaultSlot), "Name of the snapshot slot")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newLogger builds the CLI logger writing human-readable events to stderr.
func newLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).With().Timestamp().Logger()
}

// OpenStore opens the configured snapshot slot and seeds a store from it.
// The returned closer flushes pending saves and releases the slot; call it
// exactly once, at exit.
func OpenStore() (*finance.Store, func() error, error) {
	log := newLogger()

	var bridge finance.Bridge
	closeBridge := func() error { return nil }
	if *dbPath != "" {
		db, err := persist.OpenDB(*dbPath, *slotName)
		if err != nil {
			return nil, nil, err
		}
		bridge = db
		closeBridge = db.Close
	} else {
		bridge = persist.NewFile(*dataDir, *slotName)
	}

	store := finance.NewStore(bridge, finance.UUIDSource{}, log)
	closer := func() error {
		if err := store.Close(); err != nil {
			closeBridge()
			return err
		}
		return closeBridge()
	}
	return store, closer, nil
}
