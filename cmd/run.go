package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kidslearn/internal/app"
	"kidslearn/internal/config"
	"kidslearn/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// startGame skips the home menu when set.
func runApp(cmd *cobra.Command, startGame string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	recs, closeStore := openRecords(cmd, cfg)
	defer closeStore()

	return app.Run(app.Options{
		Records:   recs,
		Cfg:       cfg,
		StartGame: startGame,
	})
}

// openRecords opens the SQLite-backed records, falling back to an
// in-memory store when the database cannot be opened. Progress then
// lasts for the process only, but the games still run.
func openRecords(cmd *cobra.Command, cfg config.Config) (*store.Records, func()) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err == nil {
		var st *store.SQLite
		st, err = store.Open(dbPath)
		if err == nil {
			return store.NewRecords(st), func() { st.Close() }
		}
	}

	fmt.Fprintln(os.Stderr, "Could not open database:", err)
	fmt.Fprintln(os.Stderr, "Progress will not be saved this session.")
	return store.NewRecords(store.NewMemory()), func() {}
}
