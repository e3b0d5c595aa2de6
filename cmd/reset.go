package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"kidslearn/internal/config"
	"kidslearn/internal/content"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the no-repeat history for reading and science",
	Long:  "Clears the used-item lists so every story and science card becomes available again. Daily challenge records are kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			fmt.Println("This clears which stories and science cards have been seen.")
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		recs, closeStore := openRecords(cmd, cfg)
		defer closeStore()

		for _, age := range content.AgeTags {
			recs.ResetUsed("reading", string(age))
			recs.ResetUsed("science", string(age))
		}
		fmt.Println("History cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Skip the confirmation prompt")
}
