package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"kidslearn/internal/config"
	"kidslearn/internal/content"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice progress and recent daily results",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		recs, closeStore := openRecords(cmd, cfg)
		defer closeStore()

		fmt.Println("Practice progress")
		printProgress := func(label, game string, bank *content.Bank, ages []content.AgeTag) {
			for _, age := range ages {
				pool := bank.ForAge(age)
				if len(pool) == 0 {
					continue
				}
				used := len(recs.UsedIDs(game, string(age)))
				fmt.Printf("  %-20s %-6s %d/%d\n", label, age, used, len(pool))
			}
		}
		printProgress("stories read", "reading", content.Stories(), content.AgeTags)
		printProgress("science cards seen", "science", content.Science(),
			[]content.AgeTag{content.Age6to8, content.Age8to10})

		fmt.Println()
		fmt.Println("Daily challenges (last 7 days)")
		now := time.Now()
		any := false
		for i := 0; i < 7; i++ {
			date := now.AddDate(0, 0, -i).Format(time.DateOnly)
			for _, age := range []content.AgeTag{content.Age6to8, content.Age8to10} {
				res, ok := recs.DailyResult("science", string(age), date)
				if !ok || !res.Done {
					continue
				}
				any = true
				fmt.Printf("  %s  science %-6s score %d\n", date, age, res.Score)
			}
		}
		if !any {
			fmt.Println("  none finished yet")
		}
		return nil
	},
}
