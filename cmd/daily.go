package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"kidslearn/internal/config"
	"kidslearn/internal/content"
	"kidslearn/internal/deck"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show today's daily challenge status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		recs, closeStore := openRecords(cmd, cfg)
		defer closeStore()

		today := time.Now().Format(time.DateOnly)
		bank := content.Science()

		fmt.Println("Daily science challenge for", today)
		for _, age := range []content.AgeTag{content.Age6to8, content.Age8to10} {
			pool := bank.ForAge(age)
			if len(pool) == 0 {
				continue
			}
			item := pool[deck.DailyIndex(today, age, len(pool))]

			status := "not played yet"
			if res, ok := recs.DailyResult("science", string(age), today); ok && res.Done {
				status = fmt.Sprintf("done, score %d", res.Score)
			}
			fmt.Printf("  %-6s %-18s %s\n", age, status, item.Body)
		}
		return nil
	},
}
