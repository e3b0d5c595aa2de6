package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [math|reading|science]",
	Short: "Start a game directly",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		game := ""
		if len(args) == 1 {
			switch args[0] {
			case "math", "reading", "science":
				game = args[0]
			default:
				return fmt.Errorf("unknown game %q (want math, reading, or science)", args[0])
			}
		}
		return runApp(cmd, game)
	},
}
