package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ehrlich-b/cubesync/internal/cube"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [moves]",
	Short: "Show cube state after optionally applying moves",
	Long: `Show builds a solved cube, applies an optional move sequence, and prints
the resulting state.

Examples:
  cube show
  cube show "R U R' U'"
  cube show "2R U2 3F'" --dimension 4 --color`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		moves := ""
		if len(args) > 0 {
			moves = args[0]
		}
		dimension, _ := cmd.Flags().GetInt("dimension")
		useColor, _ := cmd.Flags().GetBool("color")

		c := cube.Construct(dimension, cube.Hooks{})
		ctx := context.Background()

		if moves != "" {
			turns, err := parseMoves(moves, dimension)
			if err != nil {
				fmt.Printf("Error parsing moves: %v\n", err)
				os.Exit(1)
			}
			if err := applyTurns(ctx, c, turns); err != nil {
				fmt.Printf("Error applying moves: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Cube state after: %s\n\n", moves)
		} else {
			fmt.Println("Solved cube state:")
		}

		snap, err := c.Snapshot(ctx)
		if err != nil {
			fmt.Printf("Error taking snapshot: %v\n", err)
			os.Exit(1)
		}

		if useColor {
			fmt.Println(cube.ColoredString(snap, dimension))
		} else {
			fmt.Println(cube.String(snap, dimension))
		}
	},
}

func init() {
	showCmd.Flags().IntP("dimension", "d", 3, "Cube dimension (2, 3, 4, etc.)")
	showCmd.Flags().BoolP("color", "c", false, "Use colored output")
}
