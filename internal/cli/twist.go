package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ehrlich-b/cubesync/internal/cube"
	"github.com/spf13/cobra"
)

var twistCmd = &cobra.Command{
	Use:   "twist <moves>",
	Short: "Apply moves to a cube and display the result",
	Long: `Apply a sequence of moves to a solved cube and display the resulting
state. Perfect for exploring what a given sequence does.

Examples:
  cube twist "R U R' U'"
  cube twist "F R U' R' F'" --color
  cube twist "2R 2U 2F" --dimension 4`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		moves := args[0]
		dimension, _ := cmd.Flags().GetInt("dimension")
		useColor, _ := cmd.Flags().GetBool("color")

		turns, err := parseMoves(moves, dimension)
		if err != nil {
			fmt.Printf("Error parsing moves: %v\n", err)
			os.Exit(1)
		}

		c := cube.Construct(dimension, cube.Hooks{})
		ctx := context.Background()

		fmt.Printf("Applying moves to %dx%dx%d cube: %s\n", dimension, dimension, dimension, moves)
		if err := applyTurns(ctx, c, turns); err != nil {
			fmt.Printf("Error applying moves: %v\n", err)
			os.Exit(1)
		}

		snap, err := c.Snapshot(ctx)
		if err != nil {
			fmt.Printf("Error taking snapshot: %v\n", err)
			os.Exit(1)
		}

		if useColor {
			fmt.Printf("\nCube state after applying moves:\n%s\n", cube.ColoredString(snap, dimension))
		} else {
			fmt.Printf("\nCube state after applying moves:\n%s\n", cube.String(snap, dimension))
		}
		fmt.Printf("Moves applied: %d\n", len(turns))
		if cube.IsSolved(snap, dimension) {
			fmt.Println("Status: solved")
		} else {
			fmt.Println("Status: scrambled")
		}
	},
}

func init() {
	twistCmd.Flags().IntP("dimension", "d", 3, "Cube dimension (2, 3, 4, etc.)")
	twistCmd.Flags().BoolP("color", "c", false, "Use colored output")
}
