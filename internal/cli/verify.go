package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ehrlich-b/cubesync/internal/cube"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <moves>",
	Short: "Verify a move sequence conserves every sticker color",
	Long: `Verify applies a move sequence to a solved cube and checks that every
color still appears exactly size*size times afterward. Rotations are
permutations of stickers, so any count drift means a bug in the rotation
implementation rather than anything about the sequence itself.

Examples:
  cube verify "R U R' U'"
  cube verify "2R 2U 2F" --dimension 4 --headless`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		moves := args[0]
		dimension, _ := cmd.Flags().GetInt("dimension")
		headless, _ := cmd.Flags().GetBool("headless")

		turns, err := parseMoves(moves, dimension)
		if err != nil {
			if !headless {
				fmt.Printf("Error parsing moves: %v\n", err)
			}
			os.Exit(1)
		}

		c := cube.Construct(dimension, cube.Hooks{})
		ctx := context.Background()
		if err := applyTurns(ctx, c, turns); err != nil {
			if !headless {
				fmt.Printf("Error applying moves: %v\n", err)
			}
			os.Exit(1)
		}

		snap, err := c.Snapshot(ctx)
		if err != nil {
			if !headless {
				fmt.Printf("Error taking snapshot: %v\n", err)
			}
			os.Exit(1)
		}

		want := dimension * dimension
		counts := make(map[byte]int)
		for i := 0; i < len(snap); i++ {
			counts[snap[i]]++
		}

		ok := len(counts) == 6
		for _, n := range counts {
			if n != want {
				ok = false
			}
		}

		if ok {
			if !headless {
				fmt.Printf("PASS: every color appears %d times after %q\n", want, moves)
			}
			os.Exit(0)
		}
		if !headless {
			fmt.Printf("FAIL: color counts drifted after %q\n", moves)
			for color := byte('0'); color <= '5'; color++ {
				fmt.Printf("  color %c: %d (want %d)\n", color, counts[color], want)
			}
		}
		os.Exit(1)
	},
}

func init() {
	verifyCmd.Flags().IntP("dimension", "d", 3, "Cube dimension (2, 3, 4, etc.)")
	verifyCmd.Flags().Bool("headless", false, "Exit with code 0 for pass, 1 for fail (no output)")
}
