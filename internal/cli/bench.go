package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ehrlich-b/cubesync/internal/cube"
	"github.com/spf13/cobra"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Demonstrate same-direction parallelism across distinct planes",
	Long: `Bench fires one rotation per layer of a single face's direction
concurrently and reports how long the whole batch took versus running them
one at a time, to make the controller's plane-level parallelism visible.`,
	Run: func(cmd *cobra.Command, args []string) {
		dimension, _ := cmd.Flags().GetInt("dimension")
		workMillis, _ := cmd.Flags().GetInt("work")
		work := time.Duration(workMillis) * time.Millisecond

		hooks := cube.Hooks{AfterRotate: func(context.Context, cube.Face, int) error {
			time.Sleep(work)
			return nil
		}}
		ctx := context.Background()

		sequential := timeRotations(ctx, cube.Construct(dimension, hooks), dimension, false)
		concurrent := timeRotations(ctx, cube.Construct(dimension, hooks), dimension, true)

		fmt.Printf("cube size %d, %d planes, %v simulated work per plane\n", dimension, dimension, work)
		fmt.Printf("sequential: %v\n", sequential)
		fmt.Printf("concurrent: %v\n", concurrent)
		fmt.Printf("speedup: %.2fx\n", float64(sequential)/float64(concurrent))
	},
}

func timeRotations(ctx context.Context, c *cube.Cube, dimension int, concurrently bool) time.Duration {
	start := time.Now()
	if concurrently {
		var wg sync.WaitGroup
		for plane := 0; plane < dimension; plane++ {
			wg.Add(1)
			go func(plane int) {
				defer wg.Done()
				_ = c.Rotate(ctx, cube.Right, plane)
			}(plane)
		}
		wg.Wait()
	} else {
		for plane := 0; plane < dimension; plane++ {
			_ = c.Rotate(ctx, cube.Right, plane)
		}
	}
	return time.Since(start)
}

func init() {
	benchCmd.Flags().IntP("dimension", "d", 5, "Cube dimension")
	benchCmd.Flags().Int("work", 20, "Simulated per-rotation work, in milliseconds")
}
