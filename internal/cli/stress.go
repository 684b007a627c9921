package cli

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ehrlich-b/cubesync/internal/cube"
	"github.com/spf13/cobra"
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Demonstrate that a snapshot request is never starved by a flood of rotations",
	Long: `Stress floods a cube with same-direction rotations from many goroutines
and, partway through, issues a single snapshot request. It reports how long
the snapshot waited, which should stay bounded rather than growing with the
flood's duration.`,
	Run: func(cmd *cobra.Command, args []string) {
		dimension, _ := cmd.Flags().GetInt("dimension")
		floodSeconds, _ := cmd.Flags().GetFloat64("duration")
		workers, _ := cmd.Flags().GetInt("workers")

		c := cube.Construct(dimension, cube.Hooks{})
		ctx := context.Background()
		stop := make(chan struct{})
		var rotations int64

		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(plane int) {
				defer wg.Done()
				for {
					select {
					case <-stop:
						return
					default:
					}
					if err := c.Rotate(ctx, cube.Right, plane%dimension); err != nil {
						return
					}
					atomic.AddInt64(&rotations, 1)
				}
			}(w)
		}

		total := time.Duration(floodSeconds * float64(time.Second))
		time.Sleep(total / 4)
		start := time.Now()
		snap, err := c.Snapshot(ctx)
		waited := time.Since(start)

		time.Sleep(total - total/4)
		close(stop)
		wg.Wait()

		if err != nil {
			fmt.Printf("snapshot failed: %v\n", err)
			return
		}
		fmt.Printf("cube size %d, %d flooding workers\n", dimension, workers)
		fmt.Printf("rotations completed during the run: %d\n", atomic.LoadInt64(&rotations))
		fmt.Printf("snapshot admitted after waiting: %v\n", waited)
		fmt.Printf("snapshot length: %d\n", len(snap))
	},
}

func init() {
	stressCmd.Flags().IntP("dimension", "d", 3, "Cube dimension")
	stressCmd.Flags().Int("workers", 8, "Number of flooding rotation goroutines")
	stressCmd.Flags().Float64("duration", 2.0, "Total flood duration in seconds")
}
