package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kaede-rail/railtopo/neighbor"
	"github.com/kaede-rail/railtopo/railmodel"
)

// RailwayResult pairs one railway's id with its inferred NextStaInfo list,
// or the error its pass terminated with (a single malformed railway
// does not poison others).
type RailwayResult struct {
	RailwayID int
	Stations  []NextStaInfo
	Err       error
}

// Driver processes multiple railways concurrently. Each railway pass owns
// its own transient structures and the global station/polyline tables are
// read-only after ingestion, so passes require no coordination.
type Driver struct {
	Thresholds neighbor.Thresholds
}

// NewDriver builds a Driver with the given thresholds.
func NewDriver(th neighbor.Thresholds) *Driver {
	return &Driver{Thresholds: th}
}

// RunAll runs Run for every input concurrently and returns one
// RailwayResult per input, in the same order as inputs. A single railway's
// error is captured in its own result rather than aborting the others.
func (d *Driver) RunAll(ctx context.Context, inputs []railmodel.Input) ([]RailwayResult, error) {
	results := make([]RailwayResult, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			stations, err := Run(input, d.Thresholds)
			results[i] = RailwayResult{
				RailwayID: input.Railway.ID,
				Stations:  stations,
				Err:       err,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
