package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dsrt-go/dsrt/internal/backend/cpu"
	"github.com/dsrt-go/dsrt/internal/kernel"
	"github.com/dsrt-go/dsrt/internal/parallel"
)

// Backend names accepted by --backend.
const (
	BackendCPU    = "cpu"
	BackendWebGPU = "webgpu"
)

// BatchOptions holds flags for the batch command.
type BatchOptions struct {
	Count   int
	Backend string
	Workers int
}

// BatchSummary is the payload of the batch command.
type BatchSummary struct {
	Backend  string  `json:"backend"`
	Count    int     `json:"count"`
	Checksum float64 `json:"checksum"`
}

func (s BatchSummary) String() string {
	return fmt.Sprintf("backend=%s count=%d checksum=%s", s.Backend, s.Count, formatFloat(s.Checksum))
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(opts *RootOptions) *cobra.Command {
	bopts := &BatchOptions{}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Multiply a batch of 4x4 matrices on a batch backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bopts.Count <= 0 {
				return NewExitError(ExitCommandError, "count must be positive")
			}

			backend, release, err := newBackend(bopts)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to create backend", err)
			}
			defer release()

			a, b := BatchInputs(bopts.Count)
			out := make([]float64, len(a))

			start := time.Now()
			if err := backend.Mat4MultiplyBatch(a, b, out); err != nil {
				return WrapExitError(ExitFailure, "batch failed", err)
			}
			opts.Logger().Debug("batch finished",
				"backend", backend.Name(),
				"count", bopts.Count,
				"elapsed", time.Since(start),
			)

			var sum float64
			for _, v := range out {
				sum += v
			}
			return opts.formatter(cmd).Success(BatchSummary{
				Backend:  bopts.Backend,
				Count:    bopts.Count,
				Checksum: sum,
			})
		},
	}

	cmd.Flags().IntVarP(&bopts.Count, "count", "n", 1024, "number of matrix pairs")
	cmd.Flags().StringVar(&bopts.Backend, "backend", BackendCPU, "batch backend (cpu|webgpu)")
	cmd.Flags().IntVar(&bopts.Workers, "workers", 0, "CPU worker goroutines (0 = one per CPU)")

	return cmd
}

// BatchInputs returns count deterministic matrix pairs with small integer
// entries, so products are exact in float32 and float64 alike.
func BatchInputs(count int) (a, b []float64) {
	a = make([]float64, count*kernel.Mat4Len)
	b = make([]float64, count*kernel.Mat4Len)
	for i := range a {
		a[i] = float64(i*7%13) - 6
		b[i] = float64(i*5%11) - 5
	}
	return a, b
}

func newBackend(bopts *BatchOptions) (kernel.Backend, func(), error) {
	switch bopts.Backend {
	case BackendCPU:
		cfg := parallel.DefaultConfig().WithWorkers(bopts.Workers)
		return cpu.NewWithConfig(cfg), func() {}, nil
	case BackendWebGPU:
		return newGPUBackend()
	default:
		return nil, nil, fmt.Errorf("unknown backend %q: must be %s or %s", bopts.Backend, BackendCPU, BackendWebGPU)
	}
}
