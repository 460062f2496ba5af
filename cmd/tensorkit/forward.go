package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/born-ml/tensorkit/backend/cpu"
	"github.com/born-ml/tensorkit/nn"
	"github.com/born-ml/tensorkit/tensor"
)

// forwardOptions configures one forward evaluation.
type forwardOptions struct {
	Seed    uint64
	Hidden  int
	Batch   int // 0 = every row
	Classes int // 0 = largest label + 1
}

type forwardResult struct {
	Probs    *tensor.Tensor[float32, *cpu.Backend]
	Loss     float32
	Accuracy float32
}

func forwardHandler(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	var opts forwardOptions
	var err error
	if opts.Seed, err = flags.GetUint64("seed"); err != nil {
		return err
	}
	if opts.Hidden, err = flags.GetInt("hidden"); err != nil {
		return err
	}
	if opts.Batch, err = flags.GetInt("batch"); err != nil {
		return err
	}
	if opts.Classes, err = flags.GetInt("classes"); err != nil {
		return err
	}
	path, err := flags.GetString("data")
	if err != nil {
		return err
	}

	data := sampleDataset()
	if path != "" {
		if data, err = loadCSV(path, 0); err != nil {
			return err
		}
		slog.Debug("dataset loaded", "path", path, "samples", data.NumSamples())
	}

	res, err := runForward(data, opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Probs.Format())
	fmt.Fprintf(cmd.OutOrStdout(), "loss=%.6f accuracy=%.4f\n", res.Loss, res.Accuracy)
	return nil
}

func runForward(data *dataset, opts forwardOptions) (*forwardResult, error) {
	if opts.Hidden <= 0 {
		return nil, fmt.Errorf("hidden width must be positive, got %d", opts.Hidden)
	}

	batch := opts.Batch
	if batch == 0 {
		batch = data.NumSamples()
	}
	if batch <= 0 || batch > data.NumSamples() {
		return nil, fmt.Errorf("batch must be in [1, %d], got %d", data.NumSamples(), opts.Batch)
	}
	data = data.Head(batch)

	classes := opts.Classes
	if classes == 0 {
		classes = data.NumClasses()
	}
	if classes < 1 {
		return nil, fmt.Errorf("classes must be positive, got %d", opts.Classes)
	}

	backend := cpu.New()
	src := tensor.NewSource(opts.Seed)

	inputs, labels, err := data.Tensors(backend)
	if err != nil {
		return nil, err
	}
	targets := nn.Categorical[*cpu.Backend]{Classes: labels}

	model := nn.NewSequential[*cpu.Backend](
		nn.NewDense(nn.DefaultDenseConfig(inputs.Cols(), opts.Hidden), src, backend),
		nn.NewReLU[*cpu.Backend](),
		nn.NewDense(nn.DefaultDenseConfig(opts.Hidden, classes), src, backend),
		nn.NewSoftmax[*cpu.Backend](),
	)
	slog.Debug("model built", "seed", opts.Seed, "hidden", opts.Hidden, "classes", classes,
		"layers", model.Len(), "parameters", len(model.Parameters()))

	probs := model.Forward(inputs)
	slog.Debug("forward done", "output", probs.String())

	loss, err := nn.NewCrossEntropyLoss[*cpu.Backend]().Forward(probs, targets)
	if err != nil {
		return nil, err
	}
	acc, err := nn.NewAccuracy[*cpu.Backend]().Calculate(probs, targets)
	if err != nil {
		return nil, err
	}
	slog.Info("evaluated", "batch", batch, "loss", loss, "accuracy", acc)

	return &forwardResult{Probs: probs, Loss: loss, Accuracy: acc}, nil
}
