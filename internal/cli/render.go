package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/rive/internal/golden"
)

// renderOptions are the flags of the render command.
type renderOptions struct {
	rivs        string
	destination string
	verbose     bool
	golden.Config
}

// errNoInput is returned when --rivs is missing or holds no files.
var errNoInput = errors.New("no scene files to render")

func newRenderCommand(opts *Options) *cobra.Command {
	ro := renderOptions{Config: golden.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render every scene file in a directory into a grid of frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())
			if err := ro.applyEnv(cmd, opts.vars); err != nil {
				return err
			}
			if ro.rivs == "" || ro.destination == "" {
				return fmt.Errorf("--rivs and --destination are required")
			}

			files, err := golden.SceneFiles(ro.rivs)
			if err != nil {
				return fmt.Errorf("list %q: %w", ro.rivs, err)
			}
			if len(files) == 0 {
				return fmt.Errorf("%w in %q", errNoInput, ro.rivs)
			}

			r, err := golden.NewRenderer(ro.Config, logger)
			if err != nil {
				return err
			}
			logger.Info("rendering", "files", len(files), "size", ro.Size())
			for _, f := range files {
				if ro.verbose {
					logger.Info("loading", "file", f)
				}
				out, err := r.RenderFile(f, ro.destination)
				if err != nil {
					return err
				}
				if ro.verbose {
					logger.Info("wrote", "png", out)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ro.rivs, "rivs", "", "Directory of scene files to render")
	cmd.Flags().StringVar(&ro.destination, "destination", "", "Directory for the rendered PNGs")
	cmd.Flags().IntVar(&ro.Cell, "cell", ro.Cell, "Side of one frame cell in pixels")
	cmd.Flags().IntVar(&ro.Grid, "grid", ro.Grid, "Cells per row and column")
	cmd.Flags().IntVar(&ro.Gap, "gap", ro.Gap, "Pixels between cells")
	cmd.Flags().StringVar(&ro.Artboard, "artboard", "", "Artboard to render (default artboard if empty)")
	cmd.Flags().StringVar(&ro.Animation, "animation", "", "Animation to render (first animation if empty)")
	cmd.Flags().BoolVarP(&ro.verbose, "verbose", "v", false, "Log every file")
	return cmd
}

// applyEnv fills flags the user did not set from RIVEGOLDEN_* variables.
func (ro *renderOptions) applyEnv(cmd *cobra.Command, vars map[string]string) error {
	var e renderEnv
	if err := parseEnv(&e, vars); err != nil {
		return err
	}
	unset := func(name string) bool { return !cmd.Flags().Changed(name) }

	if unset("rivs") && e.Rivs != "" {
		ro.rivs = e.Rivs
	}
	if unset("destination") && e.Destination != "" {
		ro.destination = e.Destination
	}
	if unset("cell") && e.Cell != 0 {
		ro.Cell = e.Cell
	}
	if unset("grid") && e.Grid != 0 {
		ro.Grid = e.Grid
	}
	if unset("gap") && e.Gap != nil {
		ro.Gap = *e.Gap
	}
	if unset("artboard") && e.Artboard != "" {
		ro.Artboard = e.Artboard
	}
	if unset("animation") && e.Animation != "" {
		ro.Animation = e.Animation
	}
	if unset("verbose") && e.Verbose {
		ro.verbose = true
	}
	return nil
}
