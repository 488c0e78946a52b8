package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/rive/hostgg"
	"github.com/gogpu/rive/scene"
)

func newInspectCommand(_ *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "List the artboards, animations, state machines and inputs of a scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())
			data, err := os.ReadFile(filepath.Clean(args[0]))
			if err != nil {
				return err
			}
			h := hostgg.New(hostgg.WithLogger(logger))
			s := scene.New(h.NewBinding(), h.NewFactory(), scene.WithLogger(logger))
			defer s.Close()
			if err := s.LoadFile(data); err != nil {
				return fmt.Errorf("load %q: %w", args[0], err)
			}
			return describe(cmd.OutOrStdout(), s)
		},
	}
}

// describe walks every artboard of the loaded file. It leaves s with the
// last artboard selected.
func describe(w io.Writer, s *scene.Session) error {
	for _, ab := range s.Artboards() {
		if err := s.LoadArtboard(ab); err != nil {
			return err
		}
		animations, machines := s.Animations(), s.StateMachines()
		fmt.Fprintf(w, "artboard %q\n", ab)

		for _, name := range animations {
			if err := s.LoadAnimation(name); err != nil {
				return err
			}
			fmt.Fprintf(w, "  animation %q %gx%g %.3fs %s\n",
				name, s.Width(), s.Height(), s.DurationSeconds(), s.Loop())
		}
		for _, name := range machines {
			if err := s.LoadStateMachine(name); err != nil {
				return err
			}
			fmt.Fprintf(w, "  state machine %q\n", name)
			for _, in := range s.Inputs() {
				fmt.Fprintf(w, "    input %q %s\n", in.Name, in.Kind)
			}
		}
		if s.IsTranslucent() {
			fmt.Fprintln(w, "  translucent")
		}
	}
	return nil
}
