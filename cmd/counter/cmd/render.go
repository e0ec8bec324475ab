package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/counter/pkg/render"
)

func (c *cli) renderCmd() *cobra.Command {
	var (
		presses []string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Apply presses headlessly and write one snapshot",
		Long: `Render mounts the counter, activates each --press control in order and
writes the resulting screen once.

Examples:
  counter render
  counter render --press increment,increment --format json
  counter render --start 0 --press - --format png --out counter.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := c.newSession()
			if err != nil {
				return err
			}
			defer session.Close()

			for _, press := range presses {
				if err := session.Activate(cmd.Context(), c.controlLabel(press)); err != nil {
					return err
				}
			}

			write := func(w io.Writer) error {
				return render.Write(w, c.cfg.Format, session.RenderRoot())
			}
			if out == "" {
				err = write(cmd.OutOrStdout())
			} else {
				err = writeFile(out, write)
			}
			if err != nil {
				return err
			}
			c.logger.Debug().Int("presses", len(presses)).Str("out", out).Msg("rendered")
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&presses, "press", "p", nil, "controls to activate, in order (increment, decrement, + or -)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout")
	return cmd
}

// createFile opens render output files. Tests replace it.
var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// writeFile writes through write into path. A failed Close is returned,
// since it can mean the file was not fully flushed.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := createFile(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	return write(f)
}
