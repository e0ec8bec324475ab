package cmd

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/counter/pkg/engine"
	"github.com/go-drift/counter/pkg/errors"
	"github.com/go-drift/counter/pkg/layout"
	"github.com/go-drift/counter/pkg/render"
)

func (c *cli) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the counter interactively on stdin",
		Long: `Run reads one command per line from stdin and redraws the counter after
every change:

  +, i, increment   increment the counter
  -, d, decrement   decrement the counter
  q, quit           exit

Configured button labels are accepted as commands too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			session, err := c.newSession(engine.WithPaintHandler(func(root layout.RenderObject) error {
				return render.Write(out, c.cfg.Format, root)
			}))
			if err != nil {
				return err
			}
			defer session.Close()

			return c.loop(cmd, session, cmd.InOrStdin())
		},
	}
}

func (c *cli) loop(cmd *cobra.Command, session *engine.Session, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(word) {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		}

		err := session.Activate(cmd.Context(), c.controlLabel(word))
		switch {
		case err == nil:
		case stderrors.Is(err, engine.ErrUnknownControl):
			fmt.Fprintf(cmd.ErrOrStderr(), "unknown command %q (use +, -, or q)\n", word)
		case stderrors.Is(err, engine.ErrControlDisabled), errors.KindOf(err) == errors.KindPanic:
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", stderrors.Unwrap(err))
		default:
			return err
		}
	}
	return scanner.Err()
}
