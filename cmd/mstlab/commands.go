package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mstlab/prim_kruskal"
	"github.com/katalvlaran/mstlab/render"
	"github.com/katalvlaran/mstlab/script"
	"github.com/katalvlaran/mstlab/server"
	"github.com/katalvlaran/mstlab/session"
)

var errCommandsFailed = errors.New("one or more commands failed")

func runCmd(a *app) *cobra.Command {
	var (
		stopOnError bool
		steps       bool
	)
	cmd := &cobra.Command{
		Use:   "run <script>...",
		Short: "Run command scripts (.yaml, .hcl or line format) against one graph",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cmds []script.Command
			for _, path := range args {
				c, err := script.Load(path)
				if err != nil {
					return err
				}
				cmds = append(cmds, c...)
			}

			opts := []script.RunOption{script.WithLogger(a.log)}
			if stopOnError {
				opts = append(opts, script.WithStopOnError())
			}
			outs, err := script.Run(cmd.Context(), a.newSession(), cmds, opts...)
			script.Report(cmd.OutOrStdout(), outs, steps)
			if err != nil {
				return err
			}
			for _, o := range outs {
				if o.Err != nil {
					return errCommandsFailed
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "stop at the first failing command")
	cmd.Flags().BoolVar(&steps, "steps", false, "print every MST snapshot, not only the final one")

	return cmd
}

func replCmd(a *app) *cobra.Command {
	var steps bool
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Edit a graph interactively, one command per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			sess := a.newSession()
			var hl prim_kruskal.Snapshot

			fmt.Fprintln(out, `mstlab repl; type "help" for commands, "quit" to leave`)
			sc := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "mstlab> ")
				if !sc.Scan() {
					fmt.Fprintln(out)
					return sc.Err()
				}
				line := strings.TrimSpace(sc.Text())
				switch line {
				case "quit", "exit":
					return nil
				case "help":
					fmt.Fprint(out, script.Usage())
					continue
				}

				c, err := script.ParseLine(line)
				if err != nil {
					fmt.Fprintf(out, "error: %v\n", err)
					continue
				}
				if c == nil {
					continue
				}
				o := script.Exec(cmd.Context(), sess, *c, &hl)
				script.WriteOutcome(out, o, steps)
			}
		},
	}
	cmd.Flags().BoolVar(&steps, "steps", true, "print every MST snapshot")

	return cmd
}

func serveCmd(a *app) *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the session HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Server
			if listen != "" {
				cfg.Listen = listen
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			reg := session.NewRegistry(a.limits(), a.log)
			srv := server.New(reg, cfg, a.log)
			if err := srv.Start(ctx); err != nil {
				a.log.Error("server stopped", zap.Error(err))
				return err
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address; overrides server.listen")

	return cmd
}

func exportCmd(a *app) *cobra.Command {
	var (
		format    string
		highlight string
		start     string
		step      int
		output    string
	)
	cmd := &cobra.Command{
		Use:   "export <script>",
		Short: "Run a script and render the resulting graph as DOT, Mermaid or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			cmds, err := script.Load(args[0])
			if err != nil {
				return err
			}
			sess := a.newSession()
			if _, err = script.Run(cmd.Context(), sess, cmds,
				script.WithLogger(a.log), script.WithStopOnError()); err != nil {
				return err
			}

			hl, err := highlightFor(cmd.Context(), sess, highlight, start, step)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}

			return render.Write(w, f, sess.View(), hl)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&format, "format", "f", string(render.FormatDOT), "output format (dot, mermaid, json)")
	fl.StringVar(&highlight, "highlight", "", "highlight an MST computed with kruskal or prim")
	fl.StringVar(&start, "start", "", "start vertex for prim")
	fl.IntVar(&step, "step", 0, "highlight the N-th snapshot instead of the final tree")
	fl.StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

// highlightFor runs the requested MST method; step 0 selects the final snapshot.
func highlightFor(ctx context.Context, sess *session.Session, method, start string, step int) (prim_kruskal.Snapshot, error) {
	if method == "" {
		if step != 0 {
			return nil, errors.New("--step requires --highlight")
		}
		return nil, nil
	}
	m, err := prim_kruskal.ParseMethod(method)
	if err != nil {
		return nil, err
	}

	var steps prim_kruskal.Steps
	if m == prim_kruskal.MethodPrim {
		steps, err = sess.Prim(ctx, start)
	} else {
		steps, err = sess.Kruskal(ctx)
	}
	if err != nil {
		return nil, err
	}
	if step == 0 {
		return steps.Final(), nil
	}
	if step < 1 || step > steps.Len() {
		return nil, fmt.Errorf("--step must be in 1..%d", steps.Len())
	}

	return steps[step-1], nil
}
