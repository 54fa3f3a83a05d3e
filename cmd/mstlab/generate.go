package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstlab/builder"
	"github.com/katalvlaran/mstlab/render"
	"github.com/katalvlaran/mstlab/script"
)

func generateCmd(a *app) *cobra.Command {
	var (
		r      builder.Recipe
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:       "generate <" + strings.Join(builder.Kinds(), "|") + ">",
		Short:     "Generate a demo graph as a replayable script or a rendering",
		Args:      cobra.ExactArgs(1),
		ValidArgs: builder.Kinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			r.Kind = args[0]
			lim := a.limits()
			if r.MinWeight == 0 {
				r.MinWeight = int(math.Ceil(lim.Min))
			}
			if r.MaxWeight == 0 {
				r.MaxWeight = int(math.Floor(lim.Max))
				if lim.Max == 0 {
					r.MaxWeight = r.MinWeight + 99
				}
			}
			g, err := r.Build()
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}

			if format == "" || format == "lines" {
				header := fmt.Sprintf("%s n=%d rows=%d cols=%d p=%g seed=%d", r.Kind, r.N, r.Rows, r.Cols, r.P, r.Seed)
				return script.WriteLines(w, header, script.FromGraph(g))
			}
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			return render.Write(w, f, render.FromGraph(g), nil)
		},
	}
	fl := cmd.Flags()
	fl.IntVarP(&r.N, "nodes", "n", 5, "vertex count (all kinds but grid)")
	fl.IntVar(&r.Rows, "rows", 3, "grid rows")
	fl.IntVar(&r.Cols, "cols", 3, "grid columns")
	fl.Float64VarP(&r.P, "prob", "p", 0.3, "edge probability for random")
	fl.Int64Var(&r.Seed, "seed", 1, "RNG seed")
	fl.IntVar(&r.MinWeight, "min-weight", 0, "lowest weight (default: engine.min_weight)")
	fl.IntVar(&r.MaxWeight, "max-weight", 0, "highest weight (default: engine.max_weight)")
	fl.StringVarP(&format, "format", "f", "lines", "output: lines (a script for run/repl), dot, mermaid or json")
	fl.StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}
