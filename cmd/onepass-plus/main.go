// Command onepass-plus is the CLI frontend for the OnePass+ alternative
// paths engine: it parses a .gr graph file, runs the search, and prints
// the accepted paths as text or JSON. One binary per algorithm — ESX and
// Penalty, if ever added alongside OnePass+, would each get their own
// cmd/ entry point rather than a shared subcommand tree.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/onepassplus/onepass-plus/altpath"
	"github.com/onepassplus/onepass-plus/graph"
	"github.com/onepassplus/onepass-plus/grparser"
)

var (
	graphFile   string
	source      int
	destination int
	kPaths      int
	threshold   float64
	format      string
	configFile  string
	verbose     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onepass-plus",
		Short: "Compute k pairwise-dissimilar alternative paths with OnePass+",
		Long: `onepass-plus reads a directed weighted graph in .gr format and computes
up to k loopless paths from --source to --destination such that every
pair of returned paths has weighted edge-overlap ratio at most
--similarity-threshold.`,
		SilenceUsage: true,
		RunE:         runOnePassPlus,
	}

	flags := cmd.Flags()
	flags.StringVar(&graphFile, "graph-file", "", "path to a .gr format graph file")
	flags.IntVar(&source, "source", 0, "source vertex")
	flags.IntVar(&destination, "destination", 0, "destination vertex")
	flags.IntVar(&kPaths, "k-paths", 1, "number of alternative paths to compute (k >= 1)")
	flags.Float64Var(&threshold, "similarity-threshold", 0.5, "maximum pairwise edge-overlap ratio, in [0, 1]")
	flags.StringVar(&format, "format", "text", `output format: "text" or "json"`)
	flags.StringVar(&configFile, "config", "", "optional YAML config file defaulting k-paths/similarity-threshold/format")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log expansion and pruning decisions at debug level")

	for _, name := range []string{"graph-file", "source", "destination"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	return cmd
}

func runOnePassPlus(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		if err := applyConfigDefaults(configFile, cmd.Flags()); err != nil {
			return fmt.Errorf("onepass-plus: %w", err)
		}
	}

	if format != "text" && format != "json" {
		return fmt.Errorf("onepass-plus: --format must be \"text\" or \"json\", got %q", format)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.New().String())

	f, err := os.Open(graphFile)
	if err != nil {
		return fmt.Errorf("onepass-plus: %w", err)
	}
	defer f.Close()

	g, err := grparser.Parse(f)
	if err != nil {
		return fmt.Errorf("onepass-plus: %w", err)
	}

	logger.Info("query received",
		"graph_file", graphFile,
		"source", source,
		"destination", destination,
		"k_paths", kPaths,
		"similarity_threshold", threshold,
	)

	start := time.Now()
	paths, err := altpath.Run(g, graph.Vertex(source), graph.Vertex(destination), kPaths, threshold, altpath.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("onepass-plus: %w", err)
	}
	logger.Info("query complete", "paths_admitted", len(paths), "elapsed", time.Since(start))

	return writeResult(cmd.OutOrStdout(), paths)
}

func writeResult(w io.Writer, paths []altpath.Path) error {
	if format == "json" {
		return writeJSONResult(w, paths)
	}
	return writeTextResult(w, paths)
}

type pathOutput struct {
	Vertices []graph.Vertex `json:"vertices"`
	Length   float64        `json:"length"`
}

func writeJSONResult(w io.Writer, paths []altpath.Path) error {
	out := make([]pathOutput, len(paths))
	for i, p := range paths {
		out[i] = pathOutput{Vertices: p.Vertices, Length: p.Length}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func writeTextResult(w io.Writer, paths []altpath.Path) error {
	if len(paths) == 0 {
		fmt.Fprintln(w, "no paths found")
		return nil
	}
	for i, p := range paths {
		fmt.Fprintf(w, "path %d: length=%g vertices=%v\n", i, p.Length, p.Vertices)
	}
	return nil
}
