package main

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/jbesoto/life/internal/config"
	"github.com/jbesoto/life/internal/grid"
	"github.com/jbesoto/life/internal/pattern"
	"github.com/jbesoto/life/internal/render"
	"github.com/jbesoto/life/internal/stats"
	"github.com/jbesoto/life/internal/storage"
	"github.com/jbesoto/life/internal/tui"
)

var (
	dataDir     string
	outputPath  string
	probability float64
	seed        int64
	patternName string
	presetName  string
	configFile  string
	keep        bool
)

// main registers the life commands and exits with status 1 if command
// execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "life",
		Short: "game of life seed-state generator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".life", "data directory")

	generateCmd := &cobra.Command{
		Use:   "generate ROWS COLS",
		Short: "generate a random board and write it to a file",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("%w: expected ROWS COLS, got %d argument(s)", grid.ErrUsage, len(args))
			}
			return nil
		},
		RunE: runGenerate,
	}
	generateCmd.Flags().StringVar(&outputPath, "out", config.DefaultOutput, "output file path")
	generateCmd.Flags().Float64Var(&probability, "prob", config.DefaultProbability, "alive probability")
	generateCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	generateCmd.Flags().StringVar(&patternName, "pattern", "", "stamp a named pattern after the random fill")
	generateCmd.Flags().StringVar(&presetName, "preset", "", "use preset configuration")
	generateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	generateCmd.Flags().BoolVar(&keep, "keep", false, "also archive the board in the data directory")

	previewCmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "render a board file in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPreview,
	}

	statsCmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "density summary of a board file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStats,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list generation presets",
		RunE:  listPresetsCmd,
	}

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list seed patterns",
		RunE:  listPatternsCmd,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list archived boards",
		RunE:  listBoards,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive board generation",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&outputPath, "out", config.DefaultOutput, "output file path")
	tuiCmd.Flags().Float64Var(&probability, "prob", config.DefaultProbability, "alive probability")
	tuiCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = fresh)")

	rootCmd.AddCommand(generateCmd, previewCmd, statsCmd, presetsCmd, patternsCmd, listCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves preset, config file, flags, and positional
// dimension arguments into one Config. Flags changed on the command
// line override config-file values, which override preset values.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if presetName != "" {
		p := config.GetPreset(presetName)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	rows, err := config.ParseDimension("rows", args[0])
	if err != nil {
		return nil, err
	}
	cols, err := config.ParseDimension("cols", args[1])
	if err != nil {
		return nil, err
	}
	cfg.Rows = rows
	cfg.Cols = cols

	if cmd.Flags().Changed("prob") {
		cfg.Probability = probability
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = outputPath
	}
	if cmd.Flags().Changed("pattern") {
		cfg.Pattern = patternName
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	g, err := grid.Generate(rng, cfg.Rows, cfg.Cols, cfg.Probability)
	if err != nil {
		return err
	}

	if cfg.Pattern != "" {
		p, ok := pattern.Get(cfg.Pattern)
		if !ok {
			return fmt.Errorf("unknown pattern: %s (available: %v)", cfg.Pattern, pattern.List())
		}
		if err := pattern.StampCentered(g, p); err != nil {
			return err
		}
	}

	if err := grid.WriteFile(cfg.Output, g); err != nil {
		return err
	}

	if keep {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(g, cfg.Probability, cfg.Seed, cfg.Pattern)
		if err != nil {
			return err
		}
		fmt.Printf("archived: %s\n", id)
	}

	fmt.Printf("wrote %s (%dx%d, %d alive, seed %d)\n",
		cfg.Output, g.Rows(), g.Cols(), g.AliveCount(), cfg.Seed)
	return nil
}

func boardPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return config.DefaultOutput
}

func runPreview(cmd *cobra.Command, args []string) error {
	path := boardPath(args)

	g, err := grid.ReadFile(path)
	if err != nil {
		return err
	}

	fmt.Println(render.Title.Render(path))
	fmt.Println(render.Board(g))
	fmt.Println(render.Subtle.Render(fmt.Sprintf("%dx%d, %d alive", g.Rows(), g.Cols(), g.AliveCount())))
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	path := boardPath(args)

	g, err := grid.ReadFile(path)
	if err != nil {
		return err
	}

	s := stats.Summarize(g)

	fmt.Printf("board: %s\n", path)
	fmt.Printf("size: %dx%d\n", s.Rows, s.Cols)
	fmt.Printf("alive: %d (%.2f%%)\n", s.AliveCount, s.Density*100)
	if s.Empty {
		fmt.Println("no live cells")
		return nil
	}
	fmt.Printf("bounding box: rows %d-%d, cols %d-%d\n\n", s.MinRow, s.MaxRow, s.MinCol, s.MaxCol)

	graph := asciigraph.Plot(stats.RowDensities(g),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("per-row live fraction"),
	)
	fmt.Println(graph)
	return nil
}

func listPresetsCmd(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tPROB\tPATTERN")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%dx%d\t%.2f\t%s\n", name, p.Rows, p.Cols, p.Probability, p.Pattern)
	}
	return w.Flush()
}

func listPatternsCmd(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE")
	for _, name := range pattern.List() {
		p, _ := pattern.Get(name)
		fmt.Fprintf(w, "%s\t%dx%d\n", name, p.Height(), p.Width())
	}
	return w.Flush()
}

func listBoards(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	boards, err := st.List()
	if err != nil {
		return err
	}

	if len(boards) == 0 {
		fmt.Println("no boards found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSIZE\tPROB\tSEED\tALIVE\tPATTERN")
	for _, b := range boards {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%.2f\t%d\t%d\t%s\n",
			b.ID,
			b.Timestamp.Format("2006-01-02 15:04:05"),
			b.Rows,
			b.Cols,
			b.Probability,
			b.Seed,
			b.AliveCount,
			b.Pattern,
		)
	}
	return w.Flush()
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	cfg.Probability = probability
	cfg.Seed = seed
	cfg.Output = outputPath

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	m, err := tui.NewSession(cfg, st)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
