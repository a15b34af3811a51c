package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/midbel/pareto"
	"github.com/midbel/pareto/internal/config"
	"github.com/midbel/pareto/internal/logger"
	"github.com/midbel/pareto/internal/server"
	"github.com/midbel/pareto/load"
)

var version = "dev"

const stdout = "-"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "pareto",
		Short:         "Draw pareto charts as SVG",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("config", "c", "", "configuration file")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().Float64("width", 0, "chart width")
	root.PersistentFlags().Float64("height", 0, "chart height")
	root.PersistentFlags().String("palette", "", "bar colours: category10, tableau10 or a colour name")
	root.PersistentFlags().String("markers", "", "markers on the cumulative line: none, circle, square, diamond")
	root.PersistentFlags().Bool("grid", false, "draw grid lines for the value axis")
	root.PersistentFlags().String("line-label", "", "title of the cumulative line: none, start, end")

	render := &cobra.Command{
		Use:   "render [files...]",
		Short: "Render one chart per input file",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRender,
	}
	render.Flags().StringP("output", "o", "", "output directory, - writes to stdout")
	render.Flags().Int("name-col", -1, "index of the name column")
	render.Flags().Int("value-col", -1, "index of the value column")
	render.Flags().StringP("delimiter", "d", "", "field delimiter of CSV files")
	render.Flags().IntP("jobs", "j", runtime.NumCPU(), "files rendered in parallel, 0 for no limit")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve charts over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serve.Flags().StringP("addr", "a", "", "listening address")

	dump := &cobra.Command{
		Use:   "config",
		Short: "Write the effective configuration to a file",
		Args:  cobra.NoArgs,
		RunE:  runConfig,
	}
	dump.Flags().String("dump", "", "file written (yaml, json or toml)")
	dump.MarkFlagRequired("dump")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	root.AddCommand(render, serve, dump, versionCmd)
	return root
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.OutputDir == stdout && len(args) > 1 {
		return errors.New("stdout output accepts a single input file")
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	if jobs <= 0 {
		jobs = -1
	}
	var (
		chart = cfg.Chart()
		opts  = load.Options{
			Comma:       cfg.Delim(),
			NameColumn:  cfg.NameColumn,
			ValueColumn: cfg.ValueColumn,
		}
		grp, ctx = errgroup.WithContext(cmd.Context())
	)
	grp.SetLimit(jobs)
	for _, file := range args {
		file := file
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return renderFile(cmd.OutOrStdout(), file, cfg, chart, opts)
		})
	}
	return grp.Wait()
}

func renderFile(w io.Writer, file string, cfg *config.Config, chart pareto.Chart, opts load.Options) error {
	items, err := load.File(file, opts)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		logger.Warnf("%s: no items, empty chart", file)
	}
	surface := pareto.NewSurface(cfg.Width, cfg.Height)
	surface.Title = load.Ident(file)
	chart.Render(surface, items)

	if cfg.OutputDir == stdout {
		_, err = surface.WriteTo(w)
		return errors.Wrap(err, "writing chart")
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return err
	}
	out := filepath.Join(cfg.OutputDir, load.Ident(file)+".svg")
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := surface.WriteTo(f); err != nil {
		return errors.Wrapf(err, "writing %s", out)
	}
	logger.Infof("%s: %d items written to %s", file, len(items), out)
	return f.Close()
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(server.Config{
		Addr:   cfg.Addr,
		Width:  cfg.Width,
		Height: cfg.Height,
		Chart:  cfg.Chart(),
	})
	return srv.Start(ctx)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	file, _ := cmd.Flags().GetString("dump")
	if err := cfg.Save(file); err != nil {
		return err
	}
	logger.Infof("configuration written to %s", file)
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(file)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.SetLevel(cfg.LogLevel)
	logger.Debugf("config: %+v", *cfg)
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("width") {
		cfg.Width, _ = flags.GetFloat64("width")
	}
	if flags.Changed("height") {
		cfg.Height, _ = flags.GetFloat64("height")
	}
	if flags.Changed("palette") {
		cfg.Palette, _ = flags.GetString("palette")
	}
	if flags.Changed("markers") {
		cfg.Markers, _ = flags.GetString("markers")
	}
	if flags.Changed("line-label") {
		cfg.LineLabel, _ = flags.GetString("line-label")
	}
	if flags.Changed("grid") {
		cfg.Grid, _ = flags.GetBool("grid")
	}
	if flags.Lookup("output") != nil && flags.Changed("output") {
		cfg.OutputDir, _ = flags.GetString("output")
	}
	if flags.Lookup("name-col") != nil && flags.Changed("name-col") {
		cfg.NameColumn, _ = flags.GetInt("name-col")
	}
	if flags.Lookup("value-col") != nil && flags.Changed("value-col") {
		cfg.ValueColumn, _ = flags.GetInt("value-col")
	}
	if flags.Lookup("delimiter") != nil && flags.Changed("delimiter") {
		cfg.Delimiter, _ = flags.GetString("delimiter")
	}
	if flags.Lookup("addr") != nil && flags.Changed("addr") {
		cfg.Addr, _ = flags.GetString("addr")
	}
}
