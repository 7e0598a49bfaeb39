package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/faa-drone-registry/internal/adapter/csvreport"
	"github.com/couchcryptid/faa-drone-registry/internal/adapter/faa"
	"github.com/couchcryptid/faa-drone-registry/internal/archive"
	"github.com/couchcryptid/faa-drone-registry/internal/config"
	"github.com/couchcryptid/faa-drone-registry/internal/observability"
	"github.com/couchcryptid/faa-drone-registry/internal/pipeline"
)

// app holds what every subcommand needs once configuration is loaded.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var dataDir string

	rootCmd := &cobra.Command{
		Use:           "dronereg",
		Short:         "Extract drone registrations from the FAA aircraft registry.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}
			a.cfg = cfg
			a.logger = observability.NewLogger(cfg)
			a.metrics = observability.NewMetrics()
			slog.SetDefault(a.logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory the archive and report are written to (default $DATA_DIR or .)")

	rootCmd.AddCommand(
		newReportCmd(a),
		newFetchCmd(a),
		newMembersCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func newReportCmd(a *app) *cobra.Command {
	var database string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write ReleasableDrone.csv from a local or freshly downloaded archive.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.report(cmd.Context(), database)
			a.writeMetrics()
			return err
		},
	}
	cmd.Flags().StringVarP(&database, "database", "d", "", "path to ReleasableAircraft.zip (downloaded when empty)")
	return cmd
}

func newFetchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Download ReleasableAircraft.zip into the data directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.fetch(cmd.Context())
			a.writeMetrics()
			return err
		},
	}
}

func newMembersCmd(a *app) *cobra.Command {
	var database string
	cmd := &cobra.Command{
		Use:   "members",
		Short: "List the files inside the archive.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			arch, err := a.openArchive(cmd.Context(), database)
			if err != nil {
				return err
			}
			for _, name := range arch.Members() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&database, "database", "d", "", "path to ReleasableAircraft.zip (downloaded when empty)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version.",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

func (a *app) report(ctx context.Context, database string) error {
	if err := validDir(a.cfg.DataDir); err != nil {
		return err
	}
	arch, err := a.openArchive(ctx, database)
	if err != nil {
		return err
	}

	out := filepath.Join(a.cfg.DataDir, config.ReportFileName)
	w, err := csvreport.Create(out)
	if err != nil {
		return err
	}

	stats, err := pipeline.New(arch, w, a.logger, a.metrics).Run(ctx)
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	a.logger.Info("saved drone data", "path", out, "records", stats.Written())
	return nil
}

func (a *app) fetch(ctx context.Context) error {
	if err := validDir(a.cfg.DataDir); err != nil {
		return err
	}
	arch, err := a.download(ctx)
	if err != nil {
		return err
	}

	out := filepath.Join(a.cfg.DataDir, config.ArchiveFileName)
	if err := arch.Save(out); err != nil {
		return err
	}
	a.logger.Info("saved database", "path", out, "bytes", arch.Size())
	return nil
}

// openArchive loads database when given, and downloads the archive otherwise.
func (a *app) openArchive(ctx context.Context, database string) (*archive.Archive, error) {
	if database == "" {
		return a.download(ctx)
	}
	if err := validFile(database); err != nil {
		return nil, err
	}
	return archive.Load(database)
}

func (a *app) download(ctx context.Context) (*archive.Archive, error) {
	client := faa.NewClient(a.cfg.DatabaseURL, a.cfg.DownloadTimeout, a.cfg.DownloadMaxTries, a.logger, a.metrics)
	data, err := client.Download(ctx)
	if err != nil {
		return nil, err
	}
	return archive.FromBytes(data)
}

func (a *app) writeMetrics() {
	if a.cfg.MetricsTextfile == "" {
		return
	}
	if err := a.metrics.WriteTextfile(a.cfg.MetricsTextfile); err != nil {
		a.logger.Warn("failed to write metrics textfile", "path", a.cfg.MetricsTextfile, "error", err)
	}
}

var errInvalidPath = errors.New("invalid path")

func validDir(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: directory %s", errInvalidPath, path)
	}
	return nil
}

func validFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: file %s", errInvalidPath, path)
	}
	return nil
}
