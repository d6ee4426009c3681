// Package main provides the CLI entry point for assetprep-go.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/assetprep-go/internal/config"
	"github.com/ukaji3/assetprep-go/internal/logging"
	"github.com/ukaji3/assetprep-go/pkg/assetprep"
	"github.com/ukaji3/assetprep-go/pkg/assetprep/parser"
)

// doneMessage is printed after a successful rename pass.
const doneMessage = "Done converting filenames to snake case!"

// app carries state shared by the subcommands once flags are parsed.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        config.Config
	log        *log.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "assetprep",
		Short: "Prepare game assets",
		Long: `assetprep-go renames sound files to snake case and converts
TextureAtlas sprite sheet descriptors into Lua tables.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Config file (default: ./assetprep.yaml if present)")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	cobra.CheckErr(config.BindFlags(a.v, rootCmd.PersistentFlags(), map[string]string{
		"log_level": "log-level",
	}))

	rootCmd.AddCommand(a.newRenameCmd(), a.newSheetCmd())
	return rootCmd
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.v, config.LoadOptions{ConfigFile: a.configFile})
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log = logger
	return nil
}

func (a *app) newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename [dir]",
		Short: "Rename files in a directory to snake case",
		Long: `Rename every file directly inside dir (default: current directory)
to lower-case words joined by underscores. Extensions are kept as is and
subdirectories are left alone. Renames cannot be undone.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runRename,
	}

	cmd.Flags().Bool("dry-run", false, "Print planned renames without renaming")
	cobra.CheckErr(config.BindFlags(a.v, cmd.Flags(), map[string]string{
		"rename.dry_run": "dry-run",
	}))
	return cmd
}

func (a *app) runRename(cmd *cobra.Command, args []string) error {
	dir := config.DefaultRenameDir
	if len(args) == 1 {
		dir = args[0]
	}

	report, err := assetprep.RenameDir(dir, assetprep.RenameOptions{
		DryRun: a.cfg.Rename.DryRun,
		Logger: a.log,
	})
	if err != nil {
		return fmt.Errorf("rename failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if report.DryRun {
		for _, r := range report.Renamed {
			fmt.Fprintf(out, "%s -> %s\n", r.From, r.To)
		}
		fmt.Fprintf(out, "Dry run: %d files would be renamed\n", len(report.Renamed))
		return nil
	}

	a.log.Info("rename finished", "dir", dir, "renamed", len(report.Renamed), "skipped", len(report.Skipped))
	fmt.Fprintln(out, doneMessage)
	return nil
}

func (a *app) newSheetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheet [input.xml]",
		Short: "Convert a sprite sheet descriptor to a Lua table",
		Long: `Convert a TextureAtlas XML descriptor (default: sheet.xml) into a Lua
table holding the image path and one sub-table per region.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runSheet,
	}

	flags := cmd.Flags()
	flags.StringP("output", "o", config.DefaultSheetOut, "Output Lua file path")
	flags.String("global", "", "Assign the table to this global instead of returning it")
	flags.String("xlsx", "", "Also write a region manifest workbook to this path")
	flags.String("region-tag", parser.DefaultRegionTag, "Element name of a region")
	flags.String("image-attr", parser.DefaultImageAttr, "Root attribute holding the image path")
	cobra.CheckErr(config.BindFlags(a.v, flags, map[string]string{
		"sheet.output":     "output",
		"sheet.global":     "global",
		"sheet.workbook":   "xlsx",
		"sheet.region_tag": "region-tag",
		"sheet.image_attr": "image-attr",
	}))
	return cmd
}

func (a *app) runSheet(cmd *cobra.Command, args []string) error {
	inputPath := config.DefaultSheetIn
	if len(args) == 1 {
		inputPath = args[0]
	}

	sc := a.cfg.Sheet
	atlas, err := assetprep.ConvertSheet(inputPath, sc.Output, assetprep.ConvertOptions{
		Parse:        sc.ParseOptions(),
		Lua:          sc.LuaOptions(),
		WorkbookPath: sc.Workbook,
		Logger:       a.log,
	})
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d regions to %s\n", atlas.Len(), sc.Output)
	return nil
}
