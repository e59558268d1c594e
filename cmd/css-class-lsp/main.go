package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/jsvensson/css-class-lsp/internal/config"
	"github.com/jsvensson/css-class-lsp/internal/engine"
	"github.com/jsvensson/css-class-lsp/internal/fileuri"
	"github.com/jsvensson/css-class-lsp/internal/index"
	"github.com/jsvensson/css-class-lsp/internal/lsp"
)

var (
	flagVerbose int
	flagLogFile string
	flagConfig  string
	flagRoot    string
	flagCfgRoot string
	flagWrite   bool
	flagCheck   bool
	version     = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:   "css-class-lsp",
	Short: "Language server completing CSS class names in HTML and JSX",
	Long: "Runs the language server on stdin/stdout. Class names come from the " +
		"stylesheets in the workspace and the Bootstrap 5.3 utility classes.",
	Version:      version,
	Args:         cobra.NoArgs,
	RunE:         runServe,
	SilenceUsage: true,
}

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "List the stylesheets and classes found below a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScan,
}

var completeCmd = &cobra.Command{
	Use:   "complete FILE LINE COL",
	Short: "Print the completions at a position (0-based line, UTF-16 column)",
	Args:  cobra.ExactArgs(3),
	RunE:  runComplete,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as HCL",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

var configFmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format configuration files",
	Long:  "Format one or more configuration files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConfigFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentPreRun = configureLogging

	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (can be repeated)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "write logs to a file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "configuration file (default: "+config.FileName+" in the workspace root)")

	rootCmd.Flags().Bool("stdio", true, "communicate over stdin/stdout (the only transport)")

	completeCmd.Flags().StringVar(&flagRoot, "root", "", "workspace root to scan (default: the file's directory)")
	configCmd.Flags().StringVar(&flagCfgRoot, "root", ".", "workspace root")
	configCmd.Flags().BoolVarP(&flagWrite, "write", "w", false, "write "+config.FileName+" to the workspace root")
	configFmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")

	configCmd.AddCommand(configFmtCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func configureLogging(cmd *cobra.Command, _ []string) {
	// The server logs warnings by default; offline commands stay quiet.
	verbosity := flagVerbose
	if !cmd.HasParent() {
		verbosity++
	}
	var path *string
	if flagLogFile != "" {
		path = &flagLogFile
	}
	commonlog.Configure(verbosity, path)
}

func runServe(cmd *cobra.Command, args []string) error {
	var opts []lsp.Option
	if flagConfig != "" {
		opts = append(opts, lsp.WithConfigFile(flagConfig))
	}
	return lsp.NewServer(version, opts...).Run()
}

// loadConfig returns the --config file if given, otherwise the workspace
// configuration of root.
func loadConfig(root string) (config.Config, error) {
	if flagConfig != "" {
		return config.Load(flagConfig)
	}
	return config.LoadWorkspace(root)
}

func runScan(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", root, err)
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	files, err := cfg.Scanner().Scan(root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	file := color.New(color.FgCyan, color.Bold)
	summary := color.New(color.FgGreen)

	idx := index.New()
	idx.Merge(files)

	for _, uri := range idx.Files() {
		name := uri
		if path, ok := fileuri.ToPath(uri); ok {
			if rel, err := filepath.Rel(root, path); err == nil {
				name = rel
			}
		}
		file.Fprintln(out, name)

		classes, _ := idx.Get(uri)
		if sorted := classes.Sorted(); len(sorted) > 0 {
			fmt.Fprintf(out, "  %s\n", strings.Join(sorted, " "))
		}
	}

	summary.Fprintf(out, "%d stylesheet(s), %d unique class(es)\n", idx.Len(), len(idx.Snapshot()))
	return nil
}

func runComplete(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}
	line, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("parsing line: %w", err)
	}
	col, err := strconv.ParseUint(args[2], 10, 32)
	if err != nil {
		return fmt.Errorf("parsing column: %w", err)
	}

	root := flagRoot
	if root == "" {
		root = filepath.Dir(path)
	}
	cfg, err := loadConfig(root)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	files, err := cfg.Scanner().Scan(root)
	if err != nil {
		return err
	}

	idx := index.New()
	idx.Merge(files)
	e := engine.New(lsp.NewDocumentStore(), idx, cfg.EngineOptions()...)

	names, ok := e.Complete(fileuri.FromPath(path), uint32(line), uint32(col))
	if !ok {
		fmt.Fprintln(cmd.ErrOrStderr(), "no class attribute at this position")
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagCfgRoot)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	rendered := config.Render(cfg)

	if !flagWrite {
		_, err := cmd.OutOrStdout().Write(rendered)
		return err
	}

	path := filepath.Join(flagCfgRoot, config.FileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, rendered, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted := config.Format(content)
		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
