package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	yamlcfg "github.com/tplcheck/tplcheck/internal/adapters/outbound/config"
	"github.com/tplcheck/tplcheck/internal/adapters/outbound/gitinfo"
	"github.com/tplcheck/tplcheck/internal/adapters/outbound/report"
	"github.com/tplcheck/tplcheck/internal/adapters/outbound/selector"
	"github.com/tplcheck/tplcheck/internal/adapters/outbound/skipset"
	"github.com/tplcheck/tplcheck/internal/adapters/outbound/toolrunner"
	"github.com/tplcheck/tplcheck/internal/adapters/outbound/tui"
	"github.com/tplcheck/tplcheck/internal/application"
	"github.com/tplcheck/tplcheck/internal/domain"
	"github.com/tplcheck/tplcheck/internal/logging"
)

func newRunCmd() *cobra.Command {
	var (
		tool           string
		template       string
		logDir         string
		pattern        string
		recursive      bool
		skipPriorOK    bool
		noUI           bool
		exitAfter      bool
		timeoutSeconds int
		workers        int
		strict         bool
		debug          bool
	)

	cmd := &cobra.Command{
		Use:   "run [data-root]",
		Short: "Validate all matching files under a directory",
		Long:  "Discover files under data-root, run the parsing tool against each with bounded parallelism, and write a markdown report plus OK/failed path lists into the log directory. Flags not passed explicitly fall back to .tplcheck.yaml in the working directory.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := yamlcfg.New().Load(".")
			if err != nil {
				return fmt.Errorf("loading defaults: %w", err)
			}

			flagSet := cmd.Flags().Changed
			stringDefault := func(changed bool, flag, fromFile string) string {
				if !changed && fromFile != "" {
					return fromFile
				}
				return flag
			}
			boolDefault := func(changed bool, flag bool, fromFile *bool) bool {
				if !changed && fromFile != nil {
					return *fromFile
				}
				return flag
			}

			dataRoot := defaults.DataRoot
			if len(args) == 1 {
				dataRoot = args[0]
			}
			if dataRoot == "" {
				return fmt.Errorf("data root must be given as an argument or via data_root in .tplcheck.yaml")
			}
			dataRoot = domain.NormalizePath(dataRoot)

			cfg := domain.RunConfig{
				ToolPath:     stringDefault(flagSet("tool"), tool, defaults.Tool),
				TemplatePath: stringDefault(flagSet("template"), template, defaults.Template),
				DataRoot:     dataRoot,
				LogDir:       stringDefault(flagSet("log-dir"), logDir, defaults.LogDir),
				Pattern:      stringDefault(flagSet("pattern"), pattern, defaults.Pattern),
				Recursive:    boolDefault(flagSet("recursive"), recursive, defaults.Recursive),
				SkipPriorOK:  boolDefault(flagSet("skip-prior-ok"), skipPriorOK, defaults.SkipPriorOK),
				NoUI:         boolDefault(flagSet("noui"), noUI, defaults.NoUI),
				ExitAfter:    boolDefault(flagSet("exit"), exitAfter, defaults.ExitAfter),
				Timeout:      time.Duration(timeoutSeconds) * time.Second,
				Workers:      workers,
			}
			if !flagSet("timeout") && defaults.TimeoutSeconds > 0 {
				cfg.Timeout = time.Duration(defaults.TimeoutSeconds) * time.Second
			}
			if !flagSet("workers") && defaults.Workers > 0 {
				cfg.Workers = defaults.Workers
			}
			if cfg.LogDir == "" {
				cfg.LogDir = filepath.Join(cfg.DataRoot, "validation_logs")
			}
			if cfg.ToolPath != "" {
				cfg.ToolPath = domain.NormalizePath(cfg.ToolPath)
			}
			if cfg.TemplatePath != "" {
				cfg.TemplatePath = domain.NormalizePath(cfg.TemplatePath)
			}

			log, err := logging.New(debug)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			defer log.Sync()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, tui.RenderConfig(cfg))

			svc := application.NewRunService(
				selector.New(cfg.DataRoot, cfg.Recursive),
				skipset.New(log),
				toolrunner.New(cfg, log),
				report.New(cfg.LogDir),
				gitinfo.New(),
				log,
			)

			progress := func(done, total int, o domain.Outcome) {
				fmt.Fprintln(out, tui.RenderProgress(done, total, o))
			}

			runReport, artifacts, err := svc.Run(cmd.Context(), cfg, progress)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, tui.RenderSummary(runReport, artifacts))

			if strict && runReport.CountNonOK() > 0 {
				return fmt.Errorf("%d file(s) did not validate cleanly", runReport.CountNonOK())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tool, "tool", "", "Path to the parsing tool executable (e.g. 010Editor)")
	cmd.Flags().StringVar(&template, "template", "", "Path to the template (.bt) file")
	cmd.Flags().StringVar(&logDir, "log-dir", "", "Directory for report and list files (default <data-root>/validation_logs)")
	cmd.Flags().StringVar(&pattern, "pattern", "*", "Filename pattern: glob, or regex if it contains ^$+?()[]{}")
	cmd.Flags().BoolVar(&recursive, "recursive", true, "Recurse into subdirectories")
	cmd.Flags().BoolVar(&skipPriorOK, "skip-prior-ok", true, "Skip files listed OK by the most recent prior run")
	cmd.Flags().BoolVar(&noUI, "noui", true, "Pass -noui to the tool")
	cmd.Flags().BoolVar(&exitAfter, "exit", false, "Pass -exit to the tool")
	cmd.Flags().IntVar(&timeoutSeconds, "timeout", 60, "Per-file timeout in seconds")
	cmd.Flags().IntVar(&workers, "workers", domain.DefaultWorkers(), "Number of parallel workers")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any file is SUSPECT or FAILED")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	return cmd
}
