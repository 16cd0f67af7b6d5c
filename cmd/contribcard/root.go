package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"contribcard/internal/config"
	"contribcard/internal/datasource"
	"contribcard/internal/logging"
)

// flags shared by every command
var (
	configPath string
	dataURL    string
	dataDir    string
	logFile    string
	watch      bool
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:          "contribcard",
	Short:        "Find a contributor and show their contribution card",
	Long:         "Search the contributors of a contribcard dataset as you type and view their first contribution, years and repositories.",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runSearch,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	pf.StringVar(&dataURL, "data-url", "", "base URL of the published dataset")
	pf.StringVarP(&dataDir, "data-dir", "d", "", "local dataset directory (wins over --data-url)")
	pf.StringVar(&logFile, "log-file", "", "log file (default "+logging.DefaultFile()+")")
	pf.BoolVar(&watch, "watch", false, "reload contributors when the local index changes")
	pf.BoolVar(&debug, "debug", false, "debug logging")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(cardCmd)
	rootCmd.AddCommand(listCmd)
}

// app is the state every command starts from
type app struct {
	cfg      *config.Config
	source   datasource.Source
	client   *datasource.Client
	closeLog func()
}

// setup loads the configuration, applies flag overrides and builds the data
// client
func setup(cmd *cobra.Command) (*app, error) {
	svc := config.NewConfigService()
	if configPath != "" {
		svc = config.NewConfigServiceAt(configPath)
	}
	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("data-url") {
		cfg.Data.BaseURL = dataURL
	}
	if flags.Changed("data-dir") {
		cfg.Data.Dir = dataDir
	}
	if flags.Changed("watch") {
		cfg.Data.Watch = watch
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if debug {
		cfg.Log.Level = "debug"
	}
	if cfg.Log.File == "" {
		cfg.Log.File = logging.DefaultFile()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w (config: %s)", err, svc.Path())
	}

	closeLog, err := logging.Setup(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, err
	}

	source, err := newSource(cfg.Data)
	if err != nil {
		closeLog()
		return nil, err
	}
	client, err := datasource.NewClient(source, cfg.Data.CacheSize)
	if err != nil {
		closeLog()
		return nil, err
	}

	return &app{cfg: cfg, source: source, client: client, closeLog: closeLog}, nil
}

func newSource(data config.DataSettings) (datasource.Source, error) {
	if data.Dir != "" {
		return datasource.NewFSSource(nil, data.Dir, data.IndexPath), nil
	}
	return datasource.NewHTTPSource(data.BaseURL, data.IndexPath, data.Timeout())
}
