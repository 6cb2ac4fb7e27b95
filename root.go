package main

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/muhammadolammi/resumematch/internal/config"
	"github.com/muhammadolammi/resumematch/internal/extract"
	"github.com/muhammadolammi/resumematch/internal/logger"
	"github.com/muhammadolammi/resumematch/internal/matching"
	"github.com/muhammadolammi/resumematch/internal/resume"
)

const (
	app = "resumematch"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:          app,
		Short:        "resumematch parses résumés and scores them against job requirements",
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resumematch.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

// initConfig reads the config file. The default file is optional; one named
// with --config must exist.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			cobra.CheckErr(fmt.Errorf("reading config: %w", err))
		}
	}
}

// setup builds the logger and the validated config shared by every command.
func setup() (*config.Config, *zap.Logger, error) {
	log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return nil, nil, fmt.Errorf("creating a logger: %w", err)
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		log.Error("loading config", zap.Error(err))
		return nil, nil, err
	}
	log.Debug("config loaded",
		zap.Int("workers", cfg.Worker.Workers),
		zap.String("queue", cfg.Worker.Queue),
		zap.Any("weights", cfg.Matching),
		zap.Any("parsing", cfg.Parsing),
	)
	return cfg, log, nil
}

func newParser(cfg *config.Config, log *zap.Logger) *resume.Parser {
	extractor := extract.New(
		extract.WithLogger(log.Named("extract")),
		extract.WithMinLength(cfg.Parsing.MinTextLength),
		extract.WithPDFEngines(pdfEngines(cfg.Parsing.PDFToText)...),
	)
	return resume.NewParser(
		resume.WithExtractor(extractor),
		resume.WithLogger(log.Named("parser")),
	)
}

func pdfEngines(usePDFToText bool) []extract.Engine {
	engines := extract.DefaultPDFEngines()
	if usePDFToText {
		return engines
	}
	return slices.DeleteFunc(engines, func(e extract.Engine) bool {
		return e.Name() == extract.PDFToText{}.Name()
	})
}

func newMatcher(cfg *config.Config, log *zap.Logger) (*matching.Matcher, error) {
	return matching.New(
		matching.WithWeights(cfg.Matching),
		matching.WithLogger(log.Named("matching")),
	)
}
