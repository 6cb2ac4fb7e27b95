package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/muhammadolammi/resumematch/internal/export"
	"github.com/muhammadolammi/resumematch/internal/extract"
	"github.com/muhammadolammi/resumematch/internal/matching"
	"github.com/muhammadolammi/resumematch/internal/resume"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse a résumé and print its profile as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		profile, err := parseFile(newParser(cfg, log), args[0])
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), profile)
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score --job job.json FILE",
	Short: "Parse a résumé and score it against a job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		req, err := loadRequirement(jobFile)
		if err != nil {
			return err
		}
		matcher, err := newMatcher(cfg, log)
		if err != nil {
			return err
		}
		profile, err := parseFile(newParser(cfg, log), args[0])
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), matcher.Score(profile, req))
	},
}

var rankCmd = &cobra.Command{
	Use:   "rank --job job.json [--xlsx report.xlsx] FILES...",
	Short: "Score several résumés against a job and rank them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		req, err := loadRequirement(jobFile)
		if err != nil {
			return err
		}
		matcher, err := newMatcher(cfg, log)
		if err != nil {
			return err
		}

		ranked := export.Rank(scoreFiles(newParser(cfg, log), matcher, req, args, cfg.Worker.Concurrency, log))

		if xlsxFile != "" {
			path, err := export.ExportToExcel(ranked, req, xlsxFile, time.Now())
			if err != nil {
				return err
			}
			log.Info("report written", zap.String("path", path))
		}
		return writeJSON(cmd.OutOrStdout(), rankedEntries(ranked))
	},
}

var (
	jobFile  string
	xlsxFile string
)

func init() {
	rootCmd.AddCommand(parseCmd, scoreCmd, rankCmd)

	for _, c := range []*cobra.Command{scoreCmd, rankCmd} {
		c.Flags().StringVar(&jobFile, "job", "", "job requirement JSON file")
		c.MarkFlagRequired("job")
	}
	rankCmd.Flags().StringVar(&xlsxFile, "xlsx", "", "also write the ranking to this XLSX report")
}

// parseFile reads a résumé from disk, resolving the format from its name or
// content.
func parseFile(parser *resume.Parser, path string) (*resume.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading resume: %w", err)
	}
	format, err := extract.Detect(path, "", data)
	if err != nil {
		return nil, err
	}
	return parser.Parse(data, format)
}

func loadRequirement(path string) (matching.Requirement, error) {
	var req matching.Requirement
	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("reading job: %w", err)
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("decoding job %s: %w", path, err)
	}
	return req, nil
}

// scoreFiles parses and scores files with at most limit in flight. A file that
// cannot be read or parsed gets a result carrying the error.
func scoreFiles(parser *resume.Parser, matcher *matching.Matcher, req matching.Requirement, files []string, limit int, log *zap.Logger) []export.Candidate {
	candidates := make([]export.Candidate, len(files))

	var g errgroup.Group
	g.SetLimit(max(limit, 1))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			candidates[i].File = path
			profile, err := parseFile(parser, path)
			if err != nil {
				log.Warn("skipping resume", zap.String("file", path), zap.Error(err))
				candidates[i].Result = matching.Result{Error: err.Error()}
				return nil
			}
			candidates[i].Profile = profile
			candidates[i].Result = matcher.Score(profile, req)
			return nil
		})
	}
	_ = g.Wait()
	return candidates
}

type rankedEntry struct {
	Rank          int             `json:"rank"`
	File          string          `json:"file"`
	CandidateName string          `json:"candidate_name"`
	Result        matching.Result `json:"result"`
}

func rankedEntries(ranked []export.Candidate) []rankedEntry {
	out := make([]rankedEntry, len(ranked))
	for i, c := range ranked {
		out[i] = rankedEntry{Rank: i + 1, File: c.File, CandidateName: resume.NotSpecified, Result: c.Result}
		if c.Profile != nil {
			out[i].CandidateName = c.Profile.CandidateName
		}
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
