// Package main provides the yearwrap CLI entry point.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gauthierbraillon/yearwrap/internal/export"
	"github.com/gauthierbraillon/yearwrap/internal/linkedin"
	"github.com/gauthierbraillon/yearwrap/internal/wrapped"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for the yearwrap CLI.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "yearwrap",
		Short:   "Turn scraped LinkedIn data into a year-in-review report",
		Long:    "Yearwrap aggregates already-scraped LinkedIn posts and reactions into a deterministic year-in-review report.",
		Version: version,
	}

	rootCmd.SetVersionTemplate("yearwrap version {{.Version}}\n")

	rootCmd.AddCommand(newReportCmd())

	return rootCmd
}

// newLogger creates the CLI logger. The engine itself never logs;
// all observability lives at this boundary.
func newLogger(out io.Writer, quiet bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	if os.Getenv("YEARWRAP_LOG_FORMAT") == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if quiet {
		logger.SetLevel(logrus.ErrorLevel)
	}
	return logger
}

// newReportCmd creates the report subcommand.
func newReportCmd() *cobra.Command {
	var (
		postsPath     string
		reactionsPath string
		profileURL    string
		outPath       string
		year          int
		top           int
		quiet         bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a year-in-review report from scraped datasets",
		Long:  "Load scraped posts (and optionally reactions) from JSON export files, run the aggregation engine, and emit the report as JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; real env always wins.
			_ = godotenv.Load()

			log := newLogger(cmd.ErrOrStderr(), quiet)

			if profileURL == "" {
				profileURL = os.Getenv("YEARWRAP_PROFILE_URL")
			}
			if year == 0 {
				if v := os.Getenv("YEARWRAP_YEAR"); v != "" {
					parsed, err := strconv.Atoi(v)
					if err != nil {
						return fmt.Errorf("invalid YEARWRAP_YEAR %q: %w", v, err)
					}
					year = parsed
				}
			}
			if postsPath == "" {
				return fmt.Errorf("missing required flag: --posts")
			}

			posts, err := linkedin.LoadPosts(postsPath)
			if err != nil {
				return fmt.Errorf("load posts: %w", err)
			}

			var reactions []linkedin.Reaction
			if reactionsPath != "" {
				reactions, err = linkedin.LoadReactions(reactionsPath)
				if err != nil {
					return fmt.Errorf("load reactions: %w", err)
				}
			}

			start := time.Now()
			report := wrapped.Generate(wrapped.Input{
				Posts:      posts,
				Reactions:  reactions,
				ProfileURL: profileURL,
				Year:       year,
			})
			if top > 0 && top < len(report.TopPosts) {
				report.TopPosts = report.TopPosts[:top]
			}

			log.WithFields(logrus.Fields{
				"run_id":       uuid.NewString(),
				"year":         report.Year,
				"posts_in":     len(posts),
				"posts_kept":   report.TotalPosts,
				"reactions_in": len(reactions),
				"duration":     time.Since(start).String(),
			}).Info("report generated")

			if outPath != "" {
				if err := export.WriteReport(report, outPath); err != nil {
					return err
				}
				log.WithField("path", outPath).Info("report written")
				return nil
			}

			data, err := export.MarshalReport(report)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&postsPath, "posts", "p", "", "Path to the scraped posts JSON export (required)")
	cmd.Flags().StringVarP(&reactionsPath, "reactions", "r", "", "Path to the scraped reactions JSON export")
	cmd.Flags().StringVarP(&profileURL, "profile", "u", "", "Target profile URL (defaults to YEARWRAP_PROFILE_URL)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Reporting year (defaults to YEARWRAP_YEAR, then the current year)")
	cmd.Flags().IntVarP(&top, "top", "t", 0, "Trim the top posts list to this many entries")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")

	return cmd
}
