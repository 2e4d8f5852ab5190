package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tbourn/chatlens/internal/config"
	"github.com/tbourn/chatlens/internal/services"
	"github.com/tbourn/chatlens/internal/sysutil"
	"github.com/tbourn/chatlens/internal/topics"
)

func analyzeCmd() *cobra.Command {
	var (
		opts      services.AnalyzeOptions
		stopWords string
		table     string
		timeZone  string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <export.txt|->",
		Short: "Analyze a chat export and print JSON",
		Long: `Analyze a chat export file ("-" reads stdin) and print the full report,
or a single table with --table, as indented JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if verbose {
				level = "debug"
			}
			sysutil.InitLogger(cmd.ErrOrStderr(), level, true)

			if _, err := time.LoadLocation(timeZone); err != nil {
				return fmt.Errorf("invalid --tz: %w", err)
			}
			raw, err := readExport(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			cfg := config.Config{
				MaxExportBytes: services.DefaultMaxExportBytes,
				TopicCount:     topics.DefaultTopics,
				TopicTerms:     topics.DefaultTermsPerTopic,
				TimeZone:       timeZone,
			}
			svc, err := newService(cfg, stopWords)
			if err != nil {
				return err
			}

			ctx := log.Logger.WithContext(cmd.Context())
			a, err := svc.Analyze(ctx, raw, opts)
			if err != nil {
				return err
			}

			var out any = a.Report()
			if table != "" {
				if out, err = a.Table(table); err != nil {
					return fmt.Errorf("%w: %s", err, table)
				}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&opts.Sender, "sender", services.Overall, "restrict per-user tables to one sender")
	cmd.Flags().IntVar(&opts.Topics, "topics", 0, "number of topics (default 5)")
	cmd.Flags().IntVar(&opts.Terms, "terms", 0, "terms per topic label (default 10)")
	cmd.Flags().BoolVar(&opts.Lenient, "lenient", false, "skip malformed lines")
	cmd.Flags().StringVar(&stopWords, "stopwords", "", "stop-word file, one word per line")
	cmd.Flags().StringVar(&table, "table", "", "print one table instead of the full report")
	cmd.Flags().StringVar(&timeZone, "tz", "UTC", "IANA zone the export timestamps were written in")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	return cmd
}

func readExport(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
