package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/todmy/req-analyzer/internal/pipeline"
	"github.com/todmy/req-analyzer/pkg/models"
)

type analyzeOptions struct {
	parallel int
	compact  bool
}

func newAnalyzeCmd() *cobra.Command {
	opts := analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [file...]",
		Short: "Run the document pipeline over local plain-text files",
		Long: `Reads each file as UTF-8 plain text, extracts requirements and generates
test cases. One file prints a single JSON result; several files print a JSON
array in argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			processor, err := pipeline.NewFromConfig(cfg, logger)
			if err != nil {
				return err
			}

			results, err := analyzeFiles(cmd.Context(), processor, args, opts.parallel)
			if err != nil {
				return err
			}

			if len(results) == 1 {
				return writeJSON(cmd.OutOrStdout(), results[0], opts.compact)
			}
			return writeJSON(cmd.OutOrStdout(), results, opts.compact)
		},
	}

	cmd.Flags().IntVarP(&opts.parallel, "parallel", "p", 4, "number of files processed concurrently")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "print compact JSON")

	return cmd
}

// analyzeFiles processes files concurrently and returns results in input order
func analyzeFiles(ctx context.Context, processor pipeline.Processor, paths []string, parallel int) ([]*models.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if parallel <= 0 {
		parallel = 1
	}

	results := make([]*models.Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			result, err := processor.Process(string(data), filepath.Base(path))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			logger.Debug("analyzed file",
				zap.String("path", path),
				zap.Int("requirements", result.Metadata.RequirementsCount))
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeJSON(w io.Writer, v any, compact bool) error {
	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
