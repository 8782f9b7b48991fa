package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kfreiman/hirecheck/internal/screening"
	"github.com/kfreiman/hirecheck/internal/storage"
)

var (
	batchJobFile     string
	batchConcurrency int
)

// batchResult is the printed summary of a batch run
type batchResult struct {
	JobURI    string                `json:"job_uri"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
	Results   []screening.BatchItem `json:"results"`
}

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch --job JOB_FILE CANDIDATE_FILE...",
	Short: "Assess several candidates against one job",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger, err := newLogger()
		if err != nil {
			return err
		}

		p, err := newPipeline(logger)
		if err != nil {
			logger.ErrorContext(ctx, "failed to initialize pipeline", "error", err)
			return err
		}

		jobURI, err := p.ingestor.Ingest(ctx, batchJobFile, storage.DocumentTypeJob)
		if err != nil {
			return fmt.Errorf("ingest job: %w", err)
		}

		// Candidates that fail ingestion keep their slot so the output lines up with args.
		items := make([]screening.BatchItem, len(args))
		var uris []string
		var slots []int
		for idx, file := range args {
			uri, err := p.ingestor.Ingest(ctx, file, storage.DocumentTypeCandidate)
			if err != nil {
				logger.WarnContext(ctx, "skipping candidate",
					"file", file,
					"error", err,
				)
				items[idx] = screening.BatchItem{CandidateURI: file, Error: err.Error()}
				continue
			}
			uris = append(uris, uri)
			slots = append(slots, idx)
		}

		assessed, err := p.screener.AssessBatch(ctx, jobURI, uris, batchConcurrency)
		if err != nil {
			return err
		}
		for i, item := range assessed {
			items[slots[i]] = item
		}

		result := batchResult{JobURI: jobURI, Results: items}
		for _, item := range items {
			if item.Error != "" {
				result.Failed++
			} else {
				result.Succeeded++
			}
		}
		return printJSON(result)
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchJobFile, "job", "j", "", "job requirement JSON file")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", screening.DefaultConcurrency, "maximum assessments run in parallel")
	_ = batchCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(batchCmd)
}
