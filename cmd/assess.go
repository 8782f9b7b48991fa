package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kfreiman/hirecheck/internal/screening"
	"github.com/kfreiman/hirecheck/internal/storage"
)

var (
	candidateFile string
	jobFile       string
	interviewFile string
)

// assessCmd represents the assess command
var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Assess one candidate against a job and print the report",
	Long: `Ingest a candidate profile, a job requirement and optionally an interview session,
assess the candidate and print the assessment report as JSON.

All inputs are JSON files. The report is also kept in storage under a report:// URI.`,
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

		req := screening.Request{}
		if req.CandidateURI, err = p.ingestor.Ingest(ctx, candidateFile, storage.DocumentTypeCandidate); err != nil {
			return fmt.Errorf("ingest candidate: %w", err)
		}
		if req.JobURI, err = p.ingestor.Ingest(ctx, jobFile, storage.DocumentTypeJob); err != nil {
			return fmt.Errorf("ingest job: %w", err)
		}
		if interviewFile != "" {
			if req.InterviewURI, err = p.ingestor.Ingest(ctx, interviewFile, storage.DocumentTypeInterview); err != nil {
				return fmt.Errorf("ingest interview: %w", err)
			}
		}

		outcome, err := p.screener.Assess(ctx, req)
		if err != nil {
			logger.ErrorContext(ctx, "assessment failed",
				"error", err,
				"operation", "assess",
			)
			return err
		}

		return printJSON(outcome)
	},
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	assessCmd.Flags().StringVarP(&candidateFile, "candidate", "c", "", "candidate profile JSON file")
	assessCmd.Flags().StringVarP(&jobFile, "job", "j", "", "job requirement JSON file")
	assessCmd.Flags().StringVarP(&interviewFile, "interview", "i", "", "interview session JSON file (optional)")
	_ = assessCmd.MarkFlagRequired("candidate")
	_ = assessCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(assessCmd)
}
