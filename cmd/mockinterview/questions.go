package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"alfredoptarigan/project-interview/internal/models"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate the three project questions for a résumé",
	RunE:  runQuestions,
}

var (
	questionsResumeFile string
	questionsAPIKey     string
	questionsJSON       bool
)

func init() {
	questionsCmd.Flags().StringVarP(&questionsResumeFile, "resume", "r", "", "Path to résumé (.pdf, .docx or .txt)")
	questionsCmd.Flags().StringVar(&questionsAPIKey, "api-key", "", "Model API key (overrides the provider's env var)")
	questionsCmd.Flags().BoolVar(&questionsJSON, "json", false, "Print the questions as JSON")
	_ = questionsCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, _ []string) error {
	svc, err := loadServices(questionsAPIKey)
	if err != nil {
		return err
	}

	resumeText, err := svc.readResume(questionsResumeFile)
	if err != nil {
		return err
	}

	set, err := svc.pipeline.GenerateQuestions(context.Background(), resumeText)
	if err != nil {
		return err
	}
	svc.metrics.IncrementQuestionSets()

	out := cmd.OutOrStdout()
	if questionsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(models.ProjectQuestionsResponse{Questions: set.Slice()})
	}

	for i, q := range set {
		fmt.Fprintf(out, "%d. %s\n", i+1, q)
	}
	return nil
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a report from a saved questions/answers JSON file",
	Long:  `Generate a report from a JSON file shaped like {"questions": [...], "answers": [...]}.`,
	RunE:  runReport,
}

var (
	reportInputFile string
	reportAPIKey    string
)

func init() {
	reportCmd.Flags().StringVarP(&reportInputFile, "in", "i", "", "Path to questions/answers JSON file")
	reportCmd.Flags().StringVar(&reportAPIKey, "api-key", "", "Model API key (overrides the provider's env var)")
	_ = reportCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(reportInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var req models.GenerateReportRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to parse input file: %w", err)
	}

	svc, err := loadServices(reportAPIKey)
	if err != nil {
		return err
	}

	report, err := svc.reports.GenerateReport(context.Background(), req.Questions, req.Answers)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.Text)
	return nil
}
