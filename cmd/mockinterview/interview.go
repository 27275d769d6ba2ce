package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"alfredoptarigan/project-interview/internal/session"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run an interactive mock interview",
	Long:  "Run an interactive mock interview. Each typed line is added to the answer; an empty line submits it.",
	RunE:  runInterview,
}

var (
	interviewResumeFile string
	interviewAPIKey     string
	interviewTimeLimit  int
	interviewNoTimer    bool
	interviewFollowUp   bool
)

func init() {
	interviewCmd.Flags().StringVarP(&interviewResumeFile, "resume", "r", "", "Path to résumé (.pdf, .docx or .txt)")
	interviewCmd.Flags().StringVar(&interviewAPIKey, "api-key", "", "Model API key (overrides the provider's env var)")
	interviewCmd.Flags().IntVar(&interviewTimeLimit, "time-limit", 0, "Seconds per answer (default from interview policy)")
	interviewCmd.Flags().BoolVar(&interviewNoTimer, "no-timer", false, "Disable the answer countdown")
	interviewCmd.Flags().BoolVar(&interviewFollowUp, "follow-up", false, "Suggest a follow-up question after each answer")
	_ = interviewCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(interviewCmd)
}

func runInterview(cmd *cobra.Command, _ []string) error {
	svc, err := loadServices(interviewAPIKey)
	if err != nil {
		return err
	}

	resumeText, err := svc.readResume(interviewResumeFile)
	if err != nil {
		return err
	}

	opts := session.OptionsFromPolicy(svc.cfg.Interview)
	if interviewTimeLimit > 0 {
		opts.TimeLimit = interviewTimeLimit
	}
	if interviewNoTimer {
		opts.TickInterval = 0
	}

	rec := &lineRecognizer{}
	ctrl := session.NewController(svc.pipeline, svc.reports, rec, opts)
	defer ctrl.Close()

	out := cmd.OutOrStdout()
	ctx := context.Background()

	fmt.Fprintln(out, "🤖 Reading your résumé and preparing questions...")
	if err := ctrl.LoadQuestions(ctx, resumeText); err != nil {
		return err
	}
	svc.metrics.IncrementQuestionSets()

	return conductInterview(ctx, ctrl, rec, svc, resumeText, cmd.InOrStdin(), out)
}

func conductInterview(
	ctx context.Context,
	ctrl *session.Controller,
	rec *lineRecognizer,
	svc *interviewServices,
	resumeText string,
	in io.Reader,
	out io.Writer,
) error {
	// The countdown prints from its own goroutine.
	out = &lockedWriter{w: out}
	notice := newTimeUpNotice(out)
	ctrl.OnChange(notice)
	defer ctrl.OnChange(nil)
	// The first countdown may have run out before the notice was registered.
	notice(ctrl.Snapshot())

	scanner := bufio.NewScanner(in)
	eof := false

	for {
		s := ctrl.Snapshot()
		if s.State != session.StateInProgress {
			break
		}

		fmt.Fprintf(out, "\nQuestion %d/%d: %s\n", s.Index+1, s.Total, s.Question)
		if !eof {
			fmt.Fprintf(out, "Type your answer (%ds). Press Enter on an empty line to submit.\n", s.Remaining)
			if err := ctrl.StartAnswer(); err != nil && !errors.Is(err, session.ErrTimeUp) {
				return err
			}
			eof = readAnswer(scanner, rec, out)
		}

		answered := ctrl.Snapshot().Transcript
		if err := ctrl.Submit(); err != nil {
			return err
		}

		if interviewFollowUp && answered != "" && svc.assistant != nil {
			next, err := svc.assistant.FollowUp(ctx, resumeText, s.Question, answered)
			if err != nil {
				log.Printf("⚠️  Follow-up suggestion failed: %v\n", err)
			} else {
				fmt.Fprintf(out, "💡 A likely follow-up: %s\n", next)
			}
		}
	}

	fmt.Fprintln(out, "\n📝 Generating your report...")
	report, err := ctrl.GenerateReport(ctx)
	if err != nil {
		return err
	}
	svc.metrics.IncrementReportsGenerated()

	fmt.Fprintf(out, "\n%s\n", report.Text)
	return nil
}

// readAnswer feeds typed lines to the recognizer until an empty line. It
// reports true when input is exhausted.
func readAnswer(scanner *bufio.Scanner, rec *lineRecognizer, out io.Writer) bool {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return false
		}
		if !rec.Feed(line) {
			fmt.Fprintln(out, "(not recorded, time is up; press Enter to submit)")
		}
	}
	rec.End()
	return true
}

// newTimeUpNotice prints once per question when its countdown hits zero.
func newTimeUpNotice(out io.Writer) func(session.Snapshot) {
	var (
		mu        sync.Mutex
		announced = map[int]bool{}
	)
	return func(s session.Snapshot) {
		if s.State != session.StateInProgress || s.Remaining != 0 {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if announced[s.Index] {
			return
		}
		announced[s.Index] = true
		fmt.Fprintln(out, "⏰ Time is up. Press Enter to submit your answer.")
	}
}

// lockedWriter serializes writes from the countdown and the input loop.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
