package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathflow/internal/facts"
	"github.com/abhisek/mathflow/internal/problem"
	"github.com/abhisek/mathflow/internal/session"
	"github.com/abhisek/mathflow/internal/ui/components"
	"github.com/abhisek/mathflow/internal/ui/theme"
)

func newDrillCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drill <topic>",
		Short: "Drill a topic's facts",
		Long: `Drill one topic. Type each answer and press enter; type q to quit
without saving the session to your activity log.

Learn mode asks a fixed number of questions and shows the answer after a
miss. Practice mode runs against a timer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()
			return runDrill(cmd, a, args[0])
		},
	}
	cmd.Flags().String("mode", string(session.ModeLearn), "Session mode: learn or practice")
	cmd.Flags().Int("questions", session.DefaultLearnQuestions, "Questions per learn session")
	cmd.Flags().Int("minutes", int(session.DefaultPracticeDuration/time.Minute), "Practice timer in minutes (2, 5 or 10)")
	return cmd
}

func runDrill(cmd *cobra.Command, a *app, topicID string) error {
	ctx := cmd.Context()
	modeVal, _ := cmd.Flags().GetString("mode")
	questions, _ := cmd.Flags().GetInt("questions")
	minutes, _ := cmd.Flags().GetInt("minutes")

	mode, err := session.ParseMode(modeVal)
	if err != nil {
		return err
	}
	if minutes <= 0 {
		return fmt.Errorf("--minutes must be positive, got %d", minutes)
	}
	duration := time.Duration(minutes) * time.Minute
	if mode == session.ModePractice && !session.IsPreset(duration) {
		a.logger.Warn("non-standard practice timer", "minutes", minutes)
	}

	topic, err := a.lookupTopic(topicID)
	if err != nil {
		return err
	}
	if !topic.SRS() {
		return fmt.Errorf("%w: %s is drilled with generated questions, pick a topic with a fact pool", session.ErrNoPool, topic.ID)
	}

	sched, err := a.scheduler()
	if err != nil {
		return err
	}
	log, err := a.activityLog()
	if err != nil {
		return err
	}

	sess, err := session.New(topic, sched, log, session.Options{
		Mode:      mode,
		Questions: questions,
		Duration:  duration,
		Logger:    a.logger,
	})
	if err != nil {
		return err
	}

	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := problem.NewGenerator(rand.New(rand.NewSource(seed)))

	out := cmd.OutOrStdout()
	printDrillHeader(out, topic, sess)

	done := make(chan struct{})
	defer close(done)
	lines, readErr := readLines(cmd.InOrStdin(), done)
	for {
		if err := ctx.Err(); err != nil {
			sess.Abandon()
			return err
		}

		f, err := sess.Next(ctx)
		if errors.Is(err, session.ErrSessionDone) {
			break
		}
		if err != nil {
			return err
		}
		q, err := gen.For(topic, f)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s = ", theme.Prompt.Render(q.Text))
		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			sess.Abandon()
			fmt.Fprintln(out, theme.Dim.Render("(interrupted, session not saved)"))
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				sess.Abandon()
				fmt.Fprintln(out, theme.Dim.Render("(input closed, session not saved)"))
				return *readErr
			}
			line = l
		}
		input := strings.TrimSpace(line)
		switch strings.ToLower(input) {
		case "":
			continue
		case "q", "quit":
			sess.Abandon()
			fmt.Fprintln(out, theme.Dim.Render("Session abandoned, nothing logged."))
			return nil
		}

		correct := problem.CheckAnswer(input, q)
		res, err := sess.Answer(ctx, correct)
		if err != nil {
			return err
		}
		printFeedback(out, sess, q, res)
	}

	sum := sess.Finish(ctx)
	printSummary(out, sum, sched.Summarize(ctx, topic.ID, topic.BuildPool()).MasteryPercent)
	return nil
}

// readLines scans r on its own goroutine so the drill loop can also wait on
// the context. The channel closes at EOF; *err is only valid after that.
// The goroutine exits once done is closed, unless it is still blocked in a
// read.
func readLines(r io.Reader, done <-chan struct{}) (<-chan string, *error) {
	lines := make(chan string)
	var err error
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		err = scanner.Err()
	}()
	return lines, &err
}

func printDrillHeader(w io.Writer, topic facts.Topic, sess *session.Session) {
	fmt.Fprintln(w, theme.Title.Render(topic.Name)+"  "+theme.Dim.Render(topic.Description))
	switch sess.Mode() {
	case session.ModePractice:
		fmt.Fprintf(w, "Practice: answer as many as you can in %s.\n\n", sess.Remaining().Round(time.Second))
	default:
		fmt.Fprintf(w, "Learn: %d questions.\n\n", sess.QuestionsLeft())
	}
}

func printFeedback(w io.Writer, sess *session.Session, q problem.Question, res session.Result) {
	if res.Correct {
		line := theme.Correct.Render("✓ Correct!")
		if res.Stats.Streak >= 3 {
			line += theme.Dim.Render(fmt.Sprintf("  %d in a row", res.Stats.Streak))
		}
		fmt.Fprintln(w, line)
		return
	}
	line := theme.Incorrect.Render("✗ Wrong.")
	if sess.Mode() == session.ModeLearn {
		line += fmt.Sprintf(" %s = %d", q.Text, q.Answer)
	}
	fmt.Fprintln(w, line)
}

func printSummary(w io.Writer, sum session.Summary, mastery int) {
	body := fmt.Sprintf("%d/%d correct (%.0f%%)\nBest run: %d\nTime: %s\n\n%s",
		sum.Correct, sum.Attempted, sum.Accuracy*100,
		sum.BestStreak,
		sum.Duration.Round(time.Second),
		components.NewProgressBar("Mastery", float64(mastery)/100, true, 36).View(),
	)
	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Card.Render(theme.Title.Render("Session complete")+"\n"+body))
}
