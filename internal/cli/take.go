package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"jobquest/internal/client"
	"jobquest/internal/model"
	"jobquest/internal/ui"
)

const (
	PromptBack    = "back"
	PromptRestart = "Take it again"
	PromptQuit    = "Quit"

	maxFreeText = 2000
)

var errQuit = errors.New("quit requested")

func newTakeCommand(opts *rootOptions) *cobra.Command {
	var (
		apiURL  string
		mock    bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "take",
		Short: "Take the questionnaire in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := client.New(client.Config{BaseURL: apiURL, Mock: mock, Timeout: timeout})
			err := take(cmd.Context(), c, cmd.OutOrStdout())
			if errors.Is(err, errQuit) || errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "http://localhost:8080", "base URL of the jobquest API")
	cmd.Flags().BoolVar(&mock, "mock", false, "run without a server using built-in questions and local matching")
	cmd.Flags().DurationVar(&timeout, "timeout", client.DefaultTimeout, "per-request timeout")
	return cmd
}

// take drives the session: render the current page, dispatch what happened
func take(ctx context.Context, c *client.Client, out io.Writer) error {
	var state ui.State

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch state.Page {
		case ui.PageWelcome:
			qs, err := c.GetQuestionnaire(ctx)
			if err != nil {
				state = ui.Reduce(state, ui.Failed{Err: err})
				continue
			}
			fmt.Fprintf(out, "Welcome! Answer %d short questions to see which roles fit how you like to work.\n\n", len(qs))
			state = ui.Reduce(state, ui.QuestionsLoaded{Questions: qs})

		case ui.PageQuestion:
			q, _ := state.CurrentQuestion()
			action, err := ask(q, state.Current > 0)
			if err != nil {
				return err
			}
			state = ui.Reduce(state, action)

		case ui.PageSubmitting:
			if state.AssessmentID == "" {
				id, err := c.SubmitQuestionnaire(ctx, state.Answers)
				if err != nil {
					state = ui.Reduce(state, ui.Failed{Err: err})
					continue
				}
				state = ui.Reduce(state, ui.Submitted{AssessmentID: id})
				continue
			}
			res, err := c.GetResults(ctx, state.AssessmentID)
			if err != nil {
				state = ui.Reduce(state, ui.Failed{Err: err})
				continue
			}
			state = ui.Reduce(state, ui.ResultsLoaded{Results: res})

		case ui.PageResults:
			if err := ui.RenderResults(out, state.Results); err != nil {
				return err
			}
			if err := again(out, "What next?"); err != nil {
				return err
			}
			state = ui.Reduce(state, ui.Restart{})

		case ui.PageError:
			fmt.Fprintf(out, "\nSomething went wrong: %s\n", state.Err)
			if err := again(out, "Start over?"); err != nil {
				return err
			}
			state = ui.Reduce(state, ui.Restart{})
		}
	}
}

func ask(q model.Question, canGoBack bool) (ui.Action, error) {
	label := fmt.Sprintf("%d. %s", q.ID, q.Text)

	if q.Type == model.QuestionTypeFreeResponse {
		p := promptui.Prompt{
			Label:    freeTextLabel(q),
			Validate: freeTextValidator(q),
		}
		text, err := p.Run()
		if err != nil {
			return nil, err
		}
		return ui.Answered{Value: text}, nil
	}

	items := make([]string, 0, len(q.Options)+1)
	for _, o := range q.Options {
		items = append(items, o.Label)
	}
	if canGoBack {
		items = append(items, PromptBack)
	}

	sel := promptui.Select{Label: label, Items: items, Size: len(items)}
	i, _, err := sel.Run()
	if err != nil {
		return nil, err
	}
	if i >= len(q.Options) {
		return ui.Back{}, nil
	}
	return ui.Answered{Value: q.Options[i].Value}, nil
}

func freeTextLabel(q model.Question) string {
	label := fmt.Sprintf("%d. %s", q.ID, q.Text)
	if q.Optional {
		return label + " (optional, press enter to skip)"
	}
	return label + " (required)"
}

func freeTextValidator(q model.Question) promptui.ValidateFunc {
	return func(s string) error {
		if !q.Optional && strings.TrimSpace(s) == "" {
			return errors.New("an answer is required")
		}
		if utf8.RuneCountInString(s) > maxFreeText {
			return fmt.Errorf("please keep it under %d characters", maxFreeText)
		}
		return nil
	}
}

func again(out io.Writer, label string) error {
	sel := promptui.Select{Label: label, Items: []string{PromptRestart, PromptQuit}}
	_, choice, err := sel.Run()
	if err != nil {
		return err
	}
	if choice == PromptQuit {
		fmt.Fprintln(out, "Bye!")
		return errQuit
	}
	return nil
}
