package shell

import (
	"context"
	"fmt"
	"strings"

	survey "github.com/Jumpaku/go-survey"
	"github.com/Jumpaku/go-survey/errors"
	"github.com/Jumpaku/go-survey/export"
	"github.com/Jumpaku/go-survey/preview"
)

type command struct {
	args string
	help string
	run  func(ctx context.Context, s *Shell, rest string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"help":      {"", "show this help", runHelp},
		"title":     {"<text>", "set the survey title", runTitle},
		"desc":      {"<text>", "set the survey description", runDesc},
		"add":       {"[text|choice]", "add a question", runAdd},
		"del":       {"<n>", "delete question n", runDel},
		"label":     {"<n> <text>", "set the label of question n", runLabel},
		"type":      {"<n> <text|choice>", "change the type of question n", runType},
		"required":  {"<n> <on|off>", "mark question n required or optional", runRequired},
		"opt":       {"add <n> [text] | set <n> <m> <text> | del <n> <m>", "edit the options of question n", runOpt},
		"list":      {"", "list the questions", runList},
		"answer":    {"<n> <text>", "answer text question n", runAnswer},
		"choose":    {"<n> <m>", "select option m of question n", runChoose},
		"preview":   {"", "show the survey as a respondent sees it", runPreview},
		"show":      {"[definition|responses]", "print the exported document", runShow},
		"tab":       {"<definition|responses>", "select the exported document", runTab},
		"format":    {"<json|yaml|toml>", "select the export format", runFormat},
		"copy":      {"", "copy the exported document to the clipboard", runCopy},
		"publish":   {"", "publish the survey as a Google Form", runPublish},
		"responses": {"", "fetch the responses of the published form", runResponses},
	}
}

func runHelp(_ context.Context, s *Shell, _ string) error {
	for _, name := range commandNames() {
		c := commands[name]
		s.printf("  %-10s %-28s %s\n", name, c.args, c.help)
	}
	s.printf("  %-10s %-28s %s\n", "quit", "", "leave")
	return nil
}

func runTitle(_ context.Context, s *Shell, rest string) error {
	s.session.SetTitle(rest)
	return nil
}

func runDesc(_ context.Context, s *Shell, rest string) error {
	s.session.SetDescription(rest)
	return nil
}

func runAdd(_ context.Context, s *Shell, rest string) error {
	t := survey.QuestionTypeText
	if rest != "" {
		var err error
		if t, err = survey.ParseQuestionType(rest); err != nil {
			return fmt.Errorf("%w: %w", errors.ErrInvalidCommand, err)
		}
	}
	q := s.session.AddQuestion()
	if t != q.Type {
		q = q.WithType(t, s.session.NewID)
		s.session.UpdateQuestion(q)
	}
	s.printf("added question %d (%s)\n", len(s.session.Definition().Questions), q.ID)
	return nil
}

func runDel(_ context.Context, s *Shell, rest string) error {
	q, _, err := s.question(rest)
	if err != nil {
		return err
	}
	s.session.DeleteQuestion(q.ID)
	return nil
}

func runLabel(_ context.Context, s *Shell, rest string) error {
	n, text := cut(rest)
	q, _, err := s.question(n)
	if err != nil {
		return err
	}
	s.session.UpdateQuestion(q.WithLabel(text))
	return nil
}

func runType(_ context.Context, s *Shell, rest string) error {
	n, name := cut(rest)
	if name == "" {
		return usage("type")
	}
	q, _, err := s.question(n)
	if err != nil {
		return err
	}
	t, err := survey.ParseQuestionType(name)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidCommand, err)
	}
	s.session.UpdateQuestion(q.WithType(t, s.session.NewID))
	return nil
}

func runRequired(_ context.Context, s *Shell, rest string) error {
	n, flag := cut(rest)
	q, _, err := s.question(n)
	if err != nil {
		return err
	}
	switch strings.ToLower(flag) {
	case "on", "yes", "true", "":
		s.session.UpdateQuestion(q.WithRequired(true))
	case "off", "no", "false":
		s.session.UpdateQuestion(q.WithRequired(false))
	default:
		return usage("required")
	}
	return nil
}

func runOpt(_ context.Context, s *Shell, rest string) error {
	action, rest := cut(rest)
	n, rest := cut(rest)
	q, _, err := s.question(n)
	if err != nil {
		return err
	}
	if q.Type != survey.QuestionTypeMultipleChoice {
		return fmt.Errorf("question %s is not multiple choice: %w", n, errors.ErrInvalidCommand)
	}

	switch action {
	case "add":
		q = q.AddOption(s.session.NewID)
		if rest != "" {
			q = q.UpdateOptionText(q.Options[len(q.Options)-1].ID, rest)
		}
	case "set":
		m, text := cut(rest)
		o, err := optionAt(q, m)
		if err != nil {
			return err
		}
		q = q.UpdateOptionText(o.ID, text)
	case "del":
		o, err := optionAt(q, rest)
		if err != nil {
			return err
		}
		q = q.DeleteOption(o.ID, s.session.NewID)
	default:
		return usage("opt")
	}
	s.session.UpdateQuestion(q)
	return nil
}

func runList(_ context.Context, s *Shell, _ string) error {
	d := s.session.Definition()
	s.printf("Questions (%d)\n", len(d.Questions))
	if len(d.Questions) == 0 {
		s.printf("No questions yet.\n")
		return nil
	}
	for i, q := range d.Questions {
		required := ""
		if q.Required {
			required = ", required"
		}
		s.printf("%d. %s [%s%s]\n", i+1, q.Summary(), q.Type.DisplayName(), required)
		for j, o := range q.Options {
			s.printf("   %d) %s\n", j+1, o.Text)
		}
	}
	return nil
}

func runAnswer(_ context.Context, s *Shell, rest string) error {
	n, text := cut(rest)
	q, _, err := s.question(n)
	if err != nil {
		return err
	}
	if q.Type != survey.QuestionTypeText {
		return fmt.Errorf("question %s is multiple choice, use choose: %w", n, errors.ErrInvalidCommand)
	}
	s.session.SetTextResponse(q.ID, text)
	return nil
}

func runChoose(_ context.Context, s *Shell, rest string) error {
	n, m := cut(rest)
	q, _, err := s.question(n)
	if err != nil {
		return err
	}
	if q.Type != survey.QuestionTypeMultipleChoice {
		return fmt.Errorf("question %s is a text question, use answer: %w", n, errors.ErrInvalidCommand)
	}
	o, err := optionAt(q, m)
	if err != nil {
		return err
	}
	s.session.SetChoiceResponse(q.ID, o.Text)
	return nil
}

func runPreview(_ context.Context, s *Shell, _ string) error {
	return preview.Write(s.out, s.session.Snapshot())
}

func parseTab(arg string) (export.Tab, error) {
	switch export.Tab(arg) {
	case export.TabDefinition, export.TabResponses:
		return export.Tab(arg), nil
	}
	return "", fmt.Errorf("tab %q: %w", arg, errors.ErrInvalidCommand)
}

func runShow(_ context.Context, s *Shell, rest string) error {
	if rest != "" {
		tab, err := parseTab(rest)
		if err != nil {
			return err
		}
		s.view.SetTab(tab)
	}
	text, err := s.view.Text()
	if err != nil {
		return err
	}
	s.printf("%s\n", strings.TrimSuffix(text, "\n"))
	return nil
}

func runTab(_ context.Context, s *Shell, rest string) error {
	tab, err := parseTab(rest)
	if err != nil {
		return err
	}
	s.view.SetTab(tab)
	return nil
}

func runFormat(_ context.Context, s *Shell, rest string) error {
	format, err := export.ParseFormat(rest)
	if err != nil {
		return err
	}
	s.view.SetFormat(format)
	return nil
}

func runCopy(_ context.Context, s *Shell, _ string) error {
	if err := s.view.Copy(); err != nil {
		return err
	}
	s.printf("%s\n", s.view.CopyLabel())
	return nil
}

func runPublish(ctx context.Context, s *Shell, _ string) error {
	if s.publisher == nil {
		return fmt.Errorf("publishing is not configured: %w", errors.ErrInvalidCommand)
	}
	published, err := s.publisher.Publish(ctx, s.session.Definition())
	if published != nil {
		s.published = published
		s.printf("published form %s\n%s\n", published.FormID, published.ResponderURI)
	}
	return err
}

func runResponses(ctx context.Context, s *Shell, _ string) error {
	if s.publisher == nil || s.published == nil {
		return fmt.Errorf("nothing published yet: %w", errors.ErrInvalidCommand)
	}
	submissions, err := s.publisher.FetchResponses(ctx, s.published)
	if err != nil {
		return err
	}
	s.printf("%d response(s)\n", len(submissions))
	for _, sub := range submissions {
		text, err := export.Render(export.ResponsesDocument(sub.Answers), s.view.Format())
		if err != nil {
			return err
		}
		s.printf("# %s %s\n%s\n", sub.ResponseID, sub.LastSubmittedTime.Format("2006-01-02 15:04:05"), strings.TrimSuffix(text, "\n"))
	}
	return nil
}
