// Package shell is a line oriented authoring front end over a survey session:
// the editor, the preview and the export view share one session and every
// command is applied before anything is printed.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	survey "github.com/Jumpaku/go-survey"
	"github.com/Jumpaku/go-survey/errors"
	"github.com/Jumpaku/go-survey/export"
	"github.com/Jumpaku/go-survey/form"
)

const prompt = "survey> "

// Publisher sends a definition somewhere respondents can fill it out. Publish
// returns the created form even when a later step fails, so that it is not lost.
type Publisher interface {
	Publish(ctx context.Context, def survey.Definition) (*form.Published, error)
	FetchResponses(ctx context.Context, published *form.Published) ([]form.Submission, error)
}

type Shell struct {
	session   *survey.Session
	view      *export.View
	publisher Publisher
	out       io.Writer
	logger    *slog.Logger
	prompt    bool
	published *form.Published
}

type Option func(*Shell)

// WithPublisher enables the publish and responses commands.
func WithPublisher(p Publisher) Option {
	return func(s *Shell) { s.publisher = p }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) { s.logger = logger }
}

// WithPrompt prints a prompt before reading each line.
func WithPrompt(on bool) Option {
	return func(s *Shell) { s.prompt = on }
}

func New(session *survey.Session, view *export.View, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		session: session,
		view:    view,
		out:     out,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	session.Subscribe(func(snap survey.Snapshot) {
		s.logger.Debug("survey changed",
			slog.Int("questions", len(snap.Definition.Questions)),
			slog.Int("responses", len(snap.Responses)))
	})
	return s
}

// Run executes commands read from in until quit or end of input. Command
// errors are reported and do not stop the shell.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanLines)
	for {
		if s.prompt {
			fmt.Fprint(s.out, prompt)
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		quit, err := s.Exec(ctx, line)
		if err != nil {
			s.logger.Debug("command failed", slog.String("line", line), slog.Any("error", err))
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return sc.Err()
}

// Exec runs a single command line.
func (s *Shell) Exec(ctx context.Context, line string) (quit bool, err error) {
	name, rest := cut(line)
	if name == "quit" || name == "exit" {
		return true, nil
	}
	cmd, ok := commands[name]
	if !ok {
		return false, fmt.Errorf("%q, try help: %w", name, errors.ErrInvalidCommand)
	}
	return false, cmd.run(ctx, s, rest)
}

// cut splits off the first word of line.
func cut(line string) (word, rest string) {
	line = strings.TrimSpace(line)
	word, rest, _ = strings.Cut(line, " ")
	return word, strings.TrimSpace(rest)
}

func usage(name string) error {
	return fmt.Errorf("usage: %s %s: %w", name, commands[name].args, errors.ErrInvalidCommand)
}

// question resolves a 1-based question number.
func (s *Shell) question(arg string) (survey.Question, int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return survey.Question{}, 0, fmt.Errorf("question number %q: %w", arg, errors.ErrInvalidCommand)
	}
	qs := s.session.Definition().Questions
	if n < 1 || n > len(qs) {
		return survey.Question{}, 0, fmt.Errorf("question %d of %d: %w", n, len(qs), errors.ErrNotFound)
	}
	return qs[n-1], n, nil
}

// optionAt resolves a 1-based option number of q.
func optionAt(q survey.Question, arg string) (survey.Option, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return survey.Option{}, fmt.Errorf("option number %q: %w", arg, errors.ErrInvalidCommand)
	}
	if n < 1 || n > len(q.Options) {
		return survey.Option{}, fmt.Errorf("option %d of %d: %w", n, len(q.Options), errors.ErrNotFound)
	}
	return q.Options[n-1], nil
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
