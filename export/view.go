package export

import (
	"log/slog"
	"sync"
	"time"

	survey "github.com/Jumpaku/go-survey"
	"github.com/Jumpaku/go-survey/errors"
)

// DefaultCopyAck is how long the copy acknowledgment stays visible.
const DefaultCopyAck = 2 * time.Second

type Tab string

const (
	TabDefinition Tab = "definition"
	TabResponses  Tab = "responses"
)

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

// View shows one of the two documents of a session and copies it as text.
type View struct {
	session   *survey.Session
	clipboard Clipboard
	logger    *slog.Logger
	now       func() time.Time
	ack       time.Duration

	mu       sync.Mutex
	tab      Tab
	format   Format
	copiedAt time.Time
	copied   bool
}

type ViewOption func(*View)

func WithFormat(format Format) ViewOption {
	return func(v *View) { v.format = format }
}

// WithCopyAck sets how long Copied reports true after a copy.
func WithCopyAck(d time.Duration) ViewOption {
	return func(v *View) { v.ack = d }
}

func WithClock(now func() time.Time) ViewOption {
	return func(v *View) { v.now = now }
}

func WithLogger(logger *slog.Logger) ViewOption {
	return func(v *View) { v.logger = logger }
}

// NewView creates a view showing the definition tab as JSON.
func NewView(session *survey.Session, clipboard Clipboard, opts ...ViewOption) *View {
	v := &View{
		session:   session,
		clipboard: clipboard,
		logger:    slog.New(slog.DiscardHandler),
		now:       time.Now,
		ack:       DefaultCopyAck,
		tab:       TabDefinition,
		format:    FormatJSON,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *View) Tab() Tab {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tab
}

func (v *View) SetTab(tab Tab) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tab = tab
}

func (v *View) Format() Format {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.format
}

func (v *View) SetFormat(format Format) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.format = format
}

// Document returns the document of the active tab built from the session's
// current state.
func (v *View) Document() any {
	tab := v.Tab()
	snap := v.session.Snapshot()
	if tab == TabResponses {
		return ResponsesDocument(snap.Responses)
	}
	return DefinitionDocument(snap.Definition)
}

// Text renders the active tab in the view's format.
func (v *View) Text() (string, error) {
	return Render(v.Document(), v.Format())
}

// Copy writes the rendered active tab to the clipboard. On success Copied
// reports true until the acknowledgment expires.
func (v *View) Copy() error {
	text, err := v.Text()
	if err != nil {
		return err
	}
	if err := v.clipboard.WriteAll(text); err != nil {
		v.logger.Warn("copy failed", slog.String("tab", string(v.Tab())), slog.Any("error", err))
		return errors.NewClipboardError("failed to copy "+string(v.Tab()), err)
	}

	v.mu.Lock()
	v.copied = true
	v.copiedAt = v.now()
	v.mu.Unlock()
	v.logger.Debug("copied", slog.String("tab", string(v.Tab())), slog.Int("bytes", len(text)))
	return nil
}

// Copied reports whether the last copy is still being acknowledged.
func (v *View) Copied() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.copied && v.now().Before(v.copiedAt.Add(v.ack))
}

// CopyLabel is the caption of the copy action.
func (v *View) CopyLabel() string {
	if v.Copied() {
		return "Copied!"
	}
	return "Copy"
}
