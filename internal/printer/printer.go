// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/dojo/internal/core/styles"
)

// Printer writes one status line per call. It is safe for concurrent use,
// which matters because toast listeners may print from timer goroutines.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) line(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintln(p.w, s)
}

func (p *Printer) status(icon string, style lipgloss.Style, msg string) {
	p.line(style.Render(icon) + " " + msg)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

func (p *Printer) Infof(format string, args ...any) {
	p.status(styles.IconNotifyInfo, styles.TextMutedStyle, fmt.Sprintf(format, args...))
}

func (p *Printer) Successf(format string, args ...any) {
	p.status(styles.IconNotifySuccess, styles.TextSuccessStyle, fmt.Sprintf(format, args...))
}

func (p *Printer) Warnf(format string, args ...any) {
	p.status(styles.IconNotifyWarning, styles.TextWarningStyle, fmt.Sprintf(format, args...))
}

func (p *Printer) Errorf(format string, args ...any) {
	p.status(styles.IconNotifyError, styles.TextErrorStyle, fmt.Sprintf(format, args...))
}

// Success writes a success line with a muted detail.
func (p *Printer) Success(title, detail string) {
	msg := styles.ValueStyle.Render(title)
	if detail != "" {
		msg += " " + styles.TextMutedStyle.Render(detail)
	}
	p.status(styles.IconNotifySuccess, styles.TextSuccessStyle, msg)
}

// Field writes an aligned label/value pair.
func (p *Printer) Field(label, value string) {
	p.line(styles.LabelStyle.Render(label) + styles.ValueStyle.Render(value))
}

// Header writes a section header.
func (p *Printer) Header(title string) {
	p.line(styles.CommandHeaderStyle.Render(title))
}
