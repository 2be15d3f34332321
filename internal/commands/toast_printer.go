package commands

import (
	"sync"

	"github.com/colonyops/dojo/internal/core/toast"
	"github.com/colonyops/dojo/internal/printer"
)

// ToastPrinter is the CLI rendering surface for toasts. It prints each toast
// once, the first time it is seen open, and closes it right away since a
// terminal line has no visible lifetime.
type ToastPrinter struct {
	p           *printer.Printer
	mu          sync.Mutex
	seen        map[string]bool
	unsubscribe func()
}

// NewToastPrinter subscribes a printer to t. Call Close to stop printing.
func NewToastPrinter(t *toast.Toaster, p *printer.Printer) *ToastPrinter {
	tp := &ToastPrinter{p: p, seen: make(map[string]bool)}
	tp.unsubscribe = t.Subscribe(tp.handle)
	return tp
}

func (tp *ToastPrinter) handle(s toast.State) {
	var fresh []toast.Toast

	tp.mu.Lock()
	for _, e := range s.Open() {
		if tp.seen[e.ID] {
			continue
		}
		tp.seen[e.ID] = true
		fresh = append(fresh, e)
	}
	tp.mu.Unlock()

	// State lists newest first; print in creation order.
	for i := len(fresh) - 1; i >= 0; i-- {
		tp.print(fresh[i])
		fresh[i].SetOpen(false)
	}
}

func (tp *ToastPrinter) print(e toast.Toast) {
	switch e.Level {
	case toast.LevelSuccess:
		tp.p.Success(e.Title, e.Description)
		return
	case toast.LevelWarning:
		tp.p.Warnf("%s", e.Title)
	case toast.LevelError:
		tp.p.Errorf("%s", e.Title)
	default:
		tp.p.Infof("%s", e.Title)
	}
	if e.Description != "" {
		tp.p.Printf("  %s", e.Description)
	}
}

// Close stops printing new toasts.
func (tp *ToastPrinter) Close() {
	if tp.unsubscribe != nil {
		tp.unsubscribe()
	}
}
