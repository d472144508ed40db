package ui

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// Progress reports per-item outcomes of a multi-file check with a running
// counter.
type Progress struct {
	out       io.Writer
	total     int
	completed atomic.Int32
	failed    atomic.Int32
	mu        sync.Mutex
}

// NewProgress creates a progress tracker for n items.
func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{out: out, total: total}
}

// Done marks one item as passing.
func (p *Progress) Done(label string) {
	p.print("ok", label)
}

// Skip marks one item as not checked.
func (p *Progress) Skip(label string) {
	p.print("skip", label)
}

// Fail marks one item as failing.
func (p *Progress) Fail(label string) {
	p.failed.Add(1)
	p.print("FAIL", label)
}

func (p *Progress) print(status, label string) {
	n := int(p.completed.Add(1))
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, "[%d/%d] %-4s %s\n", n, p.total, status, label)
}

// Failures returns the number of items marked as failing.
func (p *Progress) Failures() int {
	return int(p.failed.Load())
}

// Log prints an informational message within the progress context.
func (p *Progress) Log(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}
