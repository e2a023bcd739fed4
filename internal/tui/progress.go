// Package tui shows render progress with Bubble Tea.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/mandel/internal/render"
	"github.com/san-kum/mandel/internal/viz"
)

const barWidth = 40

// BandMsg reports that done of total bands are finished.
type BandMsg struct {
	Band        render.Band
	Done, Total int
}

// DoneMsg ends the program.
type DoneMsg struct {
	Err     error
	Elapsed time.Duration
}

type tickMsg time.Time

type Model struct {
	title    string
	cancel   context.CancelFunc
	done     int
	total    int
	rows     int
	start    time.Time
	now      time.Time
	finished bool
	err      error
	elapsed  time.Duration
}

// NewModel returns a progress model. cancel is called when the user quits
// early with q or ctrl+c; it may be nil.
func NewModel(title string, cancel context.CancelFunc) Model {
	now := time.Now()
	return Model{title: title, cancel: cancel, start: now, now: now}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/10, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
	case BandMsg:
		if msg.Done > m.done {
			m.done = msg.Done
		}
		m.total = msg.Total
		m.rows += msg.Band.Rows()
	case DoneMsg:
		m.finished = true
		m.err = msg.Err
		m.elapsed = msg.Elapsed
		return m, tea.Quit
	case tickMsg:
		m.now = time.Time(msg)
		if m.finished {
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

// Fraction is the share of bands finished so far.
func (m Model) Fraction() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(viz.Title.Render(m.title) + "\n\n")

	b.WriteString(viz.ProgressBar(m.Fraction(), barWidth))
	b.WriteString(fmt.Sprintf(" %3.0f%%\n", m.Fraction()*100))
	b.WriteString(viz.Subtle.Render(fmt.Sprintf("bands %d/%d  rows %d", m.done, m.total, m.rows)) + "\n")

	switch {
	case m.finished && m.err != nil:
		b.WriteString(viz.StatusFailed.Render("failed: "+m.err.Error()) + "\n")
	case m.finished:
		b.WriteString(viz.StatusDone.Render(fmt.Sprintf("done in %v", m.elapsed.Round(time.Millisecond))) + "\n")
	default:
		b.WriteString(viz.StatusRunning.Render(fmt.Sprintf("rendering %v", m.now.Sub(m.start).Round(time.Second))))
		b.WriteString(viz.Subtle.Render("  (q to abort)") + "\n")
	}
	return b.String()
}

// Run runs fn while showing its progress. fn must report bands to the
// observer it is given. Run returns the error of fn, or the error of the
// terminal program if that fails first.
func Run(ctx context.Context, title string, fn func(context.Context, render.Observer) error, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewModel(title, cancel), opts...)

	errc := make(chan error, 1)
	go func() {
		start := time.Now()
		err := fn(ctx, render.ObserverFunc(func(b render.Band, done, total int) {
			p.Send(BandMsg{Band: b, Done: done, Total: total})
		}))
		p.Send(DoneMsg{Err: err, Elapsed: time.Since(start)})
		errc <- err
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		<-errc
		return fmt.Errorf("progress display: %w", err)
	}
	return <-errc
}
