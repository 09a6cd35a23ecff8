package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/germanamz/minutes/pkg/engine"
)

// spinnerFrames are braille characters for smooth animation.
var spinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

const tickInterval = 100 * time.Millisecond

type (
	tickMsg  struct{}
	stateMsg engine.StateChange
	doneMsg  struct {
		out engine.Outcome
		err error
	}
)

type spinnerKeys struct {
	Quit key.Binding
}

var defaultSpinnerKeys = spinnerKeys{
	Quit: key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("ctrl+c", "quit")),
}

// spinnerModel shows progress while a session dispatches. It quits once the
// cycle reports back.
type spinnerModel struct {
	provider  string
	state     engine.State
	frame     int
	start     time.Time
	cancel    context.CancelFunc
	keys      spinnerKeys
	quitting  bool

	done bool
	out  engine.Outcome
	err  error
}

func newSpinnerModel(providerID string, cancel context.CancelFunc) spinnerModel {
	return spinnerModel{
		provider: providerID,
		start:    time.Now(),
		cancel:   cancel,
		keys:     defaultSpinnerKeys,
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m spinnerModel) Init() tea.Cmd { return tick() }

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.done {
			return m, nil
		}
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, tick()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && !m.quitting {
			m.quitting = true
			m.cancel()
		}
		return m, nil

	case stateMsg:
		m.state = msg.To
		return m, nil

	case doneMsg:
		m.done = true
		m.out = msg.out
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}

	status := fmt.Sprintf("Summarizing with %s...", m.provider)
	if m.quitting {
		status = "Quitting..."
	}

	return fmt.Sprintf("%s %s %s\n",
		spinnerStyle.Render(spinnerFrames[m.frame]),
		status,
		dimStyle.Render(fmt.Sprintf("%s · %s · %s %s",
			m.state, fmtDuration(time.Since(m.start)), m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc)),
	)
}

// runWithSpinner runs sess.Summarize while a spinner program renders on
// stderr.
func runWithSpinner(ctx context.Context, sess *engine.Session, events *engine.EventBus, rc engine.RequestContext) (engine.Outcome, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := []tea.ProgramOption{tea.WithOutput(os.Stderr)}
	if !isTerminal(os.Stdin) {
		opts = append(opts, tea.WithInput(nil))
	}

	p := tea.NewProgram(newSpinnerModel(rc.ProviderID, cancel), opts...)
	stop := startBridge(ctx, p, sess.ID(), events)
	defer stop()

	go func() {
		out, err := sess.Summarize(ctx, rc)
		p.Send(doneMsg{out: out, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return engine.Outcome{}, fmt.Errorf("spinner: %w", err)
	}

	m, ok := final.(spinnerModel)
	if !ok {
		return engine.Outcome{}, fmt.Errorf("spinner: unexpected model %T", final)
	}

	return m.out, m.err
}

// startBridge forwards the session's state changes to the program. The
// returned function stops the watcher and waits for it to exit.
func startBridge(ctx context.Context, p *tea.Program, sessionID string, events *engine.EventBus) func() {
	bridgeCtx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	sub := events.Subscribe(16)

	wg.Go(func() {
		defer events.Unsubscribe(sub)
		for {
			select {
			case <-bridgeCtx.Done():
				return
			case ev, ok := <-sub.C:
				if !ok {
					return
				}
				if ev.SessionID != sessionID || ev.Kind != engine.EventStateChanged {
					continue
				}
				if sc, ok := ev.Data.(engine.StateChange); ok {
					p.Send(stateMsg(sc))
				}
			}
		}
	})

	return func() {
		cancel()
		wg.Wait()
	}
}
