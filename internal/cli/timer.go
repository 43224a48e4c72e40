package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tomate/internal/cli/formatter"
	"github.com/alexanderramin/tomate/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newSessionTimerCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "timer ID",
		Short: "Watch a running session count down",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("timer needs an interactive terminal")
			}

			session, err := app.Sessions.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}
			if session.State != domain.StateRunning {
				return fmt.Errorf("session %s is %s, not running", session.ID, session.State)
			}

			model := newTimerModel(app, session)
			final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(timerModel); ok {
				if m.err != nil {
					return m.err
				}
				if m.outcome != "" {
					fmt.Println(m.outcome)
				}
			}
			return nil
		},
	}
}

type timerKeyMap struct {
	Stop   key.Binding
	Skip   key.Binding
	Extend key.Binding
	Quit   key.Binding
}

var timerKeys = timerKeyMap{
	Stop: key.NewBinding(
		key.WithKeys("s", "enter"),
		key.WithHelp("s", "stop"),
	),
	Skip: key.NewBinding(
		key.WithKeys("k"),
		key.WithHelp("k", "skip"),
	),
	Extend: key.NewBinding(
		key.WithKeys("+"),
		key.WithHelp("+", "add 5 min"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "leave running"),
	),
}

func (k timerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Stop, k.Skip, k.Extend, k.Quit}
}

func (k timerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Stop, k.Skip, k.Extend, k.Quit}}
}

type timerTickMsg time.Time

type timerDoneMsg struct {
	outcome string
	err     error
}

type timerModel struct {
	app     *App
	session *domain.Session
	now     time.Time
	width   int
	help    help.Model

	outcome string
	err     error
}

func newTimerModel(app *App, session *domain.Session) timerModel {
	h := help.New()
	return timerModel{
		app:     app,
		session: session,
		now:     time.Now().UTC(),
		help:    h,
	}
}

func timerTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (m timerModel) Init() tea.Cmd {
	return timerTickCmd()
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case timerTickMsg:
		m.now = time.Time(msg).UTC()
		return m, timerTickCmd()

	case timerDoneMsg:
		m.outcome = msg.outcome
		m.err = msg.err
		return m, tea.Quit

	case sessionRefreshMsg:
		m.session = msg.session
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, timerKeys.Stop):
			return m, m.stopCmd()
		case key.Matches(msg, timerKeys.Skip):
			return m, m.skipCmd()
		case key.Matches(msg, timerKeys.Extend):
			return m, m.extendCmd()
		case key.Matches(msg, timerKeys.Quit):
			m.outcome = fmt.Sprintf("Session %s left running.", m.session.ID)
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m timerModel) stopCmd() tea.Cmd {
	return func() tea.Msg {
		session, err := m.app.Sessions.Stop(context.Background(), m.session.ID)
		if err != nil {
			return timerDoneMsg{err: err}
		}
		actual := 0
		if session.ActualMinutes != nil {
			actual = *session.ActualMinutes
		}
		return timerDoneMsg{outcome: fmt.Sprintf("Completed session after %s.", formatter.FormatMinutes(actual))}
	}
}

func (m timerModel) skipCmd() tea.Cmd {
	return func() tea.Msg {
		if _, err := m.app.Sessions.Skip(context.Background(), m.session.ID); err != nil {
			return timerDoneMsg{err: err}
		}
		return timerDoneMsg{outcome: fmt.Sprintf("Skipped session %s.", m.session.ID)}
	}
}

func (m timerModel) extendCmd() tea.Cmd {
	return func() tea.Msg {
		session, err := m.app.Sessions.Adjust(context.Background(), m.session.ID, 5)
		if err != nil {
			return timerDoneMsg{err: err}
		}
		return sessionRefreshMsg{session: session}
	}
}

type sessionRefreshMsg struct {
	session *domain.Session
}

func (m timerModel) View() string {
	deadline := m.session.StartAt.Add(time.Duration(m.session.PlannedMinutes) * time.Minute)
	remaining := deadline.Sub(m.now)

	title := m.session.Title
	if title == "" {
		title = string(m.session.Kind) + " session"
	}

	var clock, label string
	if remaining >= 0 {
		clock = formatter.StyleGreen.Bold(true).Render(formatCountdown(remaining))
		label = formatter.Dim("remaining")
	} else {
		clock = formatter.StyleRed.Bold(true).Render("+" + formatCountdown(-remaining))
		label = formatter.StyleRed.Render("overtime")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		formatter.StyleHeader.Bold(true).Render(title),
		formatter.Dim(fmt.Sprintf("%s · planned %s", m.session.DaypartName,
			formatter.FormatMinutes(m.session.PlannedMinutes))),
		"",
		clock,
		label,
		"",
		m.help.View(timerKeys),
	)

	return formatter.RenderBox("", content)
}

func formatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
