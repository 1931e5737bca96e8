// Package main runs the interactive event registration wizard as a terminal
// UI against a running backend.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/hackarena/backend/internal/models"
	"github.com/hackarena/backend/internal/wizard"
)

func main() {
	var apiURL string
	flagSet := pflag.NewFlagSet("wizard", pflag.ContinueOnError)
	flagSet.StringVar(&apiURL, "api", "http://localhost:8080", "backend base URL")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	program := tea.NewProgram(newModel(wizard.NewClient(apiURL, "")))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// phase is the outer screen: login, the wizard steps, then submission.
type phase int

const (
	phaseLogin phase = iota
	phaseSteps
	phaseSubmitting
	phaseDone
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	selStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type field struct {
	label string
	input textinput.Model
	get   func(f *wizard.Form) string
	set   func(f *wizard.Form, v string)
}

type model struct {
	client *wizard.Client
	phase  phase
	state  wizard.State

	fields []field
	focus  int

	// priority reorder cursor (participant profile step)
	prioFocus  bool
	prioCursor int

	errMsg string
}

type loginResultMsg struct {
	role models.Role
	err  error
}

type submitResultMsg struct{ err error }

func newModel(client *wizard.Client) model {
	m := model{client: client, phase: phaseLogin}
	m.fields = []field{
		newField("email", func(f *wizard.Form) string { return "" }, nil),
		newPasswordField("password"),
	}
	m.fields[0].input.Focus()
	return m
}

func newField(label string, get func(f *wizard.Form) string, set func(f *wizard.Form, v string)) field {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 120
	return field{label: label, input: ti, get: get, set: set}
}

func newPasswordField(label string) field {
	f := newField(label, func(*wizard.Form) string { return "" }, nil)
	f.input.EchoMode = textinput.EchoPassword
	return f
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// stepFields builds the inputs for the current wizard step.
func (m *model) stepFields() {
	form := &m.state.Form
	var fs []field
	switch m.state.Step {
	case wizard.StepProfile:
		fs = append(fs, newField("dni",
			func(f *wizard.Form) string { return f.DNI },
			func(f *wizard.Form, v string) { f.DNI = v }))
		if m.state.Role.IsStaff() {
			fs = append(fs,
				newField("company",
					func(f *wizard.Form) string { return f.Company },
					func(f *wizard.Form, v string) { f.Company = v }),
				newField("position",
					func(f *wizard.Form) string { return f.Position },
					func(f *wizard.Form, v string) { f.Position = v }),
				newField("food preference",
					func(f *wizard.Form) string { return f.FoodPreference },
					func(f *wizard.Form, v string) { f.FoodPreference = v }),
				newField("photo file",
					func(f *wizard.Form) string { return f.PhotoPath },
					func(f *wizard.Form, v string) { f.PhotoPath = v }))
		} else {
			fs = append(fs,
				newField("university",
					func(f *wizard.Form) string { return f.University },
					func(f *wizard.Form, v string) { f.University = v }),
				newField("career",
					func(f *wizard.Form) string { return f.Career },
					func(f *wizard.Form, v string) { f.Career = v }),
				newField("age",
					func(f *wizard.Form) string { return f.Age },
					func(f *wizard.Form, v string) { f.Age = v }))
			if len(form.Priorities) == 0 {
				form.Priorities = []int{1, 2, 3}
			}
		}
	case wizard.StepSocial:
		fs = append(fs,
			newField("github",
				func(f *wizard.Form) string { return f.GitHub },
				func(f *wizard.Form, v string) { f.GitHub = v }),
			newField("linkedin",
				func(f *wizard.Form) string { return f.LinkedIn },
				func(f *wizard.Form, v string) { f.LinkedIn = v }),
			newField("cv link",
				func(f *wizard.Form) string { return f.CVLink },
				func(f *wizard.Form, v string) { f.CVLink = v }))
	case wizard.StepTeam:
		switch form.Choice {
		case wizard.ChoiceHasTeam:
			fs = append(fs, newField("team code",
				func(f *wizard.Form) string { return f.TeamCode },
				func(f *wizard.Form, v string) { f.TeamCode = v }))
		case wizard.ChoiceCreate:
			fs = append(fs,
				newField("team name",
					func(f *wizard.Form) string { return f.TeamName },
					func(f *wizard.Form, v string) { f.TeamName = v }),
				newField("motivation",
					func(f *wizard.Form) string { return f.TeamMotivation },
					func(f *wizard.Form, v string) { f.TeamMotivation = v }))
		}
	}
	for i := range fs {
		fs[i].input.SetValue(fs[i].get(form))
	}
	m.fields = fs
	m.focus = 0
	m.prioFocus = false
	m.prioCursor = 0
	if len(m.fields) > 0 {
		m.fields[0].input.Focus()
	}
}

// commitFields copies the input values back into the form.
func (m *model) commitFields() {
	for i := range m.fields {
		if m.fields[i].set != nil {
			m.fields[i].set(&m.state.Form, m.fields[i].input.Value())
		}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.phase = phaseLogin
			return m, nil
		}
		m.errMsg = ""
		m.state = wizard.New(msg.role)
		m.phase = phaseSteps
		m.stepFields()
		return m, nil

	case submitResultMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.phase = phaseSteps
			return m, nil
		}
		m.phase = phaseDone
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.phase == phaseDone {
				return m, tea.Quit
			}
		}
		switch m.phase {
		case phaseLogin:
			return m.updateLogin(msg)
		case phaseSteps:
			return m.updateSteps(msg)
		case phaseDone:
			if msg.String() == "q" || msg.Type == tea.KeyEnter {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown, tea.KeyUp:
		m.setFocus((m.focus + 1) % len(m.fields))
		return m, nil
	case tea.KeyEnter:
		if m.focus < len(m.fields)-1 {
			m.setFocus(m.focus + 1)
			return m, nil
		}
		email := m.fields[0].input.Value()
		password := m.fields[1].input.Value()
		client := m.client
		return m, func() tea.Msg {
			role, err := client.Login(context.Background(), email, password)
			return loginResultMsg{role: role, err: err}
		}
	}
	return m.updateFocusedInput(msg)
}

func (m model) updateSteps(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	onPriorities := m.state.Step == wizard.StepProfile && !m.state.Role.IsStaff()
	onTeamChoice := m.state.Step == wizard.StepTeam

	switch msg.String() {
	case "tab", "down":
		if onPriorities && m.focus == len(m.fields)-1 && !m.prioFocus {
			m.blurAll()
			m.prioFocus = true
			return m, nil
		}
		if m.prioFocus {
			if m.prioCursor < len(m.state.Form.Priorities)-1 {
				m.prioCursor++
			}
			return m, nil
		}
		if len(m.fields) > 0 {
			m.setFocus((m.focus + 1) % len(m.fields))
		}
		return m, nil
	case "up":
		if m.prioFocus {
			if m.prioCursor > 0 {
				m.prioCursor--
			} else {
				m.prioFocus = false
				m.setFocus(len(m.fields) - 1)
			}
			return m, nil
		}
		if len(m.fields) > 0 && m.focus > 0 {
			m.setFocus(m.focus - 1)
		}
		return m, nil
	case "shift+up":
		if m.prioFocus && m.prioCursor > 0 {
			m.state.Form.Priorities = wizard.MovePreference(m.state.Form.Priorities, m.prioCursor, m.prioCursor-1)
			m.prioCursor--
		}
		return m, nil
	case "shift+down":
		if m.prioFocus && m.prioCursor < len(m.state.Form.Priorities)-1 {
			m.state.Form.Priorities = wizard.MovePreference(m.state.Form.Priorities, m.prioCursor, m.prioCursor+1)
			m.prioCursor++
		}
		return m, nil
	case "ctrl+t":
		if onTeamChoice {
			m.cycleChoice(true)
			return m, nil
		}
	case "ctrl+b":
		m.commitFields()
		m.state = m.state.Back()
		m.errMsg = ""
		m.stepFields()
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		if !m.prioFocus && m.focus < len(m.fields)-1 {
			m.setFocus(m.focus + 1)
			return m, nil
		}
		m.commitFields()
		next, err := m.state.Next()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		if m.state.LastStep() {
			m.phase = phaseSubmitting
			client := m.client
			state := next
			return m, func() tea.Msg {
				return submitResultMsg{err: client.Submit(context.Background(), state)}
			}
		}
		m.state = next
		m.stepFields()
		return m, nil
	}

	if m.prioFocus {
		return m, nil
	}
	return m.updateFocusedInput(msg)
}

func (m *model) cycleChoice(forward bool) {
	order := []wizard.TeamChoice{wizard.ChoiceSolo, wizard.ChoiceHasTeam, wizard.ChoiceCreate}
	idx := 0
	for i, c := range order {
		if c == m.state.Form.Choice {
			idx = i
		}
	}
	if forward {
		idx = (idx + 1) % len(order)
	} else {
		idx = (idx + len(order) - 1) % len(order)
	}
	m.state.Form.Choice = order[idx]
	m.stepFields()
}

func (m model) updateFocusedInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.fields) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

func (m *model) setFocus(i int) {
	m.blurAll()
	m.focus = i
	m.fields[i].input.Focus()
}

func (m *model) blurAll() {
	for i := range m.fields {
		m.fields[i].input.Blur()
	}
}

func (m model) View() string {
	switch m.phase {
	case phaseLogin:
		return m.viewForm("Sign in", "enter: next · ctrl+c: quit")
	case phaseSteps:
		title := fmt.Sprintf("Registration — step %d of %d", int(m.state.Step)+1, m.state.TotalSteps())
		help := "enter: next · ctrl+b: back · ctrl+c: quit"
		if m.state.Step == wizard.StepTeam {
			help = "ctrl+t: change team option · " + help
		}
		return m.viewForm(title, help)
	case phaseSubmitting:
		return titleStyle.Render("Submitting…") + "\n"
	case phaseDone:
		return okStyle.Render("Registration complete. See you at the event!") + "\n" +
			helpStyle.Render("press enter to exit") + "\n"
	}
	return ""
}

func (m model) viewForm(title, help string) string {
	out := titleStyle.Render(title) + "\n\n"
	if m.phase == phaseSteps && m.state.Step == wizard.StepTeam {
		out += labelStyle.Render("team option: ") + selStyle.Render(string(m.state.Form.Choice)) + "\n\n"
	}
	for i, f := range m.fields {
		label := f.label
		if i == m.focus && !m.prioFocus {
			label = selStyle.Render(label)
		} else {
			label = labelStyle.Render(label)
		}
		out += label + "\n" + f.input.View() + "\n"
	}
	if m.phase == phaseSteps && m.state.Step == wizard.StepProfile && !m.state.Role.IsStaff() {
		out += "\n" + labelStyle.Render("category preferences (shift+↑/↓ to reorder)") + "\n"
		for i, p := range m.state.Form.Priorities {
			line := fmt.Sprintf("  %d. category %d", i+1, p)
			if m.prioFocus && i == m.prioCursor {
				line = selStyle.Render("▸" + line[1:])
			}
			out += line + "\n"
		}
	}
	if m.errMsg != "" {
		out += "\n" + errStyle.Render(m.errMsg) + "\n"
	}
	out += "\n" + helpStyle.Render(help) + "\n"
	return out
}
