package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/taxcalc/internal/calculation"
	"github.com/ledgerline/taxcalc/internal/domain"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down":
			m.setFocus((m.focused + 1) % fieldCount)
			return m, nil

		case "shift+tab", "up":
			m.setFocus((m.focused + fieldCount - 1) % fieldCount)
			return m, nil

		case "enter":
			m.calculate()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
}

// calculate builds a request from the form fields and runs the engine.
// Errors (bad numbers, unknown status or state) land in m.err and replace
// the summary panel until the next successful run.
func (m *Model) calculate() {
	m.summary = nil
	m.err = nil

	gross, err := parseField(m.inputs[fieldIncome].Value(), "0")
	if err != nil {
		m.err = err
		return
	}

	status := m.inputs[fieldStatus].Value()
	if status == "" {
		status = "single"
	}

	req := domain.TaxRequest{
		GrossIncome:  gross,
		FilingStatus: status,
		State:        m.inputs[fieldState].Value(),
	}

	if v := m.inputs[fieldDeductions].Value(); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			m.err = err
			return
		}
		req.Deductions = &d
	}
	if v := m.inputs[fieldCredits].Value(); v != "" {
		c, err := decimal.NewFromString(v)
		if err != nil {
			m.err = err
			return
		}
		req.Credits = &c
	}

	summary, err := calculation.CalculateSummary(req)
	if err != nil {
		m.err = err
		return
	}
	m.summary = summary
}

func parseField(value, fallback string) (decimal.Decimal, error) {
	if value == "" {
		value = fallback
	}
	return decimal.NewFromString(value)
}
