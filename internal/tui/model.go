// Package tui is an interactive terminal front end for the tax engine:
// a small form for income, filing status and state, with a live summary
// panel rendered after each calculation.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ledgerline/taxcalc/internal/domain"
)

// Field indices into Model.inputs.
const (
	fieldIncome = iota
	fieldStatus
	fieldState
	fieldDeductions
	fieldCredits
	fieldCount
)

// Model is the Bubble Tea model for the calculator.
type Model struct {
	inputs  []textinput.Model
	focused int

	summary *domain.TaxSummary
	err     error

	width  int
	height int
}

// NewModel builds the initial form with the income field focused.
func NewModel() Model {
	inputs := make([]textinput.Model, fieldCount)

	income := textinput.New()
	income.Placeholder = "85000"
	income.Prompt = ""
	income.CharLimit = 12
	income.Focus()
	inputs[fieldIncome] = income

	status := textinput.New()
	status.Placeholder = "single | mfj | mfs | hoh | qw"
	status.Prompt = ""
	status.CharLimit = 32
	inputs[fieldStatus] = status

	state := textinput.New()
	state.Placeholder = "CA (optional)"
	state.Prompt = ""
	state.CharLimit = 2
	inputs[fieldState] = state

	deductions := textinput.New()
	deductions.Placeholder = "itemized (optional)"
	deductions.Prompt = ""
	deductions.CharLimit = 12
	inputs[fieldDeductions] = deductions

	credits := textinput.New()
	credits.Placeholder = "credits (optional)"
	credits.Prompt = ""
	credits.CharLimit = 12
	inputs[fieldCredits] = credits

	return Model{inputs: inputs}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
