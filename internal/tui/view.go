package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var fieldLabels = [fieldCount]string{
	"Gross Income",
	"Filing Status",
	"State",
	"Deductions",
	"Credits",
}

// View implements tea.Model.
func (m Model) View() string {
	var form strings.Builder
	for i, input := range m.inputs {
		label := labelStyle
		if i == m.focused {
			label = focusedLabelStyle
		}
		form.WriteString(label.Render(fieldLabels[i]))
		form.WriteString(" ")
		form.WriteString(input.View())
		form.WriteString("\n")
	}

	left := panelStyle.Render(form.String())
	right := panelStyle.Render(m.resultView())

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("taxcalc - income tax calculator"),
		body,
		helpStyle.Render("tab: next field • enter: calculate • esc: quit"),
	)
}

func (m Model) resultView() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("error: %v", m.err))
	}
	if m.summary == nil {
		return resultLabelStyle.Render("enter values and press enter")
	}

	s := m.summary
	var sb strings.Builder
	row := func(label string, value string) {
		sb.WriteString(resultLabelStyle.Render(label))
		sb.WriteString(resultValueStyle.Render(value))
		sb.WriteString("\n")
	}

	row("Taxable Income", dollars(s.TaxableIncome))
	row("Federal Tax", dollars(s.FederalTax))
	if s.TaxCredits.GreaterThan(decimal.Zero) {
		row("After Credits", dollars(s.FederalTaxAfterCredits))
	}
	if m.inputs[fieldState].Value() != "" {
		row("State Tax", dollars(s.StateTax))
	}
	row("Total Tax", dollars(s.TotalTax))
	row("Effective Rate", s.EffectiveRate.Mul(decimal.NewFromInt(100)).StringFixed(2)+"%")
	row("Marginal Rate", s.MarginalRate.Mul(decimal.NewFromInt(100)).StringFixed(2)+"%")

	if len(s.BracketDetails) > 0 {
		sb.WriteString("\n")
		for _, d := range s.BracketDetails {
			rate := d.Rate.Mul(decimal.NewFromInt(100)).StringFixed(0)
			sb.WriteString(fmt.Sprintf("%3s%%  %s\n", rate, dollars(d.TaxAmount)))
		}
	}

	return sb.String()
}

func dollars(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
