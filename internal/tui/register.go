// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pii-sentinel/sentinel-client/internal/app"
	"github.com/pii-sentinel/sentinel-client/internal/service"
	"github.com/pii-sentinel/sentinel-client/models"
)

// Field order of the registration form.
const (
	regFirstName = iota
	regLastName
	regEmail
	regPassword
	regTier
)

// RegisterModel is the Bubble Tea model for the registration screen. The
// last row is a tier selector switched with left/right. On success the
// model resets and navigates to the menu with the server's confirmation.
type RegisterModel struct {
	ctx         context.Context
	registrar   service.Registrar
	fingerprint service.Fingerprint

	form       focusRing
	tiers      []models.Tier
	tierIdx    int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, registrar service.Registrar, fp service.Fingerprint) *RegisterModel {
	first := newInput("first name", 64, false)
	first.Focus()

	// The tier row is a selector; its input only carries focus.
	tier := textinput.New()
	tier.Prompt = ""

	return &RegisterModel{
		ctx:         ctx,
		registrar:   registrar,
		fingerprint: fp,
		form: focusRing{inputs: []textinput.Model{
			first,
			newInput("last name", 64, false),
			newInput("email", 254, false),
			newInput("password (min 8)", 256, true),
			tier,
		}},
		tiers: models.Tiers(),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Besides the login-style navigation keys,
// left/right change the tier while the tier row is focused.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registerDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = app.UserMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.resetForm()
		notice := NoticeMsg{Text: msg.message}
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu, Payload: notice} }
	case FingerprintReadyMsg:
		if m.errMsg == app.MsgFingerprintNotReady {
			m.errMsg = ""
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.prev()
			return m, nil
		case m.form.focus == regTier && key.Matches(msg, keys.left):
			m.tierIdx = (m.tierIdx - 1 + len(m.tiers)) % len(m.tiers)
			return m, nil
		case m.form.focus == regTier && key.Matches(msg, keys.right):
			m.tierIdx = (m.tierIdx + 1) % len(m.tiers)
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			if _, ok := m.fingerprint.Value(); !ok {
				m.errMsg = app.MsgFingerprintNotReady
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(m.formValue())
		}
	}

	if m.submitting || m.form.focus == regTier {
		return m, nil
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼──────────────────────────────────────────\n")
	rows := []string{"First name", "Last name", "Email", "Password"}
	for i, label := range rows {
		b.WriteString(padRight(label, 10))
		b.WriteString(" │ [")
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("]\n")
	}

	b.WriteString(padRight("Tier", 10))
	b.WriteString(" │ ")
	for i, t := range m.tiers {
		label := t.Label()
		if i == m.tierIdx {
			label = "(" + label + ")"
			if m.form.focus == regTier {
				label = activeTabStyle.Render(label)
			}
		} else {
			label = " " + label + " "
		}
		b.WriteString(label)
		b.WriteString(" ")
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(fingerprintLine(m.fingerprint)))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	writeStatus(&b, "", m.errMsg)

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"),
		"esc: back │ tab: next field │ ←/→: tier │ enter: submit")
}

func (m *RegisterModel) formValue() service.RegisterForm {
	return service.RegisterForm{
		FirstName: m.form.inputs[regFirstName].Value(),
		LastName:  m.form.inputs[regLastName].Value(),
		Email:     m.form.inputs[regEmail].Value(),
		Password:  m.form.inputs[regPassword].Value(),
		Tier:      string(m.tiers[m.tierIdx]),
	}
}

func (m *RegisterModel) cmdRegister(form service.RegisterForm) tea.Cmd {
	ctx := m.ctx
	registrar := m.registrar

	return func() tea.Msg {
		msg, err := registrar.Register(ctx, form)
		return registerDoneMsg{message: msg, err: err}
	}
}

func (m *RegisterModel) resetForm() {
	m.form.reset()
	m.tierIdx = 0
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
