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
)

// LoginModel is the Bubble Tea model for the login screen. It renders the
// email and password inputs and dispatches an async login command on enter.
// On success it navigates to the dashboard.
type LoginModel struct {
	ctx         context.Context
	auth        service.Authenticator
	fingerprint service.Fingerprint

	form       focusRing
	submitting bool
	notice     string
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with the email field focused.
func NewLoginModel(ctx context.Context, auth service.Authenticator, fp service.Fingerprint) *LoginModel {
	email := newInput("email", 254, false)
	email.Focus()

	return &LoginModel{
		ctx:         ctx,
		auth:        auth,
		fingerprint: fp,
		form:        focusRing{inputs: []textinput.Model{email, newInput("password", 256, true)}},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [loginDoneMsg]  clears submitting state; on error populates errMsg,
//     on success navigates to the dashboard.
//   - [NoticeMsg]     shows a status line (for example an expired session).
//   - esc             navigates back to the menu.
//   - tab, shift+tab  move focus.
//   - enter           dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = app.UserMessage(msg.err)
			return m, nil
		}
		m.errMsg, m.notice = "", ""
		m.form.reset()
		return m, func() tea.Msg { return NavigateTo{Page: pageDashboard} }
	case NoticeMsg:
		m.notice = msg.Text
		return m, nil
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
			m.errMsg, m.notice = "", ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.prev()
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
			return m, m.cmdLogin(m.form.inputs[0].Value(), m.form.inputs[1].Value())
		}
	}

	if m.submitting {
		return m, nil
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Email    │ [")
	b.WriteString(m.form.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.form.inputs[1].View())
	b.WriteString("]\n\n")
	b.WriteString(helpStyle.Render(fingerprintLine(m.fingerprint)))
	b.WriteString("\n")

	switch {
	case m.submitting:
		b.WriteString("\n[Logging in...]\n")
	default:
		b.WriteString("\n[Log in]\n")
	}

	writeStatus(&b, m.notice, m.errMsg)

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return loginDoneMsg{err: auth.Login(ctx, email, password)}
	}
}
