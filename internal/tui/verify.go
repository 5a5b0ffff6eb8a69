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

// VerifyModel resends verification emails and checks verification status.
type VerifyModel struct {
	ctx      context.Context
	verifier service.Verifier

	email  textinput.Model
	busy   bool
	result string
	errMsg string
}

func NewVerifyModel(ctx context.Context, verifier service.Verifier) *VerifyModel {
	email := newInput("email", 254, false)
	email.Focus()
	return &VerifyModel{ctx: ctx, verifier: verifier, email: email}
}

func (m *VerifyModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *VerifyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case verifyDoneMsg:
		m.busy = false
		m.result, m.errMsg = msg.text, app.UserMessage(msg.err)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.result, m.errMsg = "", ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.enter):
			return m, m.start(m.cmdResend)
		case key.Matches(msg, keys.status):
			return m, m.start(m.cmdStatus)
		}
	}

	var cmd tea.Cmd
	m.email, cmd = m.email.Update(msg)
	return m, cmd
}

func (m *VerifyModel) start(build func(email string) tea.Cmd) tea.Cmd {
	if m.busy {
		return nil
	}
	m.busy = true
	m.result, m.errMsg = "", ""
	return build(m.email.Value())
}

func (m *VerifyModel) View() string {
	var b strings.Builder
	b.WriteString("Email │ [")
	b.WriteString(m.email.View())
	b.WriteString("]\n")
	if m.busy {
		b.WriteString("\n[Working...]\n")
	}
	writeStatus(&b, m.result, m.errMsg)

	return renderPage("EMAIL VERIFICATION", strings.TrimRight(b.String(), "\n"),
		"esc: back │ enter: resend email │ ctrl+s: check status")
}

func (m *VerifyModel) cmdResend(email string) tea.Cmd {
	ctx, verifier := m.ctx, m.verifier
	return func() tea.Msg {
		text, err := verifier.Resend(ctx, email)
		return verifyDoneMsg{text: text, err: err}
	}
}

func (m *VerifyModel) cmdStatus(email string) tea.Cmd {
	ctx, verifier := m.ctx, m.verifier
	return func() tea.Msg {
		ok, err := verifier.Status(ctx, email)
		if err != nil {
			return verifyDoneMsg{err: err}
		}
		if ok {
			return verifyDoneMsg{text: "Email is verified."}
		}
		return verifyDoneMsg{text: "Email is not verified yet."}
	}
}
