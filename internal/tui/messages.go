// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pii-sentinel/sentinel-client/internal/service"
	"github.com/pii-sentinel/sentinel-client/models"
)

// Page names used with [NavigateTo].
const (
	pageMenu      = "menu"
	pageLogin     = "login"
	pageRegister  = "register"
	pageVerify    = "verify"
	pageDashboard = "dashboard"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page right after its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// NoticeMsg carries a one-line status for the receiving page.
type NoticeMsg struct {
	Text string
}

// FingerprintReadyMsg is sent once the device fingerprint is available.
type FingerprintReadyMsg struct{}

type loginDoneMsg struct {
	err error
}

type registerDoneMsg struct {
	message string
	err     error
}

type verifyDoneMsg struct {
	text string
	err  error
}

type dashboardLoadedMsg struct {
	loader    *service.DashboardLoader
	dashboard service.Dashboard
	ok        bool
}

type logoutDoneMsg struct {
	err error
}

type downloadDoneMsg struct {
	path string
	err  error
}

type uploadDoneMsg struct {
	result models.ScanResult
	err    error
}

type copiedMsg struct {
	what string
	err  error
}
