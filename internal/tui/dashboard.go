// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pii-sentinel/sentinel-client/internal/adapter"
	"github.com/pii-sentinel/sentinel-client/internal/app"
	"github.com/pii-sentinel/sentinel-client/internal/logger"
	"github.com/pii-sentinel/sentinel-client/internal/service"
	"github.com/pii-sentinel/sentinel-client/models"
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// DashboardModel is the authenticated page. It loads the session user and
// the artifact listing together and renders the composed result with three
// tabs: files, account info and upload.
type DashboardModel struct {
	ctx      context.Context
	services *service.ClientServices
	fp       service.Fingerprint
	logger   *logger.Logger

	loader  *service.DashboardLoader
	loading bool
	spinner spinner.Model
	dash    service.Dashboard

	tab service.Tab
	idx int

	upload    textinput.Model
	uploading bool
	lastScan  *models.ScanResult

	loggingOut bool
	status     string
	errMsg     string
}

func NewDashboardModel(ctx context.Context, services *service.ClientServices, fp service.Fingerprint, log *logger.Logger) *DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &DashboardModel{
		ctx:      ctx,
		services: services,
		fp:       fp,
		logger:   log.WithComponent("dashboard"),
		spinner:  s,
		upload:   newInput("path to a .csv, .xlsx, .pdf ... file", 1024, false),
	}
}

// Init starts a fresh load. Any load still running for a previous visit is
// cancelled and its result dropped.
func (m *DashboardModel) Init() tea.Cmd {
	if m.loader != nil {
		m.loader.Close()
	}
	m.loader = m.services.NewDashboardLoader()
	m.loading = true
	m.dash = service.Dashboard{Kind: service.DashboardLoading}
	m.status, m.errMsg = "", ""
	return tea.Batch(m.spinner.Tick, cmdLoadDashboard(m.ctx, m.loader))
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if !msg.ok || msg.loader != m.loader {
			return m, nil
		}
		m.loading = false
		m.dash = msg.dashboard
		if m.idx >= len(m.dash.Files) {
			m.idx = max(len(m.dash.Files)-1, 0)
		}
		if m.dash.Kind == service.DashboardSessionError && adapter.StatusCode(m.dash.Err) == http.StatusUnauthorized {
			m.loader.Close()
			notice := NoticeMsg{Text: app.UserMessage(m.dash.Err)}
			return m, func() tea.Msg { return NavigateTo{Page: pageLogin, Payload: notice} }
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case logoutDoneMsg:
		m.loggingOut = false
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "DashboardModel.Update").Msg("logout finished with local error")
		}
		m.loader.Close()
		m.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: NoticeMsg{Text: app.MsgLoggedOut}}
		}

	case downloadDoneMsg:
		if msg.err != nil {
			m.errMsg = app.UserMessage(msg.err)
			return m, nil
		}
		m.errMsg, m.status = "", "Saved to "+msg.path
		return m, nil

	case uploadDoneMsg:
		m.uploading = false
		if msg.err != nil {
			m.errMsg = app.UserMessage(msg.err)
			return m, nil
		}
		result := msg.result
		m.lastScan = &result
		m.upload.SetValue("")
		m.errMsg, m.status = "", "Scanned "+result.Filename
		return m, m.reload()

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Clipboard unavailable"
			return m, nil
		}
		m.errMsg, m.status = "", "Copied "+msg.what
		return m, nil

	case FingerprintReadyMsg:
		if m.errMsg == app.MsgFingerprintNotReady {
			m.errMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *DashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loggingOut {
		return m, nil
	}

	if m.tab == service.TabUpload {
		return m.updateUploadTab(msg)
	}

	switch {
	case key.Matches(msg, keys.nextTab):
		m.switchTab(m.tab.Next())
	case key.Matches(msg, keys.prevTab):
		m.switchTab(m.tab.Prev())
	case key.Matches(msg, keys.logout):
		return m, m.startLogout()
	case key.Matches(msg, keys.refresh):
		if m.loading {
			return m, nil
		}
		return m, m.reload()
	case !m.ready():
	case m.tab == service.TabFiles:
		return m.updateFilesTab(msg)
	case m.tab == service.TabInfo && key.Matches(msg, keys.copy):
		if m.dash.User.DeviceToken != "" {
			return m, cmdCopy("device token", m.dash.User.DeviceToken)
		}
	}
	return m, nil
}

func (m *DashboardModel) updateFilesTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	files := m.dash.Files
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(files)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if m.idx < len(files) {
			m.status, m.errMsg = "Downloading "+files[m.idx].Name+"...", ""
			return m, cmdDownload(m.ctx, m.services.Download, files[m.idx].Name)
		}
	case key.Matches(msg, keys.copy):
		if m.idx < len(files) {
			return m, cmdCopy(files[m.idx].Name, files[m.idx].Name)
		}
	}
	return m, nil
}

func (m *DashboardModel) updateUploadTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		m.switchTab(m.tab.Next())
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.switchTab(m.tab.Prev())
		return m, nil
	case key.Matches(msg, keys.esc):
		m.switchTab(service.TabFiles)
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.uploading {
			return m, nil
		}
		if _, ok := m.fp.Value(); !ok {
			m.errMsg = app.MsgFingerprintNotReady
			return m, nil
		}
		m.uploading = true
		m.status, m.errMsg = "", ""
		return m, cmdUpload(m.ctx, m.services.Upload, m.upload.Value())
	}

	if m.uploading {
		return m, nil
	}
	var cmd tea.Cmd
	m.upload, cmd = m.upload.Update(msg)
	return m, cmd
}

func (m *DashboardModel) switchTab(t service.Tab) {
	m.tab = t
	m.status, m.errMsg = "", ""
	if t == service.TabUpload {
		m.upload.Focus()
	} else {
		m.upload.Blur()
	}
}

func (m *DashboardModel) reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, cmdLoadDashboard(m.ctx, m.loader))
}

func (m *DashboardModel) startLogout() tea.Cmd {
	m.loggingOut = true
	ctx, logout := m.ctx, m.services.Logout
	return func() tea.Msg {
		return logoutDoneMsg{err: logout.Logout(ctx)}
	}
}

func (m *DashboardModel) reset() {
	m.tab = service.TabFiles
	m.idx = 0
	m.dash = service.Dashboard{}
	m.lastScan = nil
	m.upload.SetValue("")
	m.upload.Blur()
	m.status, m.errMsg = "", ""
}

// ready reports whether the tabs can be shown.
func (m *DashboardModel) ready() bool {
	switch m.dash.Kind {
	case service.DashboardNoData, service.DashboardNoUser, service.DashboardReady:
		return true
	default:
		return false
	}
}

// Tab returns the active tab.
func (m *DashboardModel) Tab() service.Tab {
	return m.tab
}

func (m *DashboardModel) View() string {
	const title = "DASHBOARD"

	switch {
	case m.loggingOut:
		return renderPage(title, "Logging out...", "")
	case m.loading && !m.ready():
		return renderPage(title, m.spinner.View()+" Loading...", "l: logout")
	case m.dash.Kind == service.DashboardSessionError, m.dash.Kind == service.DashboardListingError:
		var b strings.Builder
		writeStatus(&b, "", app.UserMessage(m.dash.Err))
		return renderPage(title, strings.TrimSpace(b.String()), "r: retry │ l: logout")
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	var help string
	switch m.tab {
	case service.TabFiles:
		b.WriteString(m.viewFiles())
		help = "↑/↓: move │ enter: download │ c: copy name │ tab: next tab │ r: refresh │ l: logout"
	case service.TabInfo:
		b.WriteString(m.viewInfo())
		help = "c: copy device token │ tab: next tab │ r: refresh │ l: logout"
	case service.TabUpload:
		b.WriteString(m.viewUpload())
		help = "enter: upload │ tab: next tab │ esc: files"
	}

	if m.loading {
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Refreshing...")
	}
	writeStatus(&b, m.status, m.errMsg)

	return renderPage(title, strings.TrimRight(b.String(), "\n"), help)
}

func (m *DashboardModel) viewTabs() string {
	parts := make([]string, 0, len(service.Tabs()))
	for _, t := range service.Tabs() {
		if t == m.tab {
			parts = append(parts, activeTabStyle.Render("["+t.String()+"]"))
		} else {
			parts = append(parts, tabStyle.Render(" "+t.String()+" "))
		}
	}
	header := strings.Join(parts, " ")
	if name := m.dash.User.DisplayName; name != "" {
		header += "   " + helpStyle.Render(name+" · "+m.dash.User.Tier.Label())
	}
	return header
}

func (m *DashboardModel) viewFiles() string {
	if m.dash.Kind == service.DashboardNoData {
		return app.MsgNoData
	}

	var b strings.Builder
	for i, f := range m.dash.Files {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(fitText(f.Name, 60))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *DashboardModel) viewInfo() string {
	u := m.dash.User
	if m.dash.Kind == service.DashboardNoUser || u.IsZero() {
		return app.MsgNoUser
	}

	rows := [][2]string{
		{"Name", u.DisplayName},
		{"User ID", string(u.ID)},
		{"Tier", u.Tier.Label()},
		{"Device token", fitText(u.DeviceToken, 48)},
	}
	var b strings.Builder
	for _, r := range rows {
		v := r[1]
		if v == "" {
			v = "-"
		}
		b.WriteString(padRight(r[0], 12))
		b.WriteString(" │ ")
		b.WriteString(v)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *DashboardModel) viewUpload() string {
	var b strings.Builder
	b.WriteString("File │ [")
	b.WriteString(m.upload.View())
	b.WriteString("]\n")
	b.WriteString(helpStyle.Render(fingerprintLine(m.fp)))
	b.WriteString("\n")
	if m.uploading {
		b.WriteString("\n[Uploading...]")
	} else {
		b.WriteString("\n[Upload]")
	}

	if s := m.lastScan; s != nil {
		cols := "-"
		if len(s.PIIColumns) > 0 {
			cols = strings.Join(s.PIIColumns, ", ")
		}
		summary := fmt.Sprintf("File: %s\nRisk score: %.2f\nRedacted: %d of %d values\nPII columns: %s\nOutput: %s",
			s.Filename, s.RiskScore, s.RedactedCount, s.TotalValues, cols, s.RedactedFile)
		b.WriteString("\n\n")
		b.WriteString(boxStyle.Render(summary))
	}
	return b.String()
}

func cmdLoadDashboard(ctx context.Context, loader *service.DashboardLoader) tea.Cmd {
	return func() tea.Msg {
		d, ok := loader.Load(ctx)
		return dashboardLoadedMsg{loader: loader, dashboard: d, ok: ok}
	}
}

func cmdDownload(ctx context.Context, d service.Downloader, name string) tea.Cmd {
	return func() tea.Msg {
		path, err := d.Download(ctx, name)
		return downloadDoneMsg{path: path, err: err}
	}
}

func cmdUpload(ctx context.Context, u service.Uploader, path string) tea.Cmd {
	return func() tea.Msg {
		result, err := u.Upload(ctx, path)
		return uploadDoneMsg{result: result, err: err}
	}
}

func cmdCopy(what, value string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{what: what, err: writeClipboard(value)}
	}
}
