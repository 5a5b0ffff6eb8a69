// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the sentinel client, built on
// Bubble Tea. Pages are independent tea.Models switched by [RootModel] in
// response to [NavigateTo] messages; all backend work runs in tea.Cmds that
// call the service layer.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pii-sentinel/sentinel-client/internal/logger"
	"github.com/pii-sentinel/sentinel-client/internal/service"
	"github.com/pii-sentinel/sentinel-client/models"
)

var ErrUserQuit = errors.New("user quit")

// FingerprintSource is the fingerprint provider as seen by the UI.
type FingerprintSource interface {
	service.Fingerprint
	Subscribe(fn func(string))
}

// TUI owns the Bubble Tea program.
type TUI struct {
	services    *service.ClientServices
	fingerprint FingerprintSource
	hasSession  func() bool
	buildInfo   models.AppBuildInfo
	logger      *logger.Logger
}

// New creates the TUI. hasSession decides whether the program opens on the
// dashboard or on the menu.
func New(
	services *service.ClientServices,
	fp FingerprintSource,
	hasSession func() bool,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	return &TUI{
		services:    services,
		fingerprint: fp,
		hasSession:  hasSession,
		buildInfo:   buildInfo,
		logger:      log.WithComponent("tui"),
	}, nil
}

// NewRoot builds the page router.
func (t *TUI) NewRoot(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageMenu:      NewMenuModel(),
		pageLogin:     NewLoginModel(ctx, t.services.Login, t.fingerprint),
		pageRegister:  NewRegisterModel(ctx, t.services.Register, t.fingerprint),
		pageVerify:    NewVerifyModel(ctx, t.services.Verification),
		pageDashboard: NewDashboardModel(ctx, t.services, t.fingerprint, t.logger),
	}

	start := pageMenu
	if t.hasSession != nil && t.hasSession() {
		start = pageDashboard
	}
	return NewRootModel(pages, start, t.buildInfo)
}

// Run blocks until the user quits. It returns [ErrUserQuit] on ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	p := tea.NewProgram(t.NewRoot(ctx), tea.WithAltScreen(), tea.WithContext(ctx))

	// Send blocks until the event loop reads it, and Subscribe may call
	// back synchronously.
	t.fingerprint.Subscribe(func(string) {
		go p.Send(FingerprintReadyMsg{})
	})

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.QuitByUser() {
		return ErrUserQuit
	}
	return nil
}
