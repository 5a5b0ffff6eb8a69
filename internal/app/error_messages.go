// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording of the sentinel client.
//
// All Msg* constants are strings shown in the terminal UI. [UserMessage] is
// the single place where an error from any layer is turned into one of them,
// so views never print raw error chains.
package app

import (
	"errors"
	"strings"

	"github.com/pii-sentinel/sentinel-client/internal/adapter"
	"github.com/pii-sentinel/sentinel-client/internal/service"
	"github.com/pii-sentinel/sentinel-client/internal/validators"
)

const (
	// MsgFingerprintNotReady is shown when a gated action is attempted
	// before the device fingerprint has been computed.
	MsgFingerprintNotReady = "Device fingerprint not ready yet, please wait a moment."

	// MsgSubmissionInProgress is shown when the user re-submits a form whose
	// previous submission has not finished.
	MsgSubmissionInProgress = "Please wait, your request is still being processed."

	// MsgNetworkFailure is shown when the backend could not be reached.
	MsgNetworkFailure = "Cannot reach the server. Check your connection and try again."

	// MsgRateLimited is shown when the local request limiter refused a call.
	MsgRateLimited = "Too many requests, slow down."

	// MsgSessionMissing is shown when there is no stored session.
	MsgSessionMissing = "You are not logged in."

	// MsgSessionExpired is shown when the stored session has expired.
	MsgSessionExpired = "Your session has expired, please log in again."

	// MsgUnsupportedFileType lists the upload formats.
	MsgUnsupportedFileType = "Unsupported file type. Allowed: csv, xlsx, tsv, txt, log, json, xml, docx, pdf, html."

	// MsgInvalidArtifactName is shown for download names that are not plain
	// file names.
	MsgInvalidArtifactName = "Invalid file name."

	// MsgUnexpectedResponse is the generic fallback for bodies without text.
	MsgUnexpectedResponse = adapter.UnexpectedResponseMessage

	// MsgSomethingWentWrong is the last-resort message.
	MsgSomethingWentWrong = "Something went wrong, please try again."

	// MsgNoData is the dashboard text for an empty artifact listing.
	MsgNoData = "No redacted files yet. Upload a file to get started."

	// MsgNoUser is the dashboard text when the session resolved to nobody.
	MsgNoUser = "No user information available."

	// MsgLoggedOut is shown on the menu after logout.
	MsgLoggedOut = "You have been logged out."
)

// UserMessage returns the text a view should display for err. It returns
// "" for a nil error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var (
		ve *validators.ValidationError
		se *adapter.StatusError
	)

	switch {
	case errors.Is(err, service.ErrFingerprintNotReady):
		return MsgFingerprintNotReady
	case errors.Is(err, service.ErrSubmissionInProgress):
		return MsgSubmissionInProgress
	case errors.Is(err, service.ErrCredentialExpired):
		return MsgSessionExpired
	case errors.Is(err, service.ErrNoCredential):
		return MsgSessionMissing
	case errors.Is(err, service.ErrUnsupportedFileType):
		return MsgUnsupportedFileType
	case errors.Is(err, service.ErrInvalidArtifactName):
		return MsgInvalidArtifactName
	case errors.As(err, &ve):
		return strings.Join(ve.Messages, ", ")
	case errors.As(err, &se):
		if strings.TrimSpace(se.Message) == "" {
			return MsgUnexpectedResponse
		}
		return se.Message
	case errors.Is(err, adapter.ErrRateLimited):
		return MsgRateLimited
	case errors.Is(err, adapter.ErrNetwork):
		return MsgNetworkFailure
	case errors.Is(err, adapter.ErrUnexpectedResponse):
		return MsgUnexpectedResponse
	default:
		return MsgSomethingWentWrong
	}
}
