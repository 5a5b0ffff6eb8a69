// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pii-sentinel/sentinel-client/internal/config"
	"github.com/pii-sentinel/sentinel-client/internal/logger"
	"github.com/pii-sentinel/sentinel-client/internal/metrics"
	"github.com/pii-sentinel/sentinel-client/internal/store"
	"github.com/pii-sentinel/sentinel-client/internal/utils"
	"github.com/pii-sentinel/sentinel-client/models"
)

// Backend routes.
const (
	pathToken              = "/auth/token"
	pathRegister           = "/auth/register"
	pathLogout             = "/auth/logout"
	pathResendVerification = "/auth/resend-verification"
	pathVerificationStatus = "/verification/check_verification_status"
	pathMe                 = "/protected/me"
	pathRedactedFiles      = "/redacted/files"
	pathDownload           = "/download/{name}"
	pathPredict            = "/predict/"
)

// maxErrorBody caps how much of a streamed error response is read.
const maxErrorBody = 64 << 10

type httpServerAdapter struct {
	client  *utils.HTTPClient
	creds   store.CredentialReader
	metrics metrics.Recorder
	logger  *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of
// [ServerAdapter]. creds is consulted on every authenticated call.
func NewHTTPServerAdapter(cfg config.ClientAdapter, creds store.CredentialReader, rec metrics.Recorder, log *logger.Logger) (ServerAdapter, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("invalid adapter config: empty base URL")
	}
	if rec == nil {
		rec = metrics.Nop{}
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		Timeout:   cfg.RequestTimeout,
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
	})
	client.SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{
		client:  client,
		creds:   creds,
		metrics: rec,
		logger:  log.WithComponent("adapter"),
	}, nil
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (cred models.Credential, err error) {
	defer h.observe("login", time.Now(), &err)

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(req.FormData()).
		Post(pathToken)
	if err != nil {
		return "", transportError("login request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var tr models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &tr); err != nil {
		return "", decodeError("decode token response", err)
	}
	cred = models.NewCredential(tr.AccessToken)
	if cred.IsZero() {
		return "", decodeError("decode token response", fmt.Errorf("empty access_token"))
	}

	return cred, nil
}

// Register implements [ServerAdapter].
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (msg string, err error) {
	defer h.observe("register", time.Now(), &err)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(pathRegister)
	if err != nil {
		return "", transportError("register request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return decodeMessage(resp.Body()), nil
}

// Logout implements [ServerAdapter].
func (h *httpServerAdapter) Logout(ctx context.Context) (err error) {
	defer h.observe("logout", time.Now(), &err)

	resp, err := h.authedRequest(ctx).Post(pathLogout)
	if err != nil {
		return transportError("logout request", err)
	}

	return mapHTTPError(resp)
}

// Me implements [ServerAdapter].
func (h *httpServerAdapter) Me(ctx context.Context) (user models.SessionUser, err error) {
	defer h.observe("me", time.Now(), &err)

	resp, err := h.authedRequest(ctx).Get(pathMe)
	if err != nil {
		return models.SessionUser{}, transportError("me request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionUser{}, err
	}

	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.SessionUser{}, decodeError("decode me response", err)
	}

	return user, nil
}

// ListArtifacts implements [ServerAdapter].
func (h *httpServerAdapter) ListArtifacts(ctx context.Context) (refs []models.ArtifactRef, err error) {
	defer h.observe("list_artifacts", time.Now(), &err)

	resp, err := h.authedRequest(ctx).Get(pathRedactedFiles)
	if err != nil {
		return nil, transportError("list artifacts request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var fr models.FilesResponse
	if err = json.Unmarshal(resp.Body(), &fr); err != nil {
		return nil, decodeError("decode files response", err)
	}

	return models.ArtifactRefs(fr.Files), nil
}

// Download implements [ServerAdapter]. The body is streamed; it is never
// buffered in memory.
func (h *httpServerAdapter) Download(ctx context.Context, name string, w io.Writer) (n int64, err error) {
	defer h.observe("download", time.Now(), &err)

	resp, err := h.authedRequest(ctx).
		SetDoNotParseResponse(true).
		SetPathParam("name", name).
		Get(pathDownload)
	if err != nil {
		return 0, transportError("download request", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if !resp.IsSuccess() {
		data, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
		return 0, statusError(resp.StatusCode(), resp.Header().Get("Content-Type"), data)
	}

	n, err = io.Copy(w, body)
	if err != nil {
		return n, fmt.Errorf("download %q: %w: %w", name, ErrNetwork, err)
	}

	return n, nil
}

// Upload implements [ServerAdapter].
func (h *httpServerAdapter) Upload(ctx context.Context, filename string, r io.Reader) (res models.ScanResult, err error) {
	defer h.observe("upload", time.Now(), &err)

	resp, err := h.authedRequest(ctx).
		SetFileReader("file", filename, r).
		Post(pathPredict)
	if err != nil {
		return models.ScanResult{}, transportError("upload request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ScanResult{}, err
	}

	if err = json.Unmarshal(resp.Body(), &res); err != nil {
		return models.ScanResult{}, decodeError("decode scan result", err)
	}

	return res, nil
}

// ResendVerification implements [ServerAdapter].
func (h *httpServerAdapter) ResendVerification(ctx context.Context, email string) (msg string, err error) {
	defer h.observe("resend_verification", time.Now(), &err)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.EmailRequest{Email: email}).
		Post(pathResendVerification)
	if err != nil {
		return "", transportError("resend verification request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return decodeMessage(resp.Body()), nil
}

// VerificationStatus implements [ServerAdapter].
func (h *httpServerAdapter) VerificationStatus(ctx context.Context, email string) (verified bool, err error) {
	defer h.observe("verification_status", time.Now(), &err)

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("email", email).
		Get(pathVerificationStatus)
	if err != nil {
		return false, transportError("verification status request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	var vs models.VerificationStatus
	if err = json.Unmarshal(resp.Body(), &vs); err != nil {
		return false, decodeError("decode verification status", err)
	}

	return vs.IsVerified, nil
}

// authedRequest attaches the credential that is current at call time.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if cred, ok := h.creds.Get(); ok {
		req.SetHeader("Authorization", cred.BearerHeader())
	}
	return req
}

func (h *httpServerAdapter) observe(op string, start time.Time, errp *error) {
	elapsed := time.Since(start)
	outcome := metrics.OutcomeSuccess
	if *errp != nil {
		outcome = metrics.OutcomeError
	}
	h.metrics.RecordRequest(op, outcome, elapsed)

	ev := h.logger.Debug()
	if *errp != nil {
		ev = h.logger.Warn().Err(*errp).Int("status", StatusCode(*errp))
	}
	ev.Str("func", "httpServerAdapter."+op).Dur("elapsed", elapsed).Msg("backend call finished")
}

// decodeMessage extracts {"message": ...} from a success body. A body of a
// different shape yields an empty string; callers supply their own default.
func decodeMessage(body []byte) string {
	var mr models.MessageResponse
	if err := json.Unmarshal(body, &mr); err != nil {
		return ""
	}
	return mr.Message
}
