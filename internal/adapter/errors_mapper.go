// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"mime"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/microcosm-cc/bluemonday"
)

// htmlStripper removes every tag from text/html error pages (proxies and
// gateways in front of the backend tend to send those).
var htmlStripper = bluemonday.StrictPolicy()

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return statusError(resp.StatusCode(), resp.Header().Get("Content-Type"), resp.Body())
}

// statusError turns a failed response into a [*StatusError].
//
// Message resolution, first match wins:
//  1. JSON "detail" as a string, or as a list of {"msg": ...} joined by ", "
//  2. JSON "message", then "error"
//  3. the raw body text (tags stripped for text/html)
//  4. [UnexpectedResponseMessage]
func statusError(code int, contentType string, body []byte) error {
	if msg := messageFromJSON(body); msg != "" {
		return &StatusError{Code: code, Message: msg}
	}

	text := strings.TrimSpace(string(body))
	if isHTML(contentType) {
		text = strings.Join(strings.Fields(html.UnescapeString(htmlStripper.Sanitize(text))), " ")
	}
	if text != "" {
		return &StatusError{Code: code, Message: text}
	}

	return &StatusError{Code: code, Message: UnexpectedResponseMessage, unexpected: true}
}

func messageFromJSON(body []byte) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	for _, key := range []string{"detail", "message", "error"} {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		if msg := messageFromField(raw); msg != "" {
			return msg
		}
	}
	return ""
}

func messageFromField(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return ""
	}

	msgs := make([]string, 0, len(items))
	for _, item := range items {
		var entry struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(item, &entry); err == nil && strings.TrimSpace(entry.Msg) != "" {
			msgs = append(msgs, strings.TrimSpace(entry.Msg))
			continue
		}
		if err := json.Unmarshal(item, &s); err == nil && strings.TrimSpace(s) != "" {
			msgs = append(msgs, strings.TrimSpace(s))
		}
	}
	return strings.Join(msgs, ", ")
}

func isHTML(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == "text/html"
}

// transportError classifies an error returned by resty before any response
// was received.
func transportError(op string, err error) error {
	if errors.Is(err, resty.ErrRateLimitExceeded) {
		return fmt.Errorf("%s: %w", op, ErrRateLimited)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrNetwork, err)
}

// decodeError reports a 2xx body that did not match the expected shape.
func decodeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrUnexpectedResponse, err)
}
