// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ArtifactRef references one redaction output produced by the backend.
// Name is unique within the visible set; ordering is whatever the server sent.
type ArtifactRef struct {
	Name string `json:"name"`
}

// ArtifactRefs converts the raw file list of GET /redacted/files into
// references, preserving server order.
func ArtifactRefs(names []string) []ArtifactRef {
	refs := make([]ArtifactRef, 0, len(names))
	for _, n := range names {
		refs = append(refs, ArtifactRef{Name: n})
	}
	return refs
}

// ScanResult is the backend response to a file upload (POST /predict/).
type ScanResult struct {
	Filename      string   `json:"filename"`
	PIIColumns    []string `json:"pii_columns"`
	RedactedFile  string   `json:"redacted_file"`
	RiskScore     float64  `json:"risk_score"`
	RedactedCount int      `json:"redacted_count"`
	TotalValues   int      `json:"total_values"`
}
