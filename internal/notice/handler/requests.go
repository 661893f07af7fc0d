package handler

import (
	"strconv"
	"strings"

	"gppgateway/internal/notice/models"
	dErrors "gppgateway/pkg/domain-errors"
)

// SuggestPatchesRequest is the HTTP request body for POST /suggest-patches.
// Criteria are forwarded to the analyzer as given.
type SuggestPatchesRequest struct {
	NoticeXML string             `json:"noticeXml"`
	Criteria  []models.Criterion `json:"criteria"`
}

// Validate implements httputil.Validatable.
func (r *SuggestPatchesRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.Criteria == nil {
		r.Criteria = []models.Criterion{}
	}
	return nil
}

// ApplyPatchesRequest is the HTTP request body for POST /apply-patches.
type ApplyPatchesRequest struct {
	NoticeXML string         `json:"noticeXml"`
	Patches   []models.Patch `json:"patches"`
}

// Validate implements httputil.Validatable.
func (r *ApplyPatchesRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.Patches == nil {
		r.Patches = []models.Patch{}
	}
	return nil
}

// parseManualTesting reads the manualTesting query flag. Absent means false.
func parseManualTesting(raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, nil
	}
	manual, err := strconv.ParseBool(raw)
	if err != nil {
		return false, dErrors.New(dErrors.CodeBadRequest, "manualTesting must be a boolean")
	}
	return manual, nil
}

// requireNotice enforces that caller XML is present unless the stored
// manual-testing notice will be used instead.
func requireNotice(xml string, manualTesting bool) error {
	if manualTesting || strings.TrimSpace(xml) != "" {
		return nil
	}
	return dErrors.New(dErrors.CodeValidation, "noticeXml is required")
}
