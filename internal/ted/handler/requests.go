package handler

import (
	"strings"

	dErrors "gppgateway/pkg/domain-errors"
)

const (
	defaultLanguage       = "en"
	defaultValidationMode = "static"
)

var validationModes = map[string]bool{
	"static":  true,
	"dynamic": true,
}

// VisualizeRequest is the HTTP request body for POST /visualize-notice.
type VisualizeRequest struct {
	NoticeXML string `json:"noticeXml"`
}

// Validate implements httputil.Validatable.
func (r *VisualizeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if strings.TrimSpace(r.NoticeXML) == "" {
		return dErrors.New(dErrors.CodeValidation, "noticeXml is required")
	}
	return nil
}

// ValidateRequest is the HTTP request body for POST /validate-notice.
type ValidateRequest struct {
	NoticeXML      string `json:"noticeXml"`
	Language       string `json:"language"`
	ValidationMode string `json:"validationMode"`
}

// Validate fills in the language and mode defaults and checks the mode.
func (r *ValidateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if strings.TrimSpace(r.NoticeXML) == "" {
		return dErrors.New(dErrors.CodeValidation, "noticeXml is required")
	}

	r.Language = strings.TrimSpace(r.Language)
	if r.Language == "" {
		r.Language = defaultLanguage
	}

	r.ValidationMode = strings.ToLower(strings.TrimSpace(r.ValidationMode))
	if r.ValidationMode == "" {
		r.ValidationMode = defaultValidationMode
	}
	if !validationModes[r.ValidationMode] {
		return dErrors.New(dErrors.CodeValidation, "validationMode must be static or dynamic")
	}
	return nil
}
