package handler

import "gppgateway/internal/ted"

const (
	visualizeSuccessSummary = "Visualization completed successfully"
	validateSuccessSummary  = "Validation completed successfully"
	fatalErrorPrefix        = "Fatal error: "
)

// VisualizeResponse is the HTTP response for POST /visualize-notice. HTML is
// null when the remote call failed.
type VisualizeResponse struct {
	HTML                *string `json:"html"`
	Summary             string  `json:"summary"`
	VisualizationStatus int     `json:"visualizationStatus"`
}

// ValidateResponse is the HTTP response for POST /validate-notice.
type ValidateResponse struct {
	ValidationReportXML *string `json:"validationReportXml"`
	Summary             string  `json:"summary"`
	ValidationStatus    int     `json:"validationStatus"`
}

func toVisualizeResponse(result ted.Result) *VisualizeResponse {
	if !result.OK {
		return &VisualizeResponse{
			Summary:             fatalErrorPrefix + result.Message,
			VisualizationStatus: result.Status,
		}
	}
	html := result.Body
	return &VisualizeResponse{
		HTML:                &html,
		Summary:             visualizeSuccessSummary,
		VisualizationStatus: result.Status,
	}
}

func toValidateResponse(result ted.Result) *ValidateResponse {
	if !result.OK {
		return &ValidateResponse{
			Summary:          fatalErrorPrefix + result.Message,
			ValidationStatus: result.Status,
		}
	}
	report := result.Body
	return &ValidateResponse{
		ValidationReportXML: &report,
		Summary:             validateSuccessSummary,
		ValidationStatus:    result.Status,
	}
}
