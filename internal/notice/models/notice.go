package models

// Notice is a loaded eForms notice. Implementations are owned by the analysis
// collaborator; the gateway only reads the SDK version and serializes it back.
type Notice interface {
	// SDKVersion returns the eForms SDK version the notice declares.
	SDKVersion() string
	// XML serializes the notice back to XML text.
	XML() (string, error)
}

// Criterion scopes which patches the analyzer considers. The gateway forwards
// criteria verbatim and does not enforce uniqueness.
type Criterion struct {
	ID     string   `json:"id"`
	Name   string   `json:"name,omitempty"`
	LotIDs []string `json:"lotIds,omitempty"`
}

// PatchOp names the kind of change a patch performs.
type PatchOp string

const (
	PatchOpCreate PatchOp = "create"
	PatchOpUpdate PatchOp = "update"
)

// Patch is an analyzer-defined change instruction. The facade never inspects
// it; only the collaborator that produced it knows how to apply it.
type Patch struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Criterion   string  `json:"criterion,omitempty"`
	LotID       string  `json:"lotId,omitempty"`
	Op          PatchOp `json:"op"`
	Path        string  `json:"path"`
	Value       string  `json:"value,omitempty"`
	Fragment    string  `json:"fragment,omitempty"`
}

// AnalysisResult reports what the analyzer found in a notice.
type AnalysisResult struct {
	SDKVersion         string        `json:"sdkVersion"`
	NoticeType         string        `json:"noticeType"`
	NoticeSubType      string        `json:"noticeSubType,omitempty"`
	IsGPP              bool          `json:"isGpp"`
	Lots               []LotAnalysis `json:"lots"`
	ApplicableCriteria []Criterion   `json:"applicableCriteria"`
}

// LotAnalysis is the per-lot part of an AnalysisResult.
type LotAnalysis struct {
	LotID                 string   `json:"lotId"`
	CPVCodes              []string `json:"cpvCodes"`
	EnvironmentalImpacts  []string `json:"environmentalImpacts"`
	StrategicProcurements []string `json:"strategicProcurements"`
	MissingCriteria       []string `json:"missingCriteria"`
}
