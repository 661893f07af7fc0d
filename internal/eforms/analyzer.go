package eforms

import (
	"fmt"
	"slices"
	"strings"

	"github.com/beevik/etree"

	"gppgateway/internal/notice/models"
)

// Analyzer implements the facade's collaborator interface over etree notices.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// LoadNotice parses xml into a Notice.
func (a *Analyzer) LoadNotice(xml string) (models.Notice, error) {
	return ParseNotice(xml)
}

// AnalyzeNotice reports per-lot GPP markers and which catalog criteria are
// still missing on which lots.
func (a *Analyzer) AnalyzeNotice(notice models.Notice) (*models.AnalysisResult, error) {
	n, err := asNotice(notice)
	if err != nil {
		return nil, err
	}

	result := &models.AnalysisResult{
		SDKVersion:         n.SDKVersion(),
		NoticeType:         n.root().Tag,
		NoticeSubType:      n.subType(),
		Lots:               []models.LotAnalysis{},
		ApplicableCriteria: []models.Criterion{},
	}

	missingByCriterion := make(map[string][]string)
	for _, lot := range n.lots() {
		id := lotID(lot)
		impacts := procurementTypeCodes(lot, listEnvironmentalImpact)
		strategic := procurementTypeCodes(lot, listStrategicProcurement)

		missing := []string{}
		for _, c := range catalog {
			if !slices.Contains(impacts, c.ID) {
				missing = append(missing, c.ID)
				missingByCriterion[c.ID] = append(missingByCriterion[c.ID], id)
			}
		}
		if len(impacts) > 0 || slices.Contains(strategic, strategicEnvironmental) {
			result.IsGPP = true
		}

		result.Lots = append(result.Lots, models.LotAnalysis{
			LotID:                 id,
			CPVCodes:              cpvCodes(lot),
			EnvironmentalImpacts:  impacts,
			StrategicProcurements: strategic,
			MissingCriteria:       missing,
		})
	}

	for _, c := range catalog {
		if lots := missingByCriterion[c.ID]; len(lots) > 0 {
			result.ApplicableCriteria = append(result.ApplicableCriteria, models.Criterion{
				ID:     c.ID,
				Name:   c.Name,
				LotIDs: lots,
			})
		}
	}
	return result, nil
}

// SuggestPatches proposes, lot by lot in document order, one create patch per
// requested criterion the lot does not declare yet, followed by the
// strategic-procurement marker when the lot lacks it. Empty criteria yield no
// patches.
func (a *Analyzer) SuggestPatches(notice models.Notice, criteria []models.Criterion) ([]models.Patch, error) {
	n, err := asNotice(notice)
	if err != nil {
		return nil, err
	}
	resolved := make([]models.Criterion, 0, len(criteria))
	for _, c := range criteria {
		def, ok := lookupCriterion(c.ID)
		if !ok {
			return nil, fmt.Errorf("%w: %q", models.ErrUnknownCriterion, c.ID)
		}
		def.LotIDs = c.LotIDs
		resolved = append(resolved, def)
	}

	patches := []models.Patch{}
	for _, lot := range n.lots() {
		id := lotID(lot)
		impacts := procurementTypeCodes(lot, listEnvironmentalImpact)

		var suggested []string
		for _, c := range resolved {
			if len(c.LotIDs) > 0 && !slices.Contains(c.LotIDs, id) {
				continue
			}
			if slices.Contains(impacts, c.ID) || slices.Contains(suggested, c.ID) {
				continue
			}
			suggested = append(suggested, c.ID)
			patches = append(patches, environmentalImpactPatch(id, c))
		}

		strategic := procurementTypeCodes(lot, listStrategicProcurement)
		if len(suggested) > 0 && !slices.Contains(strategic, strategicEnvironmental) {
			patches = append(patches, strategicProcurementPatch(id))
		}
	}
	return patches, nil
}

// ApplyPatches applies patches in order to a copy of the notice. The input is
// never modified; the first failing patch aborts the whole call.
func (a *Analyzer) ApplyPatches(notice models.Notice, patches []models.Patch) (models.Notice, error) {
	n, err := asNotice(notice)
	if err != nil {
		return nil, err
	}
	if len(patches) == 0 {
		return n, nil
	}

	doc := n.doc.Copy()
	root := doc.Root()
	for i, p := range patches {
		if err := applyPatch(root, p); err != nil {
			return nil, fmt.Errorf("%w: patch %d (%s): %v", models.ErrPatchApplication, i, p.Name, err)
		}
	}

	version := sdkVersion(root)
	if version == "" {
		return nil, fmt.Errorf("%w: patches removed cbc:CustomizationID", models.ErrPatchApplication)
	}
	return &Notice{doc: doc, sdkVersion: version}, nil
}

func applyPatch(root *etree.Element, p models.Patch) error {
	scope := root
	if p.LotID != "" {
		scope = findLot(root, p.LotID)
		if scope == nil {
			return fmt.Errorf("lot %q not found", p.LotID)
		}
	}

	switch p.Op {
	case models.PatchOpCreate:
		parent := scope
		if p.Path != "" && p.Path != "." {
			el, err := findPath(scope, p.Path)
			if err != nil {
				return err
			}
			parent = el
		}
		return insertFragment(parent, p.Fragment)
	case models.PatchOpUpdate:
		el, err := findPath(scope, p.Path)
		if err != nil {
			return err
		}
		el.SetText(p.Value)
		return nil
	default:
		return fmt.Errorf("unsupported op %q", p.Op)
	}
}

// findPath resolves raw below scope. Absolute paths and parent steps are
// rejected so a patch never reaches outside its lot or the notice root.
func findPath(scope *etree.Element, raw string) (*etree.Element, error) {
	if strings.HasPrefix(strings.TrimSpace(raw), "/") {
		return nil, fmt.Errorf("absolute path %q not allowed", raw)
	}
	for _, step := range strings.Split(raw, "/") {
		if strings.TrimSpace(step) == ".." {
			return nil, fmt.Errorf("path %q leaves the patch scope", raw)
		}
	}
	path, err := etree.CompilePath(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %v", raw, err)
	}
	el := scope.FindElementPath(path)
	if el == nil {
		return nil, fmt.Errorf("path %q not found", raw)
	}
	return el, nil
}

// followingSiblings lists, per inserted tag, the UBL elements that must come
// after it inside a cac:ProcurementProject.
var followingSiblings = map[string][]string{
	"cac:ProcurementAdditionalType": {
		"cac:MainCommodityClassification",
		"cac:AdditionalCommodityClassification",
		"cac:RealizedLocation",
		"cac:PlannedPeriod",
		"cac:ContractExtension",
	},
}

// insertFragment parses fragment and places it after the last sibling with
// the same tag. Without such a sibling it goes before the first element the
// schema orders after it, or at the end of parent.
func insertFragment(parent *etree.Element, fragment string) error {
	frag := etree.NewDocument()
	if err := frag.ReadFromString(fragment); err != nil {
		return fmt.Errorf("invalid fragment: %v", err)
	}
	el := frag.Root()
	if el == nil {
		return fmt.Errorf("empty fragment")
	}
	el = el.Copy()

	tag := el.FullTag()
	if siblings := parent.SelectElements(tag); len(siblings) > 0 {
		parent.InsertChildAt(siblings[len(siblings)-1].Index()+1, el)
		return nil
	}
	for _, next := range followingSiblings[tag] {
		if follower := parent.SelectElement(next); follower != nil {
			parent.InsertChildAt(follower.Index(), el)
			return nil
		}
	}
	parent.AddChild(el)
	return nil
}

func environmentalImpactPatch(lotID string, c models.Criterion) models.Patch {
	return models.Patch{
		Name:        "add-environmental-impact",
		Description: fmt.Sprintf("Declare %q (%s) on lot %s", c.ID, c.Name, lotID),
		Criterion:   c.ID,
		LotID:       lotID,
		Op:          models.PatchOpCreate,
		Path:        "cac:ProcurementProject",
		Fragment:    procurementTypeFragment(listEnvironmentalImpact, c.ID),
	}
}

func strategicProcurementPatch(lotID string) models.Patch {
	return models.Patch{
		Name:        "add-strategic-procurement",
		Description: fmt.Sprintf("Mark lot %s as strategic procurement with environmental impact", lotID),
		LotID:       lotID,
		Op:          models.PatchOpCreate,
		Path:        "cac:ProcurementProject",
		Fragment:    procurementTypeFragment(listStrategicProcurement, strategicEnvironmental),
	}
}

func procurementTypeFragment(listName, code string) string {
	return `<cac:ProcurementAdditionalType><cbc:ProcurementTypeCode listName="` + listName + `">` +
		code + `</cbc:ProcurementTypeCode></cac:ProcurementAdditionalType>`
}

func asNotice(notice models.Notice) (*Notice, error) {
	n, ok := notice.(*Notice)
	if !ok || n == nil {
		return nil, fmt.Errorf("unsupported notice implementation %T", notice)
	}
	return n, nil
}
