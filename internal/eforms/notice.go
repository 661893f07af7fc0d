// Package eforms is the bundled analysis collaborator. It reads eForms notices
// with etree, reports their green public procurement markers and produces
// patches that declare missing environmental-impact criteria.
package eforms

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"gppgateway/internal/notice/models"
)

// Root elements of the notice families this collaborator understands.
var supportedRoots = map[string]bool{
	"ContractNotice":         true,
	"ContractAwardNotice":    true,
	"PriorInformationNotice": true,
}

// Notice is an eForms document held as an etree DOM.
type Notice struct {
	doc        *etree.Document
	sdkVersion string
}

// SDKVersion returns the cbc:CustomizationID value, e.g. "eforms-sdk-1.10".
func (n *Notice) SDKVersion() string {
	return n.sdkVersion
}

// XML serializes the document.
func (n *Notice) XML() (string, error) {
	return n.doc.WriteToString()
}

// ParseNotice parses xml into a Notice. Any parse or structure problem is
// reported as models.ErrMalformedNotice.
func ParseNotice(xml string) (*Notice, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedNotice, err)
	}
	if err := checkSingleRoot(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedNotice, err)
	}
	root := doc.Root()
	if !supportedRoots[root.Tag] {
		return nil, fmt.Errorf("%w: unsupported root element %q", models.ErrMalformedNotice, root.Tag)
	}
	version := sdkVersion(root)
	if version == "" {
		return nil, fmt.Errorf("%w: missing cbc:CustomizationID", models.ErrMalformedNotice)
	}
	return &Notice{doc: doc, sdkVersion: version}, nil
}

// checkSingleRoot enforces what etree does not: exactly one top-level element
// and no text outside it.
func checkSingleRoot(doc *etree.Document) error {
	switch n := len(doc.ChildElements()); {
	case n == 0:
		return fmt.Errorf("document has no root element")
	case n > 1:
		return fmt.Errorf("document has %d top-level elements", n)
	}
	for _, tok := range doc.Child {
		if cd, ok := tok.(*etree.CharData); ok && strings.TrimSpace(cd.Data) != "" {
			return fmt.Errorf("text outside the root element")
		}
	}
	return nil
}

func sdkVersion(root *etree.Element) string {
	el := root.FindElement("cbc:CustomizationID")
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

func (n *Notice) root() *etree.Element {
	return n.doc.Root()
}

func (n *Notice) lots() []*etree.Element {
	return n.root().FindElements("cac:ProcurementProjectLot")
}

func (n *Notice) subType() string {
	el := n.root().FindElement(".//efac:NoticeSubType/cbc:SubTypeCode")
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

func lotID(lot *etree.Element) string {
	el := lot.FindElement("cbc:ID")
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

func findLot(root *etree.Element, id string) *etree.Element {
	for _, lot := range root.FindElements("cac:ProcurementProjectLot") {
		if lotID(lot) == id {
			return lot
		}
	}
	return nil
}

// procurementTypeCodes lists the ProcurementTypeCode values of one code list
// declared on a lot's procurement project.
func procurementTypeCodes(lot *etree.Element, listName string) []string {
	path := "cac:ProcurementProject/cac:ProcurementAdditionalType/cbc:ProcurementTypeCode[@listName='" + listName + "']"
	return texts(lot.FindElements(path))
}

func cpvCodes(lot *etree.Element) []string {
	primary := lot.FindElements("cac:ProcurementProject/cac:MainCommodityClassification/cbc:ItemClassificationCode")
	additional := lot.FindElements("cac:ProcurementProject/cac:AdditionalCommodityClassification/cbc:ItemClassificationCode")
	return texts(append(primary, additional...))
}

func texts(elements []*etree.Element) []string {
	out := make([]string, 0, len(elements))
	for _, el := range elements {
		if v := strings.TrimSpace(el.Text()); v != "" {
			out = append(out, v)
		}
	}
	return out
}
