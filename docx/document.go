package docx

import "encoding/xml"

// XML namespace of WordprocessingML elements.
const nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Parts of the OOXML package that must be present.
const (
	partContentTypes = "[Content_Types].xml"
	partDocument     = "word/document.xml"
)

// textXML represents text content (<w:t>).
type textXML struct {
	XMLName xml.Name `xml:"t"`
	Space   string   `xml:"space,attr"` // preserve
	Value   string   `xml:",chardata"`
}

// breakXML represents a break (line, page or column).
type breakXML struct {
	XMLName xml.Name `xml:"br"`
	Type    string   `xml:"type,attr"` // page, column, textWrapping
}

// tableGridXML represents the column grid of a table (<w:tblGrid>).
type tableGridXML struct {
	Cols []struct{} `xml:"gridCol"`
}

// cellPropsXML represents cell properties (<w:tcPr>).
// Only the members that affect grid layout are decoded.
type cellPropsXML struct {
	GridSpan gridSpanXML `xml:"gridSpan"`
	VMerge   vMergeXML   `xml:"vMerge"`
}

// gridSpanXML represents column span.
type gridSpanXML struct {
	Val string `xml:"val,attr"` // Number of columns spanned
}

// vMergeXML represents vertical merge.
type vMergeXML struct {
	XMLName xml.Name
	Val     string `xml:"val,attr"` // "restart" or empty (continue)
}

// isContinuation reports whether the cell continues a vertical merge
// started in a row above.
func (v vMergeXML) isContinuation() bool {
	return v.XMLName.Local == "vMerge" && (v.Val == "" || v.Val == "continue")
}

// isW reports whether the element belongs to the WordprocessingML namespace.
// Elements with no namespace are accepted so hand-written fixtures work.
func isW(name xml.Name, local string) bool {
	return name.Local == local && (name.Space == nsW || name.Space == "")
}
