package docx

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// bodyDecoder walks the children of <w:body> in document order.
// xml.Unmarshal into slices loses the interleaving of paragraphs and
// tables (and of runs and hyperlinks), so the body is read token by token.
type bodyDecoder struct {
	d *xml.Decoder
}

func newBodyDecoder(r io.Reader) *bodyDecoder {
	return &bodyDecoder{d: xml.NewDecoder(r)}
}

// seekBody advances the decoder to just after the <w:body> start tag.
func (b *bodyDecoder) seekBody() error {
	for {
		tok, err := b.d.Token()
		if err != nil {
			if err == io.EOF {
				return fmt.Errorf("document has no body")
			}
			return err
		}
		if se, ok := tok.(xml.StartElement); ok && isW(se.Name, "body") {
			return nil
		}
	}
}

// next returns the next direct child element of the body.
// It returns io.EOF when </w:body> is reached.
func (b *bodyDecoder) next() (xml.StartElement, error) {
	for {
		tok, err := b.d.Token()
		if err != nil {
			if err == io.EOF {
				return xml.StartElement{}, io.ErrUnexpectedEOF
			}
			return xml.StartElement{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return t, nil
		case xml.EndElement:
			return xml.StartElement{}, io.EOF
		}
	}
}

// skip discards the element whose start tag was just consumed.
func (b *bodyDecoder) skip() error {
	return b.d.Skip()
}

// paragraph reads the text of a <w:p> whose start tag was just consumed.
// Runs are taken from the paragraph itself and from hyperlinks, in order.
func (b *bodyDecoder) paragraph() (string, error) {
	var sb strings.Builder
	for {
		tok, err := b.d.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case isW(t.Name, "r"):
				if err := b.run(&sb); err != nil {
					return "", err
				}
			case isW(t.Name, "hyperlink"):
				if err := b.hyperlink(&sb); err != nil {
					return "", err
				}
			default:
				if err := b.d.Skip(); err != nil {
					return "", err
				}
			}
		case xml.EndElement:
			return sb.String(), nil
		}
	}
}

func (b *bodyDecoder) hyperlink(sb *strings.Builder) error {
	for {
		tok, err := b.d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if isW(t.Name, "r") {
				if err := b.run(sb); err != nil {
					return err
				}
				continue
			}
			if err := b.d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// run appends the text of a <w:r> to sb.
func (b *bodyDecoder) run(sb *strings.Builder) error {
	for {
		tok, err := b.d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := b.runChild(sb, t); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (b *bodyDecoder) runChild(sb *strings.Builder, se xml.StartElement) error {
	if se.Name.Space != nsW && se.Name.Space != "" {
		return b.d.Skip()
	}

	switch se.Name.Local {
	case "t":
		var t textXML
		if err := b.d.DecodeElement(&t, &se); err != nil {
			return err
		}
		sb.WriteString(t.Value)
		return nil
	case "br":
		var br breakXML
		if err := b.d.DecodeElement(&br, &se); err != nil {
			return err
		}
		// Page and column breaks carry no text
		if br.Type == "" || br.Type == "textWrapping" {
			sb.WriteString("\n")
		}
		return nil
	case "tab", "ptab":
		sb.WriteString("\t")
	case "cr":
		sb.WriteString("\n")
	case "noBreakHyphen":
		sb.WriteString("-")
	}
	return b.d.Skip()
}

// table reads a <w:tbl> whose start tag was just consumed.
func (b *bodyDecoder) table() (*Table, error) {
	tp := &tableParser{}
	for {
		tok, err := b.d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case isW(t.Name, "tblGrid"):
				var grid tableGridXML
				if err := b.d.DecodeElement(&grid, &t); err != nil {
					return nil, err
				}
				tp.columns = len(grid.Cols)
			case isW(t.Name, "tr"):
				cells, err := b.row()
				if err != nil {
					return nil, err
				}
				tp.addRow(cells)
			default:
				if err := b.d.Skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			return tp.table(), nil
		}
	}
}

// row reads the cells of a <w:tr>.
func (b *bodyDecoder) row() ([]rawCell, error) {
	var cells []rawCell
	for {
		tok, err := b.d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if isW(t.Name, "tc") {
				c, err := b.cell()
				if err != nil {
					return nil, err
				}
				cells = append(cells, c)
				continue
			}
			if err := b.d.Skip(); err != nil {
				return nil, err
			}
		case xml.EndElement:
			return cells, nil
		}
	}
}

// cell reads a <w:tc>. Nested tables are skipped; only the cell's own
// paragraphs contribute text.
func (b *bodyDecoder) cell() (rawCell, error) {
	c := rawCell{span: 1}
	var paras []string
	for {
		tok, err := b.d.Token()
		if err != nil {
			return c, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case isW(t.Name, "tcPr"):
				var props cellPropsXML
				if err := b.d.DecodeElement(&props, &t); err != nil {
					return c, err
				}
				c.span = parseSpan(props.GridSpan.Val)
				c.continuation = props.VMerge.isContinuation()
			case isW(t.Name, "p"):
				text, err := b.paragraph()
				if err != nil {
					return c, err
				}
				paras = append(paras, text)
			default:
				if err := b.d.Skip(); err != nil {
					return c, err
				}
			}
		case xml.EndElement:
			c.text = strings.Join(paras, "\n")
			return c, nil
		}
	}
}
