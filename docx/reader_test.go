package docx

import (
	"archive/zip"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// createTestDOCX creates a minimal DOCX file for testing.
func createTestDOCX(t testing.TB, content string) string {
	t.Helper()

	tmpDir := t.TempDir()
	docxPath := filepath.Join(tmpDir, "test.docx")

	f, err := os.Create(docxPath)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	zw := zip.NewWriter(f)

	// [Content_Types].xml
	contentTypes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`
	w, _ := zw.Create("[Content_Types].xml")
	w.Write([]byte(contentTypes))

	// _rels/.rels
	rels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`
	w, _ = zw.Create("_rels/.rels")
	w.Write([]byte(rels))

	// word/document.xml
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"
  xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"
  xmlns:mc="http://schemas.openxmlformats.org/markup-compatibility/2006">
  <w:body>` + content + `</w:body>
</w:document>`
	w, _ = zw.Create("word/document.xml")
	w.Write([]byte(document))

	zw.Close()
	f.Close()

	return docxPath
}

func openTestDOCX(t *testing.T, content string) *Reader {
	t.Helper()

	r, err := Open(createTestDOCX(t, content))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestOpen(t *testing.T) {
	content := `<w:p><w:r><w:t>Hello World</w:t></w:r></w:p>`
	docxPath := createTestDOCX(t, content)

	r, err := Open(docxPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	if r.document == nil {
		t.Error("document part should not be nil")
	}
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open("/nonexistent/file.docx")
	if err == nil {
		t.Error("Open() should return error for nonexistent file")
	}
}

func TestOpen_InvalidZip(t *testing.T) {
	tmpDir := t.TempDir()
	invalidPath := filepath.Join(tmpDir, "invalid.docx")
	os.WriteFile(invalidPath, []byte("not a zip file"), 0644)

	_, err := Open(invalidPath)
	if err == nil {
		t.Error("Open() should return error for invalid ZIP")
	}
}

func TestOpen_MissingDocumentXML(t *testing.T) {
	tmpDir := t.TempDir()
	docxPath := filepath.Join(tmpDir, "missing.docx")

	f, _ := os.Create(docxPath)
	zw := zip.NewWriter(f)
	w, _ := zw.Create("[Content_Types].xml")
	w.Write([]byte(`<?xml version="1.0"?><Types/>`))
	zw.Close()
	f.Close()

	_, err := Open(docxPath)
	if err == nil {
		t.Fatal("Open() should return error for missing document.xml")
	}
	if !strings.Contains(err.Error(), "word/document.xml") {
		t.Errorf("error should name the missing part, got %v", err)
	}
}

func TestReader_Paragraphs(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "single paragraph",
			content:  `<w:p><w:r><w:t>Hello World</w:t></w:r></w:p>`,
			expected: []string{"Hello World"},
		},
		{
			name: "multiple runs",
			content: `<w:p>
				<w:r><w:t xml:space="preserve">Hello </w:t></w:r>
				<w:r><w:rPr><w:b/></w:rPr><w:t>World</w:t></w:r>
			</w:p>`,
			expected: []string{"Hello World"},
		},
		{
			name: "empty paragraphs are kept",
			content: `<w:p><w:r><w:t>First</w:t></w:r></w:p>
				<w:p/>
				<w:p><w:pPr><w:pStyle w:val="Normal"/></w:pPr></w:p>
				<w:p><w:r><w:t>Last</w:t></w:r></w:p>`,
			expected: []string{"First", "", "", "Last"},
		},
		{
			name: "hyperlink runs in order",
			content: `<w:p>
				<w:r><w:t xml:space="preserve">See </w:t></w:r>
				<w:hyperlink r:id="rId5"><w:r><w:t>the docs</w:t></w:r></w:hyperlink>
				<w:r><w:t xml:space="preserve"> for more.</w:t></w:r>
			</w:p>`,
			expected: []string{"See the docs for more."},
		},
		{
			name:     "tabs and line breaks",
			content:  `<w:p><w:r><w:t>A</w:t><w:tab/><w:t>B</w:t><w:br/><w:t>C</w:t><w:cr/><w:t>D</w:t></w:r></w:p>`,
			expected: []string{"A\tB\nC\nD"},
		},
		{
			name:     "page break has no text",
			content:  `<w:p><w:r><w:t>Before</w:t><w:br w:type="page"/><w:t>After</w:t></w:r></w:p>`,
			expected: []string{"BeforeAfter"},
		},
		{
			name:     "non-breaking hyphen",
			content:  `<w:p><w:r><w:t>co</w:t><w:noBreakHyphen/><w:t>op</w:t></w:r></w:p>`,
			expected: []string{"co-op"},
		},
		{
			name:     "alternate content ignored",
			content:  `<w:p><w:r><w:t>x</w:t><mc:AlternateContent><mc:Fallback><w:t>dup</w:t></mc:Fallback></mc:AlternateContent></w:r></w:p>`,
			expected: []string{"x"},
		},
		{
			name: "table paragraphs excluded",
			content: `<w:p><w:r><w:t>Intro</w:t></w:r></w:p>
				<w:tbl><w:tr><w:tc><w:p><w:r><w:t>Cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
				<w:p><w:r><w:t>Outro</w:t></w:r></w:p>
				<w:sectPr/>`,
			expected: []string{"Intro", "Outro"},
		},
		{
			name:     "special characters",
			content:  `<w:p><w:r><w:t>Price: $100 &amp; tax &lt;10%&gt; café 日本語</w:t></w:r></w:p>`,
			expected: []string{"Price: $100 & tax <10%> café 日本語"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := openTestDOCX(t, tt.content)

			got := slices.Collect(r.Paragraphs())
			if err := r.Err(); err != nil {
				t.Fatalf("Err() = %v", err)
			}
			if !slices.Equal(got, tt.expected) {
				t.Errorf("Paragraphs() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestReader_ParagraphsRepeatable(t *testing.T) {
	r := openTestDOCX(t, `<w:p><w:r><w:t>One</w:t></w:r></w:p><w:p><w:r><w:t>Two</w:t></w:r></w:p>`)

	first := slices.Collect(r.Paragraphs())
	second := slices.Collect(r.Paragraphs())
	if !slices.Equal(first, second) {
		t.Errorf("second pass = %q, want %q", second, first)
	}
}

func TestReader_ParagraphsEarlyStop(t *testing.T) {
	r := openTestDOCX(t, `<w:p><w:r><w:t>One</w:t></w:r></w:p><w:p><w:r><w:t>Two</w:t></w:r></w:p>`)

	var got []string
	for p := range r.Paragraphs() {
		got = append(got, p)
		break
	}
	if len(got) != 1 || got[0] != "One" {
		t.Errorf("got %q, want [One]", got)
	}
	if err := r.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}

func TestReader_MalformedDocument(t *testing.T) {
	r := openTestDOCX(t, `<w:p><w:r><w:t>Broken</w:r></w:p>`)

	for range r.Paragraphs() {
	}
	if r.Err() == nil {
		t.Error("Err() should report malformed XML")
	}

	// Once failed, further iteration yields nothing.
	if n := len(slices.Collect(r.Tables())); n != 0 {
		t.Errorf("Tables() after failure yielded %d tables", n)
	}
}

func TestReader_Close(t *testing.T) {
	docxPath := createTestDOCX(t, `<w:p><w:r><w:t>Test</w:t></w:r></w:p>`)

	r, err := Open(docxPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if err := r.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	// Second close should be safe
	if err := r.Close(); err != nil {
		t.Errorf("Second Close() error = %v", err)
	}

	for range r.Paragraphs() {
		t.Error("closed reader should yield nothing")
	}
	if r.Err() == nil {
		t.Error("Err() should report the closed reader")
	}
}

func BenchmarkParagraphs(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 500; i++ {
		sb.WriteString(`<w:p><w:r><w:t>Lorem ipsum dolor sit amet</w:t></w:r></w:p>`)
	}

	docxPath := createTestDOCX(b, sb.String())
	r, err := Open(docxPath)
	if err != nil {
		b.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range r.Paragraphs() {
		}
	}
}
