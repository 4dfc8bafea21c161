package services

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractResumeText_UnsupportedType(t *testing.T) {
	extractor := NewDocumentExtractorService()

	for _, fileType := range []string{"txt", "doc", "rtf", ""} {
		t.Run("label "+fileType, func(t *testing.T) {
			_, err := extractor.ExtractResumeText("ignored.bin", fileType)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupportedFileType)
			if fileType != "" {
				assert.Contains(t, err.Error(), fileType)
			}
		})
	}
}

func TestExtractResumeText_Docx(t *testing.T) {
	extractor := NewDocumentExtractorService()

	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p></w:p>
    <w:p><w:r><w:t>5 years Python, </w:t></w:r><w:r><w:t>AWS</w:t></w:r></w:p>
  </w:body>
</w:document>`

	path := writeDocxFixture(t, documentXML)

	text, err := extractor.ExtractResumeText(path, "docx")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n5 years Python, AWS", text)
}

func TestExtractResumeText_DocxNoText(t *testing.T) {
	extractor := NewDocumentExtractorService()

	documentXML := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p></w:p></w:body></w:document>`
	path := writeDocxFixture(t, documentXML)

	_, err := extractor.ExtractResumeText(path, "docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text content")
}

func TestExtractResumeText_CorruptPDF(t *testing.T) {
	extractor := NewDocumentExtractorService()

	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0644))

	_, err := extractor.ExtractResumeText(path, "pdf")
	assert.Error(t, err)
}

func TestParagraphsFromDocumentXML(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "runs merged per paragraph",
			content:  `<w:document><w:body><w:p><w:r><w:t>Hello </w:t></w:r><w:r><w:t>world</w:t></w:r></w:p></w:body></w:document>`,
			expected: []string{"Hello world"},
		},
		{
			name:     "empty paragraphs skipped",
			content:  `<w:document><w:body><w:p><w:r><w:t>First</w:t></w:r></w:p><w:p></w:p><w:p><w:r><w:t>Second</w:t></w:r></w:p></w:body></w:document>`,
			expected: []string{"First", "Second"},
		},
		{
			name:     "whitespace-only paragraph skipped",
			content:  `<w:document><w:body><w:p><w:r><w:t>   </w:t></w:r></w:p></w:body></w:document>`,
			expected: nil,
		},
		{
			name:     "text outside runs ignored",
			content:  `<w:document><w:body>stray<w:p><w:r><w:t>Kept</w:t></w:r></w:p></w:body></w:document>`,
			expected: []string{"Kept"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, paragraphsFromDocumentXML(tt.content))
		})
	}
}

func TestCleanText(t *testing.T) {
	input := "  Jane Doe  \n\n\n  Backend Engineer \n\n"
	assert.Equal(t, "Jane Doe\nBackend Engineer", CleanText(input))
}

// writeDocxFixture builds a minimal .docx (a zip with word/document.xml) in a
// temp dir and returns its path.
func writeDocxFixture(t *testing.T, documentXML string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "resume.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)

	entries := map[string]string{
		"word/document.xml": documentXML,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return path
}
