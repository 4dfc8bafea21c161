package services

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFileType is returned for any file-type label other than
// "pdf" or "docx".
var ErrUnsupportedFileType = errors.New("unsupported file type")

type DocumentExtractorService interface {
	ExtractResumeText(filePath string, fileType string) (string, error)
}

type documentExtractorService struct{}

func NewDocumentExtractorService() DocumentExtractorService {
	return &documentExtractorService{}
}

// ExtractResumeText extracts plain text from a resume file based on its
// declared type label.
func (e *documentExtractorService) ExtractResumeText(filePath string, fileType string) (string, error) {
	switch strings.ToLower(fileType) {
	case "pdf":
		return e.extractPDF(filePath)
	case "docx":
		return e.extractDocx(filePath)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, fileType)
	}
}

func (e *documentExtractorService) extractPDF(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages and keep going
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := strings.TrimSpace(textBuilder.String())
	if text == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

func (e *documentExtractorService) extractDocx(filePath string) (string, error) {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer doc.Close()

	paragraphs := paragraphsFromDocumentXML(doc.Editable().GetContent())
	if len(paragraphs) == 0 {
		return "", fmt.Errorf("no text content found in DOCX")
	}

	return strings.Join(paragraphs, "\n"), nil
}

// paragraphsFromDocumentXML walks a word/document.xml payload and collects
// the text runs of each paragraph, skipping paragraphs with no text.
func paragraphsFromDocumentXML(content string) []string {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var paragraphs []string
	var current strings.Builder
	inParagraph := false
	inText := false

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				inText = true
			}
		case xml.CharData:
			if inParagraph && inText {
				current.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if text := strings.TrimSpace(current.String()); text != "" {
					paragraphs = append(paragraphs, text)
				}
				inParagraph = false
			}
		}
	}

	return paragraphs
}

// CleanText normalizes extracted text: trims every line and drops blank ones.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
