package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTypeFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
		wantErr  bool
	}{
		{name: "pdf", filename: "resume.pdf", want: "pdf"},
		{name: "docx", filename: "resume.docx", want: "docx"},
		{name: "uppercase extension", filename: "RESUME.PDF", want: "pdf"},
		{name: "mixed case docx", filename: "cv.DocX", want: "docx"},
		{name: "plain text", filename: "resume.txt", wantErr: true},
		{name: "legacy doc", filename: "resume.doc", wantErr: true},
		{name: "no extension", filename: "resume", wantErr: true},
		{name: "empty", filename: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FileTypeFromFilename(tt.filename)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnsupportedFileType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func multipartFileHeader(t *testing.T, fieldName, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	files := req.MultipartForm.File[fieldName]
	require.Len(t, files, 1)
	return files[0]
}

func TestStorageServiceSaveFile(t *testing.T) {
	uploadDir := t.TempDir()
	storage := NewStorageService(uploadDir)
	require.NoError(t, storage.EnsureUploadDir())

	header := multipartFileHeader(t, "resume", "resume.pdf", "%PDF-1.4 fake content")

	filename, filePath, err := storage.SaveFile(header, "resume")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "resume_"))
	assert.True(t, strings.HasSuffix(filename, ".pdf"))
	assert.Equal(t, filepath.Join(uploadDir, filename), filePath)

	saved, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake content", string(saved))
}

func TestStorageServiceSaveFileRejectsExtension(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	header := multipartFileHeader(t, "resume", "resume.txt", "plain text")

	_, _, err := storage.SaveFile(header, "resume")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid file extension")
}

func TestStorageServiceDeleteFile(t *testing.T) {
	uploadDir := t.TempDir()
	storage := NewStorageService(uploadDir)

	path := filepath.Join(uploadDir, "resume_test.pdf")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))

	require.NoError(t, storage.DeleteFile("resume_test.pdf"))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
