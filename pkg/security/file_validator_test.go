package security_test

import (
	"testing"

	"go-jobboard-backend/pkg/security"

	"github.com/stretchr/testify/assert"
)

func TestValidateResume(t *testing.T) {
	pdfBytes := append([]byte("%PDF-1.7\n"), []byte("fake body")...)

	t.Run("pdf with matching content and MIME passes", func(t *testing.T) {
		res := security.ValidateResume("resume.pdf", pdfBytes, "application/pdf")
		assert.True(t, res.Valid)
		assert.Equal(t, ".pdf", res.Extension)
		assert.Empty(t, res.Error)
	})

	t.Run("extension casing is normalized", func(t *testing.T) {
		res := security.ValidateResume("Resume.PDF", pdfBytes, "application/pdf")
		assert.True(t, res.Valid)
		assert.Equal(t, ".pdf", res.Extension)
	})

	t.Run("docx passes with zip magic bytes", func(t *testing.T) {
		docx := []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00}
		res := security.ValidateResume("resume.docx", docx, "application/zip")
		assert.True(t, res.Valid)
	})

	t.Run("plain text relies on MIME only", func(t *testing.T) {
		res := security.ValidateResume("resume.txt", []byte("I am a plain resume"), "text/plain; charset=utf-8")
		assert.True(t, res.Valid)
	})

	t.Run("disallowed extension is rejected", func(t *testing.T) {
		res := security.ValidateResume("resume.exe", pdfBytes, "application/pdf")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Error, "not allowed")
	})

	t.Run("missing extension is rejected", func(t *testing.T) {
		res := security.ValidateResume("resume", pdfBytes, "application/pdf")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Error, "no extension")
	})

	t.Run("content not matching extension is rejected", func(t *testing.T) {
		res := security.ValidateResume("resume.pdf", []byte("MZ this is not a pdf"), "application/pdf")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Error, "does not match")
	})

	t.Run("doc detected as octet-stream passes on its magic bytes", func(t *testing.T) {
		// http.DetectContentType has no OLE signature, so legacy Word files
		// always come back as application/octet-stream
		doc := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, []byte("word body")...)
		res := security.ValidateResume("resume.doc", doc, "application/octet-stream")
		assert.True(t, res.Valid)
		assert.Empty(t, res.Error)
	})

	t.Run("docx detected as octet-stream passes on its magic bytes", func(t *testing.T) {
		docx := []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00}
		res := security.ValidateResume("resume.docx", docx, "application/octet-stream")
		assert.True(t, res.Valid)
	})

	t.Run("octet-stream MIME is rejected for non-container extensions", func(t *testing.T) {
		res := security.ValidateResume("resume.pdf", pdfBytes, "application/octet-stream")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Error, "could not be determined")
	})

	t.Run("MIME parameters are stripped before matching", func(t *testing.T) {
		res := security.ValidateResume("resume.txt", []byte("hello"), "Text/Plain; charset=utf-8")
		assert.True(t, res.Valid)
	})
}

func TestGetAllowedExtensions(t *testing.T) {
	exts := security.GetAllowedExtensions()
	assert.Len(t, exts, 4)
	assert.Contains(t, exts, ".pdf")
	assert.Contains(t, exts, ".docx")
}
