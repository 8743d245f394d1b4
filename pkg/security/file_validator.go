package security

import (
	"bytes"
	"path/filepath"
	"strings"
)

// FileValidationResult contains the result of resume file validation
type FileValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Detected file extension
	DetectedMIME string // Detected MIME type
	Error        string // Error message if validation failed
}

// Magic byte signatures for allowed resume document types.
// Maps lowercase extension to possible magic byte prefixes.
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                         // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                         // ZIP (PK..)
	".txt":  {},                                                 // no magic bytes - rely on MIME detection
}

// Allowed resume extensions (strict whitelist)
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

// Strict MIME types - DO NOT include application/octet-stream
var strictMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
	// ZIP-based documents (DOCX detection fallback)
	"application/zip": true,
}

// ValidateResume performs 3-layer validation on an uploaded resume:
// 1. Extension whitelist check
// 2. Magic byte verification (content matches extension)
// 3. MIME type whitelist (application/octet-stream REJECTED)
func ValidateResume(filename string, data []byte, detectedMIME string) FileValidationResult {
	result := FileValidationResult{
		DetectedMIME: detectedMIME,
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	// Layer 1: Extension whitelist
	if !allowedExtensions[ext] {
		result.Error = "file type not allowed: " + ext
		return result
	}

	// Layer 2: Magic bytes
	if !validateMagicBytes(ext, data) {
		result.Error = "file content does not match extension " + ext
		return result
	}

	// Layer 3: MIME whitelist
	if detectedMIME != "" {
		mime := strings.ToLower(strings.TrimSpace(strings.Split(detectedMIME, ";")[0]))
		if mime == "application/octet-stream" {
			// OLE and ZIP containers are detected as octet-stream; the magic
			// byte layer above already pinned the content to the extension
			if ext != ".doc" && ext != ".docx" {
				result.Error = "binary files not allowed; file type could not be determined"
				return result
			}
		} else if !strictMIMETypes[mime] {
			result.Error = "MIME type not allowed: " + mime
			return result
		}
	}

	result.Valid = true
	return result
}

// validateMagicBytes checks that the file content starts with one of the
// signatures registered for the extension. Extensions with no registered
// signatures (plain text) pass this layer.
func validateMagicBytes(ext string, data []byte) bool {
	signatures, ok := magicBytes[ext]
	if !ok {
		return false
	}
	if len(signatures) == 0 {
		return true
	}
	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

// GetAllowedExtensions returns the allowed resume extensions, for error messages.
func GetAllowedExtensions() []string {
	exts := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		exts = append(exts, ext)
	}
	return exts
}
