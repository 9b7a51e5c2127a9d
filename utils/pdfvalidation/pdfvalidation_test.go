package pdfvalidation

import (
	"bytes"
	"strings"
	"testing"
)

func TestValidatePDFBytesRejectsOversizedFile(t *testing.T) {
	limits := PDFLimits{MaxFileSizeMB: 1, MaxPages: 10, DocumentTypeName: "test document"}
	content := bytes.Repeat([]byte("a"), 2*1024*1024)

	result, err := ValidatePDFBytes(content, limits)
	if err != nil {
		t.Fatalf("ValidatePDFBytes failed: %v", err)
	}
	if result.Valid {
		t.Error("Expected oversized file to be rejected")
	}
	if !strings.Contains(result.Error, "exceeds maximum allowed size") {
		t.Errorf("Expected size error, got %q", result.Error)
	}
}

func TestValidatePDFBytesRejectsMissingHeader(t *testing.T) {
	result, err := ValidatePDFBytes([]byte("this is not a pdf"), NoticeLimits)
	if err != nil {
		t.Fatalf("ValidatePDFBytes failed: %v", err)
	}
	if result.Valid {
		t.Error("Expected non-PDF content to be rejected")
	}
	if !strings.Contains(result.Error, "missing PDF header") {
		t.Errorf("Expected header error, got %q", result.Error)
	}
}

func TestValidatePDFBytesRejectsCorruptedBody(t *testing.T) {
	// Valid header, garbage body
	content := append([]byte("%PDF-1.7\n"), bytes.Repeat([]byte{0xde, 0xad}, 64)...)

	result, err := ValidatePDFBytes(content, NoticeLimits)
	if err != nil {
		t.Fatalf("ValidatePDFBytes failed: %v", err)
	}
	if result.Valid {
		t.Error("Expected corrupted PDF to be rejected")
	}
}
