package api

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const supportedFileType = "text/plain"

var (
	ErrMissingField    = errors.New("fileContent and fileName are required")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrInvalidPayload  = errors.New("invalid file content")
	ErrTooLarge        = errors.New("file too large")
)

var validate = validator.New()

// ProcessDocumentRequest is the body of a document processing request
type ProcessDocumentRequest struct {
	FileContent coercedString `json:"fileContent" validate:"required"`
	FileName    string        `json:"fileName" validate:"required"`
	FileType    string        `json:"fileType"`
}

// coercedString accepts any JSON scalar and keeps its text form
type coercedString string

func (c *coercedString) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null":
		*c = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = coercedString(s)
	default:
		*c = coercedString(raw)
	}
	return nil
}

// handleProcessDocument runs the pipeline over an uploaded plain-text document
func (s *Server) handleProcessDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	text, fileName, err := decodeDocument(r)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedType):
			respondError(w, http.StatusUnsupportedMediaType, err.Error())
		default:
			respondError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	result, err := s.processor.Process(text, fileName)
	if err != nil {
		s.logger.Error("document processing failed", zap.String("file", fileName), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Error processing document: "+err.Error())
		return
	}

	s.logger.Info("document processed",
		zap.String("file", fileName),
		zap.String("analysis_id", result.Metadata.AnalysisID),
		zap.Int("requirements", result.Metadata.RequirementsCount),
		zap.Int("test_cases", result.Metadata.TestCasesCount),
	)

	respondJSON(w, http.StatusOK, result)
}

// decodeDocument parses and validates the request and returns the document
// text. Data-URI content is base64-decoded.
func decodeDocument(r *http.Request) (string, string, error) {
	var req ProcessDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", "", ErrTooLarge
		}
		return "", "", fmt.Errorf("invalid request body: %w", err)
	}

	if err := validate.Struct(req); err != nil {
		return "", "", ErrMissingField
	}

	mediaType := strings.TrimSpace(strings.SplitN(req.FileType, ";", 2)[0])
	if !strings.EqualFold(mediaType, supportedFileType) {
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedType, req.FileType)
	}

	data, err := decodePayload(string(req.FileContent))
	if err != nil {
		return "", "", err
	}

	if len(data) > 0 && !isText(data) {
		return "", "", fmt.Errorf("%w: content is %s", ErrUnsupportedType, mimetype.Detect(data).String())
	}

	return string(data), req.FileName, nil
}

// decodePayload base64-decodes the part of a data URI after the first comma;
// anything else is returned as-is.
func decodePayload(content string) ([]byte, error) {
	if !strings.HasPrefix(content, "data:") {
		return []byte(content), nil
	}

	i := strings.IndexByte(content, ',')
	if i < 0 {
		return nil, fmt.Errorf("%w: malformed data URI", ErrInvalidPayload)
	}

	data, err := base64.StdEncoding.DecodeString(content[i+1:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return data, nil
}

// isText reports whether data sniffs as text/plain or one of its subtypes
func isText(data []byte) bool {
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if m.Is(supportedFileType) {
			return true
		}
	}
	return false
}
