package api

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/todmy/req-analyzer/internal/pipeline"
	"github.com/todmy/req-analyzer/pkg/models"
)

type failingProcessor struct{}

func (failingProcessor) Process(string, string) (*models.Result, error) {
	return nil, errors.New("failed to process document: boom")
}

func newTestServer(t *testing.T, p pipeline.Processor) *Server {
	if p == nil {
		p = pipeline.NewService(pipeline.DefaultConfig(), zaptest.NewLogger(t))
	}
	return NewServer(ServerConfig{Processor: p, Logger: zaptest.NewLogger(t), MaxUploadBytes: 1 << 20})
}

func post(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/process", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(t, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestProcessDocument_DataURI(t *testing.T) {
	doc := "1. The system must allow users to log in.\n\n2. The system should display an error for invalid credentials."
	content := "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte(doc))
	body, err := json.Marshal(map[string]string{"fileContent": content, "fileName": "srs.txt", "fileType": "text/plain"})
	require.NoError(t, err)

	rec := post(t, newTestServer(t, nil), string(body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result models.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.Requirements, 2)
	assert.Equal(t, 2, result.Metadata.RequirementsCount)
	assert.Equal(t, "srs.txt", result.Metadata.FileName)
	assert.NotEmpty(t, result.TestCases)
}

func TestProcessDocument_PlainContent(t *testing.T) {
	rec := post(t, newTestServer(t, nil), `{"fileContent":"- The portal must send reminders.","fileName":"a.txt","fileType":"text/plain; charset=utf-8"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"requirementsCount":1`)
}

func TestProcessDocument_CoercesNonStringContent(t *testing.T) {
	rec := post(t, newTestServer(t, nil), `{"fileContent":12345,"fileName":"n.txt","fileType":"text/plain"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"requirementsCount":0`)
}

func TestProcessDocument_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		errMsg string
	}{
		{"missing content", `{"fileName":"a.txt","fileType":"text/plain"}`, http.StatusBadRequest, "required"},
		{"missing name", `{"fileContent":"x","fileType":"text/plain"}`, http.StatusBadRequest, "required"},
		{"bad json", `{`, http.StatusBadRequest, "invalid request body"},
		{"pdf", `{"fileContent":"x","fileName":"a.pdf","fileType":"application/pdf"}`, http.StatusUnsupportedMediaType, "unsupported file type"},
		{"bad base64", `{"fileContent":"data:text/plain;base64,@@@","fileName":"a.txt","fileType":"text/plain"}`, http.StatusBadRequest, "invalid file content"},
		{
			"binary payload",
			`{"fileContent":"data:text/plain;base64,` + base64.StdEncoding.EncodeToString([]byte("%PDF-1.7\n\x00\x01\x02binary")) + `","fileName":"a.txt","fileType":"text/plain"}`,
			http.StatusUnsupportedMediaType,
			"unsupported file type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, newTestServer(t, nil), tt.body)

			assert.Equal(t, tt.status, rec.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp["error"], tt.errMsg)
		})
	}
}

func TestProcessDocument_TooLarge(t *testing.T) {
	s := NewServer(ServerConfig{Processor: failingProcessor{}, MaxUploadBytes: 16})

	rec := post(t, s, `{"fileContent":"this body is longer than sixteen bytes","fileName":"a.txt","fileType":"text/plain"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "file too large")
}

func TestProcessDocument_PipelineFailure(t *testing.T) {
	rec := post(t, newTestServer(t, failingProcessor{}), `{"fileContent":"x","fileName":"a.txt","fileType":"text/plain"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Error processing document: failed to process document: boom"}`, rec.Body.String())
}
