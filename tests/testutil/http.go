package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPRequest represents a test HTTP request
type HTTPRequest struct {
	Method      string
	Path        string
	Form        map[string]string
	Files       map[string][]byte
	Headers     map[string]string
	AccessToken string
}

// HTTPResponse wraps the HTTP response for testing
type HTTPResponse struct {
	*httptest.ResponseRecorder
	t *testing.T
}

// DoRequest はmultipart/form-dataでリクエストを送ります。FormとFilesが空ならボディなしです。
func DoRequest(t *testing.T, e *echo.Echo, req HTTPRequest) *HTTPResponse {
	t.Helper()

	var body io.Reader
	contentType := ""
	if len(req.Form) > 0 || len(req.Files) > 0 {
		buf := &bytes.Buffer{}
		w := multipart.NewWriter(buf)
		for key, value := range req.Form {
			require.NoError(t, w.WriteField(key, value))
		}
		for field, data := range req.Files {
			part, err := w.CreateFormFile(field, field+".bin")
			require.NoError(t, err)
			_, err = part.Write(data)
			require.NoError(t, err)
		}
		require.NoError(t, w.Close())
		body = buf
		contentType = w.FormDataContentType()
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, body)
	if contentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, contentType)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if req.AccessToken != "" {
		httpReq.Header.Set(echo.HeaderAuthorization, "Bearer "+req.AccessToken)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httpReq)

	return &HTTPResponse{ResponseRecorder: rec, t: t}
}

// AssertStatus asserts the response status code
func (r *HTTPResponse) AssertStatus(expected int) *HTTPResponse {
	assert.Equal(r.t, expected, r.Code, "unexpected status code, body: %s", r.Body.String())
	return r
}

// AssertJSONPath asserts a specific path in the JSON response
func (r *HTTPResponse) AssertJSONPath(path string, expected interface{}) *HTTPResponse {
	value := getJSONPath(r.GetJSON(), path)
	assert.Equal(r.t, expected, value, "JSON path %s mismatch", path)
	return r
}

// AssertJSONPathExists asserts a path exists in the JSON response
func (r *HTTPResponse) AssertJSONPathExists(path string) *HTTPResponse {
	value := getJSONPath(r.GetJSON(), path)
	assert.NotNil(r.t, value, "JSON path %s does not exist", path)
	return r
}

// AssertJSONError asserts the response contains an error with expected code
func (r *HTTPResponse) AssertJSONError(code string, message string) *HTTPResponse {
	errorObj, ok := r.GetJSON()["error"].(map[string]interface{})
	require.True(r.t, ok, "response does not contain error object")

	assert.Equal(r.t, code, errorObj["code"], "error code mismatch")
	if message != "" {
		assert.Equal(r.t, message, errorObj["message"], "error message mismatch")
	}
	return r
}

// GetJSON parses the response body as JSON
func (r *HTTPResponse) GetJSON() map[string]interface{} {
	var result map[string]interface{}
	err := json.Unmarshal(r.Body.Bytes(), &result)
	require.NoError(r.t, err)
	return result
}

// getJSONPath gets a value from nested JSON using dot notation (e.g., "error.code")
func getJSONPath(data map[string]interface{}, path string) interface{} {
	current := interface{}(data)

	for _, key := range splitPath(path) {
		switch v := current.(type) {
		case map[string]interface{}:
			current = v[key]
		default:
			return nil
		}
	}

	return current
}

// splitPath splits a dot-notation path into keys
func splitPath(path string) []string {
	var keys []string
	var current string

	for _, c := range path {
		if c == '.' {
			if current != "" {
				keys = append(keys, current)
				current = ""
			}
		} else {
			current += string(c)
		}
	}

	if current != "" {
		keys = append(keys, current)
	}

	return keys
}
