// api/http_client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/encoding/korean"
)

// StatusError reports a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return "unexpected status code: " + e.Status
}

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// RequestRaw performs a request and returns the body as UTF-8. Bodies
// declared as EUC-KR are converted.
func (c *HTTPClient) RequestRaw(ctx context.Context, method, endpoint string, headers map[string]string, body interface{}) ([]byte, error) {
	var requestBody []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		requestBody = jsonBody
	}

	url := c.BaseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s: %w", method, url, err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", url, err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &StatusError{URL: url, StatusCode: res.StatusCode, Status: res.Status}
	}

	if isEUCKR(res.Header.Get("Content-Type")) {
		decoded, err := korean.EUCKR.NewDecoder().Bytes(resBody)
		if err != nil {
			return nil, fmt.Errorf("decode euc-kr body of %s: %w", url, err)
		}
		resBody = decoded
	}
	return resBody, nil
}

// Request makes an HTTP request to the API and decodes the JSON object in
// the response. Anything after the last closing brace is ignored, since
// the schedule service appends padding to its documents.
func (c *HTTPClient) Request(ctx context.Context, method, endpoint string, headers map[string]string, body interface{}, response interface{}) error {
	resBody, err := c.RequestRaw(ctx, method, endpoint, headers, body)
	if err != nil {
		return err
	}

	if response != nil {
		return json.Unmarshal(TrimJSON(resBody), response)
	}

	return nil
}

// TrimJSON cuts b just after its last '}'.
func TrimJSON(b []byte) []byte {
	i := bytes.LastIndexByte(b, '}')
	if i < 0 {
		return b
	}
	return b[:i+1]
}

// EncodeEUCKR percent-escapes every EUC-KR byte of s.
func EncodeEUCKR(s string) (string, error) {
	encoded, err := korean.EUCKR.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return "", fmt.Errorf("encode %q as euc-kr: %w", s, err)
	}
	var sb strings.Builder
	for _, b := range encoded {
		fmt.Fprintf(&sb, "%%%02x", b)
	}
	return sb.String(), nil
}

func isEUCKR(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "euc-kr") || strings.Contains(ct, "ks_c_5601")
}
