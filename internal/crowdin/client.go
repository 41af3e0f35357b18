// Package crowdin is a minimal client for a Crowdin-compatible translation
// management API. It covers the two project-level file operations the tool
// needs: add-file and update-file.
package crowdin

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"slices"
	"strings"
)

// Credentials authorize project-scoped API calls.
type Credentials struct {
	ProjectID  string
	ProjectKey string
}

// Result is the outcome of one API call, derived from the HTTP response.
// A non-2xx status is not a Go error; it is a Result with Success false and
// the raw response body for the caller to report.
type Result struct {
	StatusCode int
	Success    bool
	Body       string
}

// Client talks to one API host.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a client for the API reachable at baseURL
// (e.g. https://api.crowdin.com).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

// UpdateFiles replaces existing files in the project. files maps each
// remote file name to the local path whose content is uploaded.
func (c *Client) UpdateFiles(ctx context.Context, creds Credentials, files map[string]string) (*Result, error) {
	return c.upload(ctx, creds, "update-file", files)
}

// AddFiles uploads new files to the project.
func (c *Client) AddFiles(ctx context.Context, creds Credentials, files map[string]string) (*Result, error) {
	return c.upload(ctx, creds, "add-file", files)
}

// upload issues one multipart POST carrying every file in the set. Transport
// failures come back as errors; any HTTP response, success or not, comes back
// as a Result.
func (c *Client) upload(ctx context.Context, creds Credentials, endpoint string, files map[string]string) (*Result, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	// Stable part order keeps request bodies reproducible.
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if err := writeFilePart(w, name, files[name]); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing upload body: %w", err)
	}

	u := fmt.Sprintf("%s/api/project/%s/%s?key=%s",
		c.baseURL, url.PathEscape(creds.ProjectID), endpoint, url.QueryEscape(creds.ProjectKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &body)
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", endpoint, err)
	}

	return &Result{
		StatusCode: resp.StatusCode,
		Success:    resp.StatusCode >= 200 && resp.StatusCode < 300,
		Body:       string(respBody),
	}, nil
}

// writeFilePart streams one local file into the multipart body under the
// files[<name>] field the API expects. The file handle is released as soon
// as its bytes are copied.
func writeFilePart(w *multipart.Writer, name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	part, err := w.CreateFormFile(fmt.Sprintf("files[%s]", name), name)
	if err != nil {
		return fmt.Errorf("adding %s to upload: %w", name, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}
