package crowdin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestUpdateFiles_Success(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "hello")

	var gotPath, gotKey string
	var gotFields []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parsing multipart form: %v", err)
		}
		for field := range r.MultipartForm.File {
			gotFields = append(gotFields, field)
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	creds := Credentials{ProjectID: "demo", ProjectKey: "secret"}

	res, err := client.UpdateFiles(context.Background(), creds, map[string]string{"a.txt": path})
	if err != nil {
		t.Fatalf("UpdateFiles() error = %v", err)
	}

	if gotPath != "/api/project/demo/update-file" {
		t.Errorf("request path = %q, want %q", gotPath, "/api/project/demo/update-file")
	}
	if gotKey != "secret" {
		t.Errorf("key = %q, want %q", gotKey, "secret")
	}
	if len(gotFields) != 1 || gotFields[0] != "files[a.txt]" {
		t.Errorf("form fields = %v, want [files[a.txt]]", gotFields)
	}
	if !res.Success {
		t.Errorf("Success = false, want true (status %d)", res.StatusCode)
	}
	if res.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want %d", res.StatusCode, http.StatusOK)
	}
}

func TestAddFiles_Success(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "new.txt", "fresh")

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("uploaded content"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	res, err := client.AddFiles(context.Background(), Credentials{ProjectID: "demo", ProjectKey: "k"},
		map[string]string{"new.txt": path})
	if err != nil {
		t.Fatalf("AddFiles() error = %v", err)
	}

	if gotPath != "/api/project/demo/add-file" {
		t.Errorf("request path = %q, want %q", gotPath, "/api/project/demo/add-file")
	}
	if !res.Success {
		t.Errorf("Success = false, want true")
	}
	if res.Body != "uploaded content" {
		t.Errorf("Body = %q, want %q", res.Body, "uploaded content")
	}
}

func TestUpload_RemoteFailureIsResultNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("bad request"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	creds := Credentials{ProjectID: "demo", ProjectKey: "k"}

	for _, call := range []func() (*Result, error){
		func() (*Result, error) { return client.UpdateFiles(context.Background(), creds, nil) },
		func() (*Result, error) { return client.AddFiles(context.Background(), creds, nil) },
	} {
		res, err := call()
		if err != nil {
			t.Fatalf("error = %v, want nil for non-2xx response", err)
		}
		if res.Success {
			t.Error("Success = true, want false for HTTP 400")
		}
		if res.Body != "bad request" {
			t.Errorf("Body = %q, want %q", res.Body, "bad request")
		}
	}
}

func TestUpload_MultipleFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "aaa")
	b := writeFile(t, dir, "b.txt", "bbb")

	gotFields := map[string]string{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parsing multipart form: %v", err)
			return
		}
		for field, headers := range r.MultipartForm.File {
			f, err := headers[0].Open()
			if err != nil {
				t.Errorf("opening part %s: %v", field, err)
				continue
			}
			buf := make([]byte, 16)
			n, _ := f.Read(buf)
			f.Close()
			gotFields[field] = string(buf[:n])
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.UpdateFiles(context.Background(), Credentials{ProjectID: "p", ProjectKey: "k"},
		map[string]string{"a.txt": a, "b.txt": b})
	if err != nil {
		t.Fatal(err)
	}

	if gotFields["files[a.txt]"] != "aaa" {
		t.Errorf("files[a.txt] content = %q, want %q", gotFields["files[a.txt]"], "aaa")
	}
	if gotFields["files[b.txt]"] != "bbb" {
		t.Errorf("files[b.txt] content = %q, want %q", gotFields["files[b.txt]"], "bbb")
	}
}

func TestUpload_MissingLocalFile(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.UpdateFiles(context.Background(), Credentials{ProjectID: "p", ProjectKey: "k"},
		map[string]string{"nope.txt": filepath.Join(t.TempDir(), "nope.txt")})
	if err == nil {
		t.Fatal("error = nil, want open error for missing local file")
	}
	if requests != 0 {
		t.Errorf("requests = %d, want 0 when the body cannot be built", requests)
	}
}

func TestUpload_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL)
	res, err := client.UpdateFiles(context.Background(), Credentials{ProjectID: "p", ProjectKey: "k"}, nil)
	if err == nil {
		t.Fatal("error = nil, want transport error for closed server")
	}
	if res != nil {
		t.Errorf("result = %+v, want nil on transport error", res)
	}
}
