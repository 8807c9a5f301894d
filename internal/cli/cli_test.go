package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/samvad-hq/defamation-console/pkg/defamation"
)

type seenRequest struct {
	method string
	path   string
	query  string
	body   string
}

func newBackend(t *testing.T, status int, body string) (*httptest.Server, func() []seenRequest) {
	t.Helper()
	var (
		mu   sync.Mutex
		seen []seenRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		mu.Lock()
		seen = append(seen, seenRequest{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, body: string(raw)})
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	t.Setenv("DEFAMATION_API_BASE", srv.URL+"/api")
	t.Setenv("VITE_API_BASE", "")
	t.Setenv("DEFAMATION_API_TIMEOUT_MS", "2000")
	t.Setenv("LOG_LEVEL", "error")

	return srv, func() []seenRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]seenRequest(nil), seen...)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestModelsCommandPrintsJSON(t *testing.T) {
	_, seen := newBackend(t, http.StatusOK, `[{"id":1,"name":"modelA"}]`)

	out, err := execute(t, "models")
	if err != nil {
		t.Fatalf("models: %v", err)
	}
	var models []map[string]any
	if err := json.Unmarshal([]byte(out), &models); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if len(models) != 1 || models[0]["name"] != "modelA" {
		t.Fatalf("output = %s", out)
	}
	if reqs := seen(); len(reqs) != 1 || reqs[0].path != "/api/v1/defamation/models" {
		t.Fatalf("requests = %#v", reqs)
	}
}

func TestCasesCommandYAMLAndQuery(t *testing.T) {
	_, seen := newBackend(t, http.StatusOK, `{"items":[{"id":4,"defendant":"B"}],"page":0,"size":3,"totalElements":1,"totalPages":1}`)

	out, err := execute(t, "cases", "--limit", "3", "--q", "blog", "-o", "yaml")
	if err != nil {
		t.Fatalf("cases: %v", err)
	}
	if !strings.Contains(out, "defendant: B") || !strings.Contains(out, "total_elements: 1") {
		t.Fatalf("yaml output = %s", out)
	}
	reqs := seen()
	if len(reqs) != 1 || reqs[0].path != "/api/cases" || reqs[0].query != "page=0&q=blog&size=3" {
		t.Fatalf("requests = %#v", reqs)
	}
}

func TestModelCasesCommandDefaultsLimit(t *testing.T) {
	_, seen := newBackend(t, http.StatusOK, `{"items":[],"page":0,"size":10,"totalElements":0,"totalPages":0}`)

	if _, err := execute(t, "model-cases"); err != nil {
		t.Fatalf("model-cases: %v", err)
	}
	reqs := seen()
	if len(reqs) != 1 || reqs[0].path != "/api/classification-requests" || reqs[0].query != "page=0&q=&size=10" {
		t.Fatalf("requests = %#v", reqs)
	}
}

func TestClassifyCommandSendsPredictRequest(t *testing.T) {
	_, seen := newBackend(t, http.StatusOK, `{"generated_text":"무죄"}`)

	out, err := execute(t, "classify", "--model-id", "2", "--text", "sample")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if !strings.Contains(out, `"generated_text": "무죄"`) {
		t.Fatalf("output = %s", out)
	}
	reqs := seen()
	if len(reqs) != 1 || reqs[0].method != http.MethodPost || reqs[0].path != "/api/v1/defamation/predict" {
		t.Fatalf("requests = %#v", reqs)
	}
	var body defamation.PredictRequest
	if err := json.Unmarshal([]byte(reqs[0].body), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.ModelID == nil || *body.ModelID != 2 || body.Inputs != "sample" {
		t.Fatalf("body = %#v", body)
	}
}

func TestClassifyCommandOmitsUnsetModelID(t *testing.T) {
	_, seen := newBackend(t, http.StatusOK, `{"generated_text":"ok"}`)

	if _, err := execute(t, "classify", "--text", "sample"); err != nil {
		t.Fatalf("classify: %v", err)
	}
	reqs := seen()
	if len(reqs) != 1 {
		t.Fatalf("requests = %#v", reqs)
	}
	var body map[string]any
	if err := json.Unmarshal([]byte(reqs[0].body), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if _, ok := body["modelId"]; ok || body["inputs"] != "sample" {
		t.Fatalf("body = %#v", body)
	}
}

func TestClassifyCommandSendsExplicitZeroModelID(t *testing.T) {
	_, seen := newBackend(t, http.StatusOK, `{"generated_text":"ok"}`)

	if _, err := execute(t, "classify", "--model-id", "0", "--text", "sample"); err != nil {
		t.Fatalf("classify: %v", err)
	}
	reqs := seen()
	if len(reqs) != 1 || !strings.Contains(reqs[0].body, `"modelId":0`) {
		t.Fatalf("requests = %#v", reqs)
	}
}

func TestClassifyCommandForwardsRawPayload(t *testing.T) {
	_, seen := newBackend(t, http.StatusOK, `{"generated_text":"ok"}`)

	if _, err := execute(t, "classify", "--payload", `{"text":"sample"}`); err != nil {
		t.Fatalf("classify: %v", err)
	}
	if reqs := seen(); len(reqs) != 1 || reqs[0].body != `{"text":"sample"}` {
		t.Fatalf("requests = %#v", reqs)
	}
}

func TestCommandReturnsUpstreamError(t *testing.T) {
	newBackend(t, http.StatusInternalServerError, `{"error":"boom"}`)

	_, err := execute(t, "models")
	if err == nil || !strings.Contains(err.Error(), "status 500") {
		t.Fatalf("expected status 500 error, got %v", err)
	}
}

func TestClassifyBodyValidation(t *testing.T) {
	if _, err := classifyBody(nil, "", ""); err == nil {
		t.Fatal("expected error without text or payload")
	}
	if _, err := classifyBody(nil, "", "{nope"); err == nil {
		t.Fatal("expected error for invalid payload")
	}
}

func TestUnsupportedOutputFormat(t *testing.T) {
	newBackend(t, http.StatusOK, `[]`)
	if _, err := execute(t, "models", "-o", "xml"); err == nil {
		t.Fatal("expected error for unsupported output format")
	}
}
