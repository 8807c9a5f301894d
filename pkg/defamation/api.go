package defamation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/samvad-hq/defamation-console/internal/domain"
	"github.com/samvad-hq/defamation-console/pkg/httpclient"
)

const (
	modelsPath     = "/v1/defamation/models"
	predictPath    = "/v1/defamation/predict"
	casesPath      = "/cases"
	modelCasesPath = "/classification-requests"
)

// API maps application operations onto backend endpoints and returns only the
// decoded response payload. It holds no state besides the client.
type API struct {
	client Requester
}

// NewAPI wires the adapter to the shared request client.
func NewAPI(client Requester) *API {
	return &API{client: client}
}

// FetchModels lists the models the backend exposes.
func (a *API) FetchModels(ctx context.Context) ([]domain.Model, error) {
	var models []domain.Model
	if err := a.call(ctx, httpclient.Request{Method: http.MethodGet, Path: modelsPath}, &models); err != nil {
		return nil, fmt.Errorf("fetch models: %w", err)
	}
	return models, nil
}

// ClassifyText forwards payload verbatim to the predict endpoint. Every call is
// a separate classification on the backend; nothing is deduplicated.
func (a *API) ClassifyText(ctx context.Context, payload any) (*domain.PredictResult, error) {
	var result domain.PredictResult
	if err := a.call(ctx, httpclient.Request{Method: http.MethodPost, Path: predictPath, Body: payload}, &result); err != nil {
		return nil, fmt.Errorf("classify text: %w", err)
	}
	return &result, nil
}

// FetchRecentCases returns the first page of case records matching q.
func (a *API) FetchRecentCases(ctx context.Context, limit int, q string) (*domain.Page[domain.Case], error) {
	var page domain.Page[domain.Case]
	if err := a.list(ctx, casesPath, limit, q, &page); err != nil {
		return nil, fmt.Errorf("fetch recent cases: %w", err)
	}
	return &page, nil
}

// FetchRecentModelCases returns the first page of stored model classifications matching q.
func (a *API) FetchRecentModelCases(ctx context.Context, limit int, q string) (*domain.Page[domain.ClassificationRecord], error) {
	var page domain.Page[domain.ClassificationRecord]
	if err := a.list(ctx, modelCasesPath, limit, q, &page); err != nil {
		return nil, fmt.Errorf("fetch recent model cases: %w", err)
	}
	return &page, nil
}

func (a *API) list(ctx context.Context, path string, limit int, q string, out any) error {
	req := httpclient.Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  RecentPageQuery(limit, q).Params(),
	}
	return a.call(ctx, req, out)
}

// call sends req and decodes the payload into out. Client errors are returned
// unchanged; they have already been logged by the client.
func (a *API) call(ctx context.Context, req httpclient.Request, out any) error {
	if a == nil || a.client == nil {
		return fmt.Errorf("defamation api is not initialized")
	}

	resp, err := a.client.Do(ctx, req)
	if err != nil {
		return err
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", req.Method, req.Path, err)
	}
	return nil
}
