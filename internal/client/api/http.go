package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/daycast-app/daycast/internal/client/models"
)

const apiPrefix = "/api/v1"

// clientIDHeader carries the stable anonymous client identifier on every
// request, authenticated or not.
const clientIDHeader = "X-Client-ID"

// HTTPClient implements Client over the versioned REST API.
type HTTPClient struct {
	baseURL string
	creds   Credentials
	httpc   *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the API rooted at baseURL (scheme and
// host, without the /api/v1 prefix). A zero timeout disables the client
// timeout entirely.
func NewHTTPClient(baseURL string, creds Credentials, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// errorResponse is the API's uniform error body.
type errorResponse struct {
	Error  string  `json:"error"`
	Code   string  `json:"code"`
	Detail *string `json:"detail"`
}

// do performs one JSON request/response round trip. A non-nil body is
// encoded as JSON; a non-nil out receives the decoded response body.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// send decorates the request with identity headers, executes it, and maps
// the response. The decoration mirrors what a token-attaching interceptor
// would do on an RPC stack.
func (c *HTTPClient) send(req *http.Request, out any) error {
	req.Header.Set(clientIDHeader, c.creds.ClientID())
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400:
		var apiErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	return c.auth(ctx, "login", username, password)
}

func (c *HTTPClient) Register(ctx context.Context, username, password string) (*AuthResponse, error) {
	return c.auth(ctx, "register", username, password)
}

func (c *HTTPClient) auth(ctx context.Context, action, username, password string) (*AuthResponse, error) {
	body := map[string]string{"username": username, "password": password}
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/"+action, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Day(ctx context.Context, date string) (*models.Day, error) {
	var day models.Day
	if err := c.do(ctx, http.MethodGet, "/days/"+date, nil, &day); err != nil {
		return nil, err
	}
	return &day, nil
}

func (c *HTTPClient) Days(ctx context.Context, search, cursor string) (*models.DayList, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	path := "/days"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var list models.DayList
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *HTTPClient) ExportDay(ctx context.Context, date string) (string, error) {
	var resp struct {
		Text string `json:"text"`
	}
	if err := c.do(ctx, http.MethodGet, "/export/"+date, nil, &resp); err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (c *HTTPClient) AddInput(ctx context.Context, typ models.InputType, content, date string) (*models.InputItem, error) {
	body := map[string]string{"type": string(typ), "content": content, "date": date}
	var item models.InputItem
	if err := c.do(ctx, http.MethodPost, "/inputs", body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *HTTPClient) UploadImage(ctx context.Context, filename string, data []byte, date string) (*models.InputItem, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("building upload: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("building upload: %w", err)
	}
	if err := mw.WriteField("date", date); err != nil {
		return nil, fmt.Errorf("building upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("building upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiPrefix+"/inputs/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var item models.InputItem
	if err := c.send(req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *HTTPClient) EditInput(ctx context.Context, id, content string) (*models.InputItem, error) {
	return c.updateInput(ctx, id, map[string]any{"content": content})
}

// SetImportance accepts nil to clear the rank; the server distinguishes an
// explicit null from an omitted field, so the key is always present.
func (c *HTTPClient) SetImportance(ctx context.Context, id string, importance *int) (*models.InputItem, error) {
	return c.updateInput(ctx, id, map[string]any{"importance": importance})
}

func (c *HTTPClient) SetIncludeInGeneration(ctx context.Context, id string, include bool) (*models.InputItem, error) {
	return c.updateInput(ctx, id, map[string]any{"include_in_generation": include})
}

func (c *HTTPClient) updateInput(ctx context.Context, id string, body map[string]any) (*models.InputItem, error) {
	var item models.InputItem
	if err := c.do(ctx, http.MethodPut, "/inputs/"+id, body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *HTTPClient) ClearInput(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/inputs/"+id, nil, nil)
}

func (c *HTTPClient) ClearDay(ctx context.Context, date string) error {
	return c.do(ctx, http.MethodDelete, "/inputs?date="+url.QueryEscape(date), nil, nil)
}

func (c *HTTPClient) Generate(ctx context.Context, date string) (*models.Generation, error) {
	var gen models.Generation
	if err := c.do(ctx, http.MethodPost, "/generate", map[string]string{"date": date}, &gen); err != nil {
		return nil, err
	}
	return &gen, nil
}

func (c *HTTPClient) Regenerate(ctx context.Context, generationID string, channels []string) (*models.Generation, error) {
	body := map[string]any{}
	if len(channels) > 0 {
		body["channels"] = channels
	}
	var gen models.Generation
	if err := c.do(ctx, http.MethodPost, "/generate/"+generationID+"/regenerate", body, &gen); err != nil {
		return nil, err
	}
	return &gen, nil
}

func (c *HTTPClient) PublishResult(ctx context.Context, resultID string) (*models.PublishedPost, error) {
	body := map[string]string{"generation_result_id": resultID}
	var post models.PublishedPost
	if err := c.do(ctx, http.MethodPost, "/publish", body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) PublishInput(ctx context.Context, inputItemID string) (*models.PublishedPost, error) {
	body := map[string]string{"input_item_id": inputItemID}
	var post models.PublishedPost
	if err := c.do(ctx, http.MethodPost, "/publish/input", body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *HTTPClient) Unpublish(ctx context.Context, postID string) error {
	return c.do(ctx, http.MethodDelete, "/publish/"+postID, nil, nil)
}

func (c *HTTPClient) ResultStatuses(ctx context.Context, resultIDs []string) (map[string]*string, error) {
	return c.statuses(ctx, "/publish/status?result_ids=", resultIDs)
}

func (c *HTTPClient) InputStatuses(ctx context.Context, inputIDs []string) (map[string]*string, error) {
	return c.statuses(ctx, "/publish/input-status?input_ids=", inputIDs)
}

func (c *HTTPClient) statuses(ctx context.Context, prefix string, ids []string) (map[string]*string, error) {
	var resp struct {
		Statuses map[string]*string `json:"statuses"`
	}
	path := prefix + url.QueryEscape(strings.Join(ids, ","))
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Statuses, nil
}

func (c *HTTPClient) ChannelSettings(ctx context.Context) ([]models.ChannelSetting, error) {
	var settings []models.ChannelSetting
	if err := c.do(ctx, http.MethodGet, "/settings/channels", nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (c *HTTPClient) SaveChannelSettings(ctx context.Context, settings []models.ChannelSetting) error {
	body := map[string]any{"channels": settings}
	return c.do(ctx, http.MethodPost, "/settings/channels", body, nil)
}

func (c *HTTPClient) GenerationSettings(ctx context.Context) (*models.GenerationSettings, error) {
	var settings models.GenerationSettings
	if err := c.do(ctx, http.MethodGet, "/settings/generation", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (c *HTTPClient) SaveGenerationSettings(ctx context.Context, settings models.GenerationSettings) error {
	return c.do(ctx, http.MethodPost, "/settings/generation", settings, nil)
}
