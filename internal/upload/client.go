package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// ImportPath is the server's chart ingest path.
const ImportPath = "/charts/import/ksh"

// FormField is the multipart part name that carries the chart file.
const FormField = "file"

const fallbackFileName = "chart.ksh"

// HTTPClient abstracts HTTP operations for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Uploader performs a single upload attempt for one file.
type Uploader interface {
	Upload(ctx context.Context, path string) (Outcome, error)
}

// UploaderFunc adapts a function to the Uploader interface.
type UploaderFunc func(ctx context.Context, path string) (Outcome, error)

func (f UploaderFunc) Upload(ctx context.Context, path string) (Outcome, error) {
	return f(ctx, path)
}

// Client submits chart files to the ingest endpoint, one request per call.
type Client struct {
	HTTP     HTTPClient // nil means http.DefaultClient
	Endpoint string
	Token    string
	Logger   zerolog.Logger // zero value discards
}

// NewClient returns a Client posting to the ingest path under server.
func NewClient(server, token string, httpClient HTTPClient) *Client {
	return &Client{
		HTTP:     httpClient,
		Endpoint: Endpoint(server),
		Token:    token,
	}
}

// Endpoint joins the server base URL and the ingest path. Trailing slashes
// on server are dropped.
func Endpoint(server string) string {
	return strings.TrimRight(server, "/") + ImportPath
}

// Upload reads path and performs exactly one submission of it. Any error
// returned is a *Failure.
func (c *Client) Upload(ctx context.Context, path string) (Outcome, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Outcome{}, &Failure{Kind: KindFileNotFound, Path: path, Err: err}
	}

	body, contentType, err := multipartBody(uploadName(path), content)
	if err != nil {
		return Outcome{}, &Failure{Kind: KindTransport, Path: path, Err: fmt.Errorf("building form: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, body)
	if err != nil {
		return Outcome{}, &Failure{Kind: KindTransport, Path: path, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Content-Type", contentType)

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	c.Logger.Debug().Str("path", path).Int("bytes", len(content)).Str("endpoint", c.Endpoint).Msg("posting chart")

	resp, err := client.Do(req)
	if err != nil {
		return Outcome{}, &Failure{Kind: KindTransport, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Outcome{}, &Failure{Kind: KindTransport, Path: path, Status: resp.StatusCode}
	}

	var env Envelope[importBody]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return Outcome{}, &Failure{Kind: KindInvalidResponse, Path: path, Description: "decoding envelope", Err: err}
	}

	c.Logger.Debug().
		Str("path", path).
		Int("http_status", resp.StatusCode).
		Uint64("status_code", env.StatusCode).
		Bool("has_body", env.Body != nil).
		Msg("response decoded")

	if !env.Succeeded() {
		return Outcome{}, &Failure{Kind: KindServer, Path: path, Code: env.StatusCode, Description: env.Description}
	}
	if env.Body == nil {
		return Outcome{}, &Failure{Kind: KindInvalidResponse, Path: path, Description: "missing body in response"}
	}

	out, err := classify(*env.Body)
	if err != nil {
		f := AsFailure(err)
		f.Path = path
		return Outcome{}, f
	}
	return out, nil
}

func uploadName(path string) string {
	name := filepath.Base(path)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return fallbackFileName
	}
	return name
}

// multipartBody encodes content as the single file part of a form.
// CreateFormFile labels the part application/octet-stream.
func multipartBody(fileName string, content []byte) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(FormField, fileName)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(content); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
