package jsonable

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/MSyics/Jsonable/parse"
)

const problemMediaType = "application/problem+json"

// HasProblem reports whether resp carries an RFC 9457 problem document.
func HasProblem(resp *http.Response) bool {
	if resp == nil {
		return false
	}
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	return err == nil && mt == problemMediaType
}

// ReadResponse reads and builds the body of resp. The body is not closed.
func ReadResponse(resp *http.Response, opts ...parse.ParseOption) (any, error) {
	if resp == nil || resp.Body == nil || resp.Body == http.NoBody {
		return nil, nil
	}
	return Read(resp.Body, opts...)
}

// Fetch GETs url with client (http.DefaultClient when nil) and builds the
// response body. Problem documents are returned like any other body, so
// callers that care should check the status code.
func Fetch(ctx context.Context, client *http.Client, url string, opts ...parse.ParseOption) (any, *http.Response, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, "+problemMediaType)
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("could not fetch %s: %w", url, err)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()
	v, err := ReadResponse(resp, opts...)
	if err != nil {
		return nil, resp, fmt.Errorf("error reading %s: %w", url, err)
	}
	return v, resp, nil
}
