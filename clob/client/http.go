package client

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// httpClient wraps resty with the defaults every CLOB call shares. Retries,
// backoff and rate limiting are deliberately not configured at this layer.
type httpClient struct {
	rc *resty.Client
}

func newHTTPClient(host string) *httpClient {
	rc := resty.New().
		SetBaseURL(strings.TrimSuffix(host, "/")).
		SetTimeout(30 * time.Second).
		SetHeader("User-Agent", "goclob-client").
		SetHeader("Accept", "*/*").
		SetHeader("Connection", "keep-alive")
	return &httpClient{rc: rc}
}

// requestOptions carries per-request headers, query params and the exact
// serialized body. The body goes on the wire verbatim so it matches what an
// L2 signature was computed over.
type requestOptions struct {
	headers map[string]string
	params  map[string]string
	body    *string
}

// do issues the request and decodes a JSON response into out when non-nil.
func (h *httpClient) do(ctx context.Context, method, endpoint string, opt *requestOptions, out interface{}) error {
	body, err := h.doRaw(ctx, method, endpoint, opt)
	if err != nil {
		return err
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return errors.Wrapf(err, "decode %s %s response %q", method, endpoint, string(body))
		}
	}
	return nil
}

// doRaw issues the request and returns the raw response body.
func (h *httpClient) doRaw(ctx context.Context, method, endpoint string, opt *requestOptions) ([]byte, error) {
	r := h.rc.R().SetContext(ctx)
	if opt != nil {
		if opt.headers != nil {
			r.SetHeaders(opt.headers)
		}
		if opt.params != nil {
			r.SetQueryParams(opt.params)
		}
		if opt.body != nil {
			r.SetHeader("Content-Type", "application/json")
			r.SetBody(*opt.body)
		}
	}

	resp, err := r.Execute(method, endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, endpoint)
	}
	if resp.IsError() {
		return nil, errors.Errorf("%s %s: http %d: %s", method, endpoint, resp.StatusCode(), resp.String())
	}
	return resp.Body(), nil
}

// marshalBody serializes a request payload once, so the same bytes are both
// signed and sent.
func marshalBody(v interface{}) (*string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshal request body")
	}
	s := string(b)
	return &s, nil
}
