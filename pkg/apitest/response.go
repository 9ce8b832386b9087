package apitest

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

// AssertionError carries the descriptive message of a failed response
// assertion.
type AssertionError struct {
	Msg string
}

func (e *AssertionError) Error() string {
	return e.Msg
}

func failf(format string, args ...any) error {
	return &AssertionError{Msg: fmt.Sprintf(format, args...)}
}

// Response is an immutable snapshot of an HTTP response: status code, raw
// body and elapsed request time. It is constructed once by the client and
// only read by assertions.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Elapsed    time.Duration
}

// Text returns the response body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// JSON looks up a gjson path in the response body.
func (r *Response) JSON(path string) gjson.Result {
	return gjson.GetBytes(r.Body, path)
}

// AssertStatusCode fails when the status code differs from want.
func (r *Response) AssertStatusCode(want int) error {
	if r.StatusCode != want {
		return failf("expected status code %d, got %d", want, r.StatusCode)
	}
	return nil
}

// AssertContainsKey fails when the body has no value at the gjson path.
func (r *Response) AssertContainsKey(key string) error {
	if !r.JSON(key).Exists() {
		return failf("response does not contain key %q", key)
	}
	return nil
}

// AssertKeyValue fails when the value at the gjson path differs from want.
func (r *Response) AssertKeyValue(key string, want any) error {
	if err := r.AssertContainsKey(key); err != nil {
		return err
	}
	got := r.JSON(key)

	equal := false
	switch w := want.(type) {
	case string:
		equal = got.Type == gjson.String && got.Str == w
	case int:
		equal = got.Type == gjson.Number && got.Num == float64(w)
	case int64:
		equal = got.Type == gjson.Number && got.Num == float64(w)
	case float64:
		equal = got.Type == gjson.Number && got.Num == w
	case bool:
		equal = got.IsBool() && got.Bool() == w
	case nil:
		equal = got.Type == gjson.Null
	default:
		equal = reflect.DeepEqual(got.Value(), want)
	}

	if !equal {
		return failf("expected %s=%v, got %s=%s", key, want, key, got.Raw)
	}
	return nil
}

// AssertResponseTime fails exactly when the elapsed request time exceeds
// maxMillis.
func (r *Response) AssertResponseTime(maxMillis int64) error {
	elapsed := r.Elapsed.Milliseconds()
	if elapsed > maxMillis {
		return failf("response time %dms exceeds limit %dms", elapsed, maxMillis)
	}
	return nil
}

// AssertJSONSchema validates the body against a JSON Schema document.
func (r *Response) AssertJSONSchema(schema string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(r.Body),
	)
	if err != nil {
		return failf("JSON schema validation could not run: %v", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return failf("JSON schema validation failed: %s", strings.Join(msgs, "; "))
	}
	return nil
}
