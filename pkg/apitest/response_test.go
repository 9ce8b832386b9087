package apitest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonResponse(status int, body string, elapsed time.Duration) *Response {
	return &Response{StatusCode: status, Body: []byte(body), Elapsed: elapsed}
}

func TestAssertStatusCode(t *testing.T) {
	resp := jsonResponse(200, `{}`, 0)

	assert.NoError(t, resp.AssertStatusCode(200))

	for _, code := range []int{201, 204, 404, 500} {
		err := jsonResponse(code, `{}`, 0).AssertStatusCode(200)
		require.Error(t, err, "status %d must fail", code)
		var aerr *AssertionError
		assert.ErrorAs(t, err, &aerr)
		assert.Contains(t, err.Error(), "expected status code 200")
	}
}

func TestAssertContainsKey(t *testing.T) {
	resp := jsonResponse(200, `{"page": 2, "data": [], "support": {"url": "x"}}`, 0)

	assert.NoError(t, resp.AssertContainsKey("page"))
	assert.NoError(t, resp.AssertContainsKey("data"))
	assert.NoError(t, resp.AssertContainsKey("support.url"))

	err := resp.AssertContainsKey("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `does not contain key "missing"`)
}

func TestAssertKeyValue(t *testing.T) {
	resp := jsonResponse(200, `{"page": 2, "name": "John", "active": true, "score": 1.5, "gone": null}`, 0)

	tests := []struct {
		name    string
		key     string
		want    any
		wantErr bool
	}{
		{name: "int match", key: "page", want: 2},
		{name: "int mismatch", key: "page", want: 3, wantErr: true},
		{name: "string match", key: "name", want: "John"},
		{name: "string mismatch", key: "name", want: "Jane", wantErr: true},
		{name: "number is not its string form", key: "page", want: "2", wantErr: true},
		{name: "bool match", key: "active", want: true},
		{name: "float match", key: "score", want: 1.5},
		{name: "null match", key: "gone", want: nil},
		{name: "missing key", key: "nope", want: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := resp.AssertKeyValue(tt.key, tt.want)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAssertResponseTime(t *testing.T) {
	resp := jsonResponse(200, `{}`, 120*time.Millisecond)

	// Fails exactly when elapsed exceeds the limit.
	assert.NoError(t, resp.AssertResponseTime(5000))
	assert.NoError(t, resp.AssertResponseTime(120))
	err := resp.AssertResponseTime(119)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds limit 119ms")
}

func TestAssertJSONSchema(t *testing.T) {
	user := `{"id": 1, "email": "george.bluth@reqres.in", "first_name": "George",
		"last_name": "Bluth", "avatar": "https://reqres.in/img/faces/1-image.jpg"}`

	assert.NoError(t, jsonResponse(200, user, 0).AssertJSONSchema(UserSchema))

	missing := `{"id": 1, "email": "george.bluth@reqres.in"}`
	err := jsonResponse(200, missing, 0).AssertJSONSchema(UserSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON schema validation failed")

	wrongType := `{"id": "1", "email": "e", "first_name": "f", "last_name": "l", "avatar": "a"}`
	assert.Error(t, jsonResponse(200, wrongType, 0).AssertJSONSchema(UserSchema))
}

func TestValidateUser(t *testing.T) {
	valid := []byte(`{"id": 2, "email": "janet.weaver@reqres.in", "first_name": "Janet",
		"last_name": "Weaver", "avatar": "https://reqres.in/img/faces/2-image.jpg"}`)
	assert.True(t, ValidateUser(valid))
	assert.False(t, ValidateUser([]byte(`{"id": 2}`)))
	assert.False(t, ValidateUser([]byte(`not json`)))
}

func TestResponseText(t *testing.T) {
	assert.Equal(t, "", jsonResponse(204, "", 0).Text())
	assert.Equal(t, `{"a":1}`, jsonResponse(200, `{"a":1}`, 0).Text())
}
