package demosite_test

import (
	"context"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dev/bravebird/qa-automation-go/pkg/apitest"
	"dev/bravebird/qa-automation-go/pkg/demosite"
)

func newAPIClient(t *testing.T) *apitest.Client {
	t.Helper()
	server := httptest.NewServer(demosite.Handler())
	t.Cleanup(server.Close)
	return apitest.NewClient(server.URL)
}

func TestGetUsersPage2(t *testing.T) {
	client := newAPIClient(t)

	resp, err := client.Get(context.Background(), "/api/users", url.Values{"page": {"2"}})
	require.NoError(t, err)

	require.NoError(t, resp.AssertStatusCode(200))
	require.NoError(t, resp.AssertResponseTime(5000))

	for _, key := range []string{"page", "per_page", "total", "total_pages", "data", "support"} {
		assert.NoError(t, resp.AssertContainsKey(key))
	}

	assert.NoError(t, resp.AssertKeyValue("page", 2))
	assert.NoError(t, resp.AssertKeyValue("per_page", 6))
	assert.NoError(t, resp.AssertKeyValue("total_pages", 2))

	data := resp.JSON("data").Array()
	require.Len(t, data, 6)
	for _, user := range data {
		assert.True(t, apitest.ValidateUser([]byte(user.Raw)), "invalid user: %s", user.Raw)
	}

	assert.NoError(t, resp.AssertJSONSchema(apitest.UsersListSchema))
}

func TestGetUsersDefaultsToPage1(t *testing.T) {
	client := newAPIClient(t)

	resp, err := client.Get(context.Background(), "/api/users", nil)
	require.NoError(t, err)

	require.NoError(t, resp.AssertStatusCode(200))
	assert.NoError(t, resp.AssertKeyValue("page", 1))
	assert.Len(t, resp.JSON("data").Array(), 6)
}

func TestGetUsersOutOfRangePage(t *testing.T) {
	client := newAPIClient(t)

	resp, err := client.Get(context.Background(), "/api/users", url.Values{"page": {"10"}})
	require.NoError(t, err)

	require.NoError(t, resp.AssertStatusCode(200))
	assert.NoError(t, resp.AssertKeyValue("page", 10))
	assert.Empty(t, resp.JSON("data").Array(), "out-of-range page returns empty data")
}

func TestGetUsersPerPage(t *testing.T) {
	client := newAPIClient(t)

	resp, err := client.Get(context.Background(), "/api/users",
		url.Values{"page": {"1"}, "per_page": {"3"}})
	require.NoError(t, err)

	require.NoError(t, resp.AssertStatusCode(200))
	assert.NoError(t, resp.AssertKeyValue("per_page", 3))
	assert.Len(t, resp.JSON("data").Array(), 3)
}

func TestGetUsersDataIntegrity(t *testing.T) {
	client := newAPIClient(t)

	resp, err := client.Get(context.Background(), "/api/users", url.Values{"page": {"2"}})
	require.NoError(t, err)
	require.NoError(t, resp.AssertStatusCode(200))

	total := int(resp.JSON("total").Int())
	perPage := int(resp.JSON("per_page").Int())
	totalPages := int(resp.JSON("total_pages").Int())
	assert.Equal(t, (total+perPage-1)/perPage, totalPages)

	seen := map[int64]bool{}
	for _, user := range resp.JSON("data").Array() {
		id := user.Get("id").Int()
		assert.False(t, seen[id], "duplicate user id %d", id)
		seen[id] = true
		assert.Contains(t, user.Get("email").String(), "@")
	}
}

func TestGetSingleUser(t *testing.T) {
	client := newAPIClient(t)

	resp, err := client.Get(context.Background(), "/api/users/1", nil)
	require.NoError(t, err)

	require.NoError(t, resp.AssertStatusCode(200))
	require.NoError(t, resp.AssertContainsKey("data"))
	assert.NoError(t, resp.AssertKeyValue("data.id", 1))
	assert.True(t, apitest.ValidateUser([]byte(resp.JSON("data").Raw)))
}

func TestGetNonexistentUser(t *testing.T) {
	client := newAPIClient(t)

	for _, path := range []string{"/api/users/999", "/api/users/0"} {
		resp, err := client.Get(context.Background(), path, nil)
		require.NoError(t, err)
		assert.NoError(t, resp.AssertStatusCode(404), "for %s", path)
	}
}

func TestCreateUser(t *testing.T) {
	client := newAPIClient(t)

	resp, err := client.Post(context.Background(), "/api/users", map[string]string{
		"name": "John Doe",
		"job":  "Software Engineer",
	})
	require.NoError(t, err)

	require.NoError(t, resp.AssertStatusCode(201))
	assert.NoError(t, resp.AssertKeyValue("name", "John Doe"))
	assert.NoError(t, resp.AssertKeyValue("job", "Software Engineer"))
	assert.NoError(t, resp.AssertContainsKey("id"))
	assert.NoError(t, resp.AssertContainsKey("createdAt"))
}

func TestUpdateUser(t *testing.T) {
	client := newAPIClient(t)

	resp, err := client.Put(context.Background(), "/api/users/1", map[string]string{
		"name": "Jane Smith",
		"job":  "Product Manager",
	})
	require.NoError(t, err)

	require.NoError(t, resp.AssertStatusCode(200))
	assert.NoError(t, resp.AssertKeyValue("name", "Jane Smith"))
	assert.NoError(t, resp.AssertContainsKey("updatedAt"))
}

func TestDeleteUser(t *testing.T) {
	client := newAPIClient(t)

	resp, err := client.Delete(context.Background(), "/api/users/1")
	require.NoError(t, err)

	require.NoError(t, resp.AssertStatusCode(204))
	assert.Empty(t, resp.Text(), "delete response should be empty")
}
