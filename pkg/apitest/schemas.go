package apitest

import "github.com/xeipuuv/gojsonschema"

// UserSchema describes one user object as served by the users API.
const UserSchema = `{
	"type": "object",
	"properties": {
		"id": {"type": "integer"},
		"email": {"type": "string", "format": "email"},
		"first_name": {"type": "string"},
		"last_name": {"type": "string"},
		"avatar": {"type": "string", "format": "uri"}
	},
	"required": ["id", "email", "first_name", "last_name", "avatar"]
}`

// UsersListSchema describes the paged users envelope.
const UsersListSchema = `{
	"type": "object",
	"properties": {
		"page": {"type": "integer"},
		"per_page": {"type": "integer"},
		"total": {"type": "integer"},
		"total_pages": {"type": "integer"},
		"data": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": "integer"},
					"email": {"type": "string"},
					"first_name": {"type": "string"},
					"last_name": {"type": "string"},
					"avatar": {"type": "string"}
				},
				"required": ["id", "email", "first_name", "last_name", "avatar"]
			}
		},
		"support": {
			"type": "object",
			"properties": {
				"url": {"type": "string"},
				"text": {"type": "string"}
			},
			"required": ["url", "text"]
		}
	},
	"required": ["page", "per_page", "total", "total_pages", "data", "support"]
}`

// ValidateUser reports whether raw JSON matches the user schema.
func ValidateUser(data []byte) bool {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(UserSchema),
		gojsonschema.NewBytesLoader(data),
	)
	return err == nil && result.Valid()
}
