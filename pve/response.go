package pve

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// decode converts a raw response according to the active presentation alias:
// TypePNGB64 wraps the body in a base64 data URI, TypeArray/TypeObject parse
// it as JSON into a structured value, everything else returns the body as a
// plain string. A nil response decodes to nil with no error.
func (c *Client) decode(resp *APIResponse) (any, error) {
	if resp == nil {
		return nil, nil
	}
	switch c.format.alias {
	case TypePNGB64:
		return "data:image/png;base64," + base64.StdEncoding.EncodeToString(resp.Body), nil
	case TypeArray, TypeObject:
		var v any
		if err := json.Unmarshal(resp.Body, &v); err != nil {
			return nil, fmt.Errorf("decode response body: %w", err)
		}
		return v, nil
	default:
		return string(resp.Body), nil
	}
}
