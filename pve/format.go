package pve

// ResponseType selects how responses are requested from the server and
// presented to the caller. Wire formats are embedded verbatim in the URL
// (/api2/json, /api2/png, ...); the remaining values are client-side
// presentation aliases layered on top of a wire format.
type ResponseType string

const (
	// Wire formats understood by the Proxmox API.
	TypeJSON  ResponseType = "json"
	TypeHTML  ResponseType = "html"
	TypeExtJS ResponseType = "extjs"
	TypeText  ResponseType = "text"
	TypePNG   ResponseType = "png"

	// TypeArray requests json on the wire and decodes the body into a
	// structured value (any). It is the default.
	TypeArray ResponseType = "array"
	// TypeObject is an alias of TypeArray; both share the structured decode
	// path.
	TypeObject ResponseType = "object"
	// TypePNGB64 requests png on the wire and returns the body as a
	// base64 data URI.
	TypePNGB64 ResponseType = "pngb64"
)

// responseFormat pairs the URL-embedded wire format with the presentation
// alias applied while decoding. Exactly one of each is active at a time.
type responseFormat struct {
	wire  ResponseType
	alias ResponseType
}

func resolveResponseType(rt ResponseType) responseFormat {
	switch rt {
	case TypeJSON, TypeHTML, TypeExtJS, TypeText, TypePNG:
		return responseFormat{wire: rt, alias: rt}
	case TypeArray, TypeObject:
		return responseFormat{wire: TypeJSON, alias: rt}
	case TypePNGB64:
		return responseFormat{wire: TypePNG, alias: TypePNGB64}
	default:
		// Unknown requests fall back to the structured default.
		return responseFormat{wire: TypeJSON, alias: TypeArray}
	}
}
