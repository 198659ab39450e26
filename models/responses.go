package models

// ValidationReport is the outcome of a successful load: the validated record,
// its stable fingerprint and the plugins every reference resolved to, in
// declaration order.
type ValidationReport struct {
	Config      BuildConfiguration `json:"config"`
	Fingerprint string             `json:"fingerprint"`
	Plugins     []Plugin           `json:"plugins"`
}

// ErrorKind classifies a failed request.
type ErrorKind string

const (
	ErrorKindParse            ErrorKind = "parse"
	ErrorKindValidation       ErrorKind = "validation"
	ErrorKindPluginResolution ErrorKind = "plugin_resolution"
	ErrorKindRequest          ErrorKind = "request"
	ErrorKindInternal         ErrorKind = "internal"
)

// ErrorResponse is the wire body returned when loading fails.
type ErrorResponse struct {
	Kind ErrorKind `json:"kind"`

	// Field names the offending configuration field, when known.
	Field string `json:"field,omitempty"`

	// Message is the human readable error text.
	Message string `json:"message"`
}

// PluginsResponse lists the plugins of the built-in catalogue.
type PluginsResponse struct {
	Plugins []Plugin `json:"plugins"`
	Length  int      `json:"length"`
}

// Clone returns a deep copy of r.
func (r ValidationReport) Clone() ValidationReport {
	out := r
	out.Config = r.Config.Clone()
	out.Plugins = cloneSlice(r.Plugins)
	return out
}
