package buildconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/MKhiriev/twconf/models"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decode parses data in the given format into a configuration record. Unknown
// fields are rejected. Nil collections are replaced with empty ones, so a
// decoded record survives an [Encode]/Decode round trip unchanged.
//
// Errors are always *ParseError.
func Decode(data []byte, format Format) (models.BuildConfiguration, error) {
	var cfg models.BuildConfiguration

	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, &ParseError{Format: format, Err: ErrEmptyDocument}
	}

	var err error
	switch format {
	case FormatJSON:
		err = decodeJSON(data, &cfg)
	case FormatYAML:
		err = decodeYAML(data, &cfg)
	case FormatTOML:
		err = decodeTOML(data, &cfg)
	default:
		err = &ParseError{Format: format, Err: ErrUnsupportedFormat}
	}
	if err != nil {
		return models.BuildConfiguration{}, err
	}

	normalize(&cfg)
	return cfg, nil
}

// Encode serializes cfg in the given format.
func Encode(cfg models.BuildConfiguration, format Format) ([]byte, error) {
	normalize(&cfg)

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error encoding json config: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("error encoding yaml config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("error encoding yaml config: %w", err)
		}
		return buf.Bytes(), nil
	case FormatTOML:
		data, err := toml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("error encoding toml config: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// normalize replaces nil collections with empty ones. Plugin order and
// content path order are kept as declared.
func normalize(cfg *models.BuildConfiguration) {
	if cfg.ContentPaths == nil {
		cfg.ContentPaths = []string{}
	}
	if cfg.Plugins == nil {
		cfg.Plugins = []models.PluginRef{}
	}
	if cfg.ThemeExtensions == nil {
		cfg.ThemeExtensions = map[string]any{}
	}
	if cfg.PluginOptions == nil {
		cfg.PluginOptions = models.PluginOptions{}
	}
	for name, opts := range cfg.PluginOptions {
		if opts == nil {
			cfg.PluginOptions[name] = map[string]any{}
		}
	}
}

// DeclaredFields returns the top-level keys set in data, including keys
// whose value is null. data is expected to have passed [Decode].
func DeclaredFields(data []byte, format Format) (map[string]bool, error) {
	var doc map[string]any

	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		err = ErrUnsupportedFormat
	}
	if err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}

	declared := make(map[string]bool, len(doc))
	for key := range doc {
		declared[key] = true
	}
	return declared, nil
}

func decodeJSON(data []byte, cfg *models.BuildConfiguration) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(cfg); err != nil {
		return &ParseError{Format: FormatJSON, Field: jsonErrorField(err), Err: err}
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return &ParseError{Format: FormatJSON, Err: ErrTrailingData}
	}

	return nil
}

const jsonUnknownFieldPrefix = `json: unknown field "`

func jsonErrorField(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Field
	}

	if msg := err.Error(); strings.HasPrefix(msg, jsonUnknownFieldPrefix) {
		return strings.TrimSuffix(strings.TrimPrefix(msg, jsonUnknownFieldPrefix), `"`)
	}

	return ""
}

func decodeYAML(data []byte, cfg *models.BuildConfiguration) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil {
		return &ParseError{Format: FormatYAML, Field: yamlErrorField(err), Err: err}
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return &ParseError{Format: FormatYAML, Err: ErrTrailingData}
	}

	return nil
}

var yamlUnknownField = regexp.MustCompile(`field (\S+) not found in type`)

func yamlErrorField(err error) string {
	var typeErr *yaml.TypeError
	if !errors.As(err, &typeErr) {
		return ""
	}

	for _, msg := range typeErr.Errors {
		if m := yamlUnknownField.FindStringSubmatch(msg); m != nil {
			return m[1]
		}
	}

	return ""
}

func decodeTOML(data []byte, cfg *models.BuildConfiguration) error {
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()

	if err := dec.Decode(cfg); err != nil {
		return &ParseError{Format: FormatTOML, Field: tomlErrorField(err), Err: err}
	}

	return nil
}

func tomlErrorField(err error) string {
	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) && len(strictErr.Errors) > 0 {
		return strings.Join(strictErr.Errors[0].Key(), ".")
	}

	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		return strings.Join(decodeErr.Key(), ".")
	}

	return ""
}
