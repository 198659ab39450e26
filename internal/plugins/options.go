package plugins

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/MKhiriev/twconf/models"
)

var (
	errEmptyThemeName   = errors.New("theme name must not be empty")
	errDuplicateTheme   = errors.New("theme is listed more than once")
	errUnknownDarkTheme = errors.New("dark theme is not one of the enabled themes")
	errBadClassName     = errors.New("must be a valid CSS class name")
	errBadFormsStrategy = errors.New(`must be "base" or "class"`)
)

var classNamePattern = regexp.MustCompile(`^-?[A-Za-z_][A-Za-z0-9_-]*$`)

// ValidateDaisyUIOptions checks the daisyui option object: option types,
// the themes forms daisyui accepts, non-empty unique theme names, and a
// dark theme taken from the theme list.
func ValidateDaisyUIOptions(opts map[string]any) error {
	var themes models.DaisyUIThemes
	if raw, ok := opts["themes"]; ok {
		parsed, err := models.ParseDaisyUIThemes(raw)
		var entryErr *models.ThemeEntryError
		switch {
		case errors.As(err, &entryErr):
			return &OptionError{Option: fmt.Sprintf("themes[%d]", entryErr.Index), Err: entryErr.Err}
		case err != nil:
			return &OptionError{Option: "themes", Err: err}
		}
		themes = parsed
	}

	var daisy models.DaisyUIOptions
	if err := decodeOptions(opts, &daisy); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(themes.Names))
	for i, theme := range themes.Names {
		option := fmt.Sprintf("themes[%d]", i)
		if theme == "" {
			return &OptionError{Option: option, Err: errEmptyThemeName}
		}
		if _, dup := seen[theme]; dup {
			return &OptionError{Option: option, Err: errDuplicateTheme}
		}
		seen[theme] = struct{}{}
	}

	if daisy.DarkTheme != "" && len(themes.Names) > 0 {
		if _, ok := seen[daisy.DarkTheme]; !ok {
			return &OptionError{Option: "darkTheme", Err: errUnknownDarkTheme}
		}
	}

	return nil
}

// ValidateTypographyOptions checks the typography option object.
func ValidateTypographyOptions(opts map[string]any) error {
	var typography models.TypographyOptions
	if err := decodeOptions(opts, &typography); err != nil {
		return err
	}

	if typography.ClassName != "" && !classNamePattern.MatchString(typography.ClassName) {
		return &OptionError{Option: "className", Err: errBadClassName}
	}

	return nil
}

// ValidateFormsOptions checks the forms option object.
func ValidateFormsOptions(opts map[string]any) error {
	raw, ok := opts["strategy"]
	if !ok {
		return nil
	}

	switch raw {
	case "base", "class":
		return nil
	default:
		return &OptionError{Option: "strategy", Err: errBadFormsStrategy}
	}
}

// decodeOptions maps a raw option object onto a typed options struct and
// reports type mismatches as *OptionError.
func decodeOptions(opts map[string]any, target any) error {
	data, err := json.Marshal(opts)
	if err != nil {
		return &OptionError{Option: "", Err: err}
	}

	if err = json.Unmarshal(data, target); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &OptionError{Option: typeErr.Field, Err: fmt.Errorf("must be %s", typeErr.Type)}
		}
		return &OptionError{Option: "", Err: err}
	}

	return nil
}
