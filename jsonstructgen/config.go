package jsonstructgen

import (
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/broady/jsonstruct/jsonstructgen/provider"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("gopackage", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		return token.IsIdentifier(name) && name != "_" && !strings.ContainsFunc(name, unicode.IsUpper)
	})
	return v
}

// Config holds the configuration for a generation run.
type Config struct {
	// Sources are the schema documents to read, JSON or YAML by extension.
	Sources []string `validate:"required,min=1,dive,required"`

	// OutDir is the directory generated files are written to. When empty
	// and no sink is given, files are kept in memory.
	OutDir string

	// PackageName is the package clause of the generated files.
	// Default: the base name of OutDir, or "models".
	PackageName string `validate:"required,gopackage"`

	// RootName names the root type of a single source without a "title".
	RootName string `validate:"omitempty,excluded_with=MultiSource"`

	// Header is a comment placed at the top of every generated file.
	Header string

	// EmitComments copies schema titles and descriptions into doc comments.
	// Default: true.
	EmitComments *bool

	// InitializeCollections makes list and set fields without a default
	// start out empty instead of nil. Default: true.
	InitializeCollections *bool

	// Options controls how schema types map to Go types.
	Options provider.Options

	// Logger receives progress messages. Default: slog.Default().
	Logger *slog.Logger `validate:"-"`

	// MultiSource is set by applyConfigDefaults when there is more than one
	// source.
	MultiSource bool `validate:"-"`
}

// applyConfigDefaults returns a copy of cfg with defaults filled in.
func applyConfigDefaults(cfg *Config) *Config {
	result := *cfg

	if result.PackageName == "" {
		result.PackageName = defaultPackageName(result.OutDir)
	}
	if result.EmitComments == nil {
		t := true
		result.EmitComments = &t
	}
	if result.InitializeCollections == nil {
		t := true
		result.InitializeCollections = &t
	}
	if result.Logger == nil {
		result.Logger = slog.Default()
	}
	result.MultiSource = len(result.Sources) > 1

	return &result
}

func defaultPackageName(outDir string) string {
	if outDir == "" {
		return "models"
	}
	base := strings.ToLower(filepath.Base(filepath.Clean(outDir)))
	base = strings.NewReplacer("-", "", ".", "", " ", "").Replace(base)
	if !token.IsIdentifier(base) {
		return "models"
	}
	return base
}

// ConfigError reports invalid configuration fields.
type ConfigError struct {
	// Fields maps a field name to what is wrong with it.
	Fields map[string]string

	// Message lists every problem, sorted by field.
	Message string
}

func (e *ConfigError) Error() string { return "invalid config: " + e.Message }

// Validate checks cfg after defaults are applied.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}
	ce := &ConfigError{Fields: make(map[string]string)}
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		msg := formatValidationError(ve)
		ce.Fields[ve.Field()] = msg
		messages = append(messages, ve.Field()+": "+msg)
	}
	ce.Message = strings.Join(messages, "; ")
	return ce
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "gopackage":
		return fmt.Sprintf("%q is not a valid Go package name", ve.Value())
	case "excluded_with":
		return "only allowed with a single source"
	case "min":
		return fmt.Sprintf("must have at least %s entries", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
