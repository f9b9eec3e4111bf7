package jsonstructgen

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
)

var optionDecoder = schema.NewDecoder()

// optionValues lists the settings ParseOptions accepts. Nil fields were
// not given.
type optionValues struct {
	Package               *string `schema:"package"`
	Root                  *string `schema:"root"`
	Header                *string `schema:"header"`
	Comments              *bool   `schema:"comments"`
	InitializeCollections *bool   `schema:"initialize-collections"`
	UsePrimitives         *bool   `schema:"use-primitives"`
	UseLongIntegers       *bool   `schema:"use-long-integers"`
	UseBigIntegers        *bool   `schema:"use-big-integers"`
	UseFloat32            *bool   `schema:"use-float32"`
	UseBigDecimals        *bool   `schema:"use-big-decimals"`
	UseCivilDates         *bool   `schema:"use-civil-dates"`
}

// ParseOptions applies "key=value" overrides to cfg, as given on the
// command line with --set. Unknown keys and malformed values are errors.
//
// Keys: package, root, header, comments, initialize-collections,
// use-primitives, use-long-integers, use-big-integers, use-float32,
// use-big-decimals, use-civil-dates.
func ParseOptions(cfg *Config, pairs []string) error {
	values := url.Values{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return fmt.Errorf("invalid option %q: want key=value", pair)
		}
		values.Add(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	var opts optionValues
	if err := optionDecoder.Decode(&opts, values); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	setString(&cfg.PackageName, opts.Package)
	setString(&cfg.RootName, opts.Root)
	setString(&cfg.Header, opts.Header)
	if opts.Comments != nil {
		cfg.EmitComments = opts.Comments
	}
	if opts.InitializeCollections != nil {
		cfg.InitializeCollections = opts.InitializeCollections
	}
	setBool(&cfg.Options.UsePrimitives, opts.UsePrimitives)
	setBool(&cfg.Options.UseLongIntegers, opts.UseLongIntegers)
	setBool(&cfg.Options.UseBigIntegers, opts.UseBigIntegers)
	setBool(&cfg.Options.UseFloat32, opts.UseFloat32)
	setBool(&cfg.Options.UseBigDecimals, opts.UseBigDecimals)
	setBool(&cfg.Options.UseCivilDates, opts.UseCivilDates)
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
