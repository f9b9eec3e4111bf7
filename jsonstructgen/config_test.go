package jsonstructgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyConfigDefaults(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		wantPackage string
	}{
		{"memory", Config{}, "models"},
		{"out dir", Config{OutDir: "./internal/api-types"}, "apitypes"},
		{"explicit", Config{OutDir: "x", PackageName: "custom"}, "custom"},
		{"invalid dir name", Config{OutDir: "3rd"}, "models"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.cfg
			got := applyConfigDefaults(&in)
			assert.Equal(t, tt.wantPackage, got.PackageName)
			require.NotNil(t, got.EmitComments)
			assert.True(t, *got.EmitComments)
			require.NotNil(t, got.InitializeCollections)
			assert.True(t, *got.InitializeCollections)
			assert.NotNil(t, got.Logger)
			// The input is not modified.
			assert.Equal(t, tt.cfg, in)
		})
	}

	off := false
	got := applyConfigDefaults(&Config{InitializeCollections: &off, Sources: []string{"a", "b"}})
	assert.False(t, *got.InitializeCollections)
	assert.True(t, got.MultiSource)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		fields []string
	}{
		{"valid", Config{Sources: []string{"a.json"}}, nil},
		{"no sources", Config{}, []string{"Sources"}},
		{"empty source", Config{Sources: []string{""}}, []string{"Sources[0]"}},
		{"bad package", Config{Sources: []string{"a.json"}, PackageName: "My-Pkg"}, []string{"PackageName"}},
		{"keyword package", Config{Sources: []string{"a.json"}, PackageName: "type"}, []string{"PackageName"}},
		{"root with many sources", Config{Sources: []string{"a.json", "b.json"}, RootName: "Thing"}, []string{"RootName"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(applyConfigDefaults(&tt.cfg))
			if tt.fields == nil {
				require.NoError(t, err)
				return
			}
			var ce *ConfigError
			require.ErrorAs(t, err, &ce)
			for _, f := range tt.fields {
				assert.Contains(t, ce.Fields, f)
			}
		})
	}
}

func TestValidateMessages(t *testing.T) {
	err := Validate(applyConfigDefaults(&Config{Sources: []string{"a", "b"}, PackageName: "Bad", RootName: "X"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `PackageName: "Bad" is not a valid Go package name`)
	assert.Contains(t, err.Error(), "RootName: only allowed with a single source")
}

func TestParseOptions(t *testing.T) {
	cfg := &Config{}
	err := ParseOptions(cfg, []string{
		"package=api",
		"initialize-collections=false",
		"use-primitives=true",
		"use-big-decimals = true",
		"header=Generated from schemas/",
	})
	require.NoError(t, err)

	assert.Equal(t, "api", cfg.PackageName)
	require.NotNil(t, cfg.InitializeCollections)
	assert.False(t, *cfg.InitializeCollections)
	assert.True(t, cfg.Options.UsePrimitives)
	assert.True(t, cfg.Options.UseBigDecimals)
	assert.False(t, cfg.Options.UseFloat32)
	assert.Equal(t, "Generated from schemas/", cfg.Header)
	assert.Nil(t, cfg.EmitComments)
}

func TestParseOptionsErrors(t *testing.T) {
	tests := []struct {
		name  string
		pairs []string
	}{
		{"missing equals", []string{"use-primitives"}},
		{"empty key", []string{"=true"}},
		{"unknown key", []string{"use-magic=true"}},
		{"bad bool", []string{"use-primitives=sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, ParseOptions(&Config{}, tt.pairs))
		})
	}
}
