package check

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const planSchema = `{
	"title": "Plan",
	"type": "object",
	"properties": {
		"tier": {"type": "string", "enum": ["free", "pro"], "default": "prro"},
		"seats": {"type": "integer", "default": 1},
		"owner": {"type": "string"}
	}
}`

func runCheck(t *testing.T, cmd *Cmd) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(planSchema), 0o644))

	var stdout bytes.Buffer
	cmd.Schemas = []string{path}
	cmd.Stdout = &stdout
	require.NoError(t, cmd.Run(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil))))
	return stdout.String()
}

func TestRun_Summary(t *testing.T) {
	got := runCheck(t, &Cmd{})
	assert.Contains(t, got, "✓ 1 structs, 1 enums\n")
	assert.Contains(t, got, "✓ 2 defaults synthesized\n")
	assert.Contains(t, got, `did you mean "pro"?`)
	assert.Contains(t, got, "(unknown_enum_default)")
}

func TestRun_Dump(t *testing.T) {
	got := runCheck(t, &Cmd{Dump: true})
	assert.Contains(t, got, "StructDescriptor")
	assert.Contains(t, got, `Name: (string) (len=4) "Plan"`)
}

func TestRun_JSON(t *testing.T) {
	got := runCheck(t, &Cmd{JSON: true})

	var decoded struct {
		Types []struct {
			Kind string `json:"kind"`
		}
	}
	require.NoError(t, json.Unmarshal([]byte(got), &decoded))
	require.Len(t, decoded.Types, 2)
	assert.Equal(t, "struct", decoded.Types[0].Kind)
	assert.Equal(t, "enum", decoded.Types[1].Kind)
}
