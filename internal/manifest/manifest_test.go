package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// npmInitOutput is what `npm init --yes` writes for a fresh directory.
const npmInitOutput = `{
  "name": "demo-app",
  "version": "1.0.0",
  "description": "",
  "main": "index.js",
  "scripts": {
    "test": "echo \"Error: no test specified\" && exit 1"
  },
  "keywords": [],
  "author": "",
  "license": "ISC"
}
`

func webpackScripts() []Script {
	return []Script{
		{Name: "build", Command: "MODE=production webpack -p"},
		{Name: "start", Command: "MODE=development webpack-dev-server"},
		{Name: "lint", Command: "eslint src"},
		{Name: "lint:fix", Command: "eslint src --fix"},
		{Name: "test", Command: "jest --watchAll"},
	}
}

func topLevelKeys(t *testing.T, doc []byte) []string {
	t.Helper()
	var keys []string
	gjson.ParseBytes(doc).ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	return keys
}

func TestScriptBlock(t *testing.T) {
	block, err := ScriptBlock(webpackScripts()[:2])
	require.NoError(t, err)
	assert.Equal(t, `{"build":"MODE=production webpack -p","start":"MODE=development webpack-dev-server"}`, string(block))

	_, err = ScriptBlock([]Script{{Command: "x"}})
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	t.Run("replaces_placeholder_scripts_in_order", func(t *testing.T) {
		out, err := Apply([]byte(npmInitOutput), Patch{Scripts: webpackScripts()})
		require.NoError(t, err)

		scripts, err := Scripts(out)
		require.NoError(t, err)
		assert.Equal(t, webpackScripts(), scripts)
		assert.NotContains(t, string(out), "no test specified")
	})

	t.Run("preserves_key_order", func(t *testing.T) {
		out, err := Apply([]byte(npmInitOutput), Patch{Scripts: webpackScripts()})
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"name", "version", "description", "main", "scripts", "keywords", "author", "license"},
			topLevelKeys(t, out))
	})

	t.Run("adds_scripts_when_manifest_has_none", func(t *testing.T) {
		out, err := Apply([]byte(`{"name":"x"}`), Patch{Scripts: webpackScripts()})
		require.NoError(t, err)
		assert.Equal(t, "jest --watchAll", gjson.GetBytes(out, "scripts.test").String())
		assert.Equal(t, "eslint src --fix", gjson.GetBytes(out, `scripts.lint\:fix`).String())
	})

	t.Run("sets_extra_fields", func(t *testing.T) {
		out, err := Apply([]byte(npmInitOutput), Patch{
			Fields: []Field{{Key: "browserslist", Value: []string{"> 0.25%", "not dead"}}},
		})
		require.NoError(t, err)
		got := gjson.GetBytes(out, "browserslist").Array()
		require.Len(t, got, 2)
		assert.Equal(t, "> 0.25%", got[0].String())
		assert.Equal(t, "not dead", got[1].String())
	})

	t.Run("two_space_indent_and_trailing_newline", func(t *testing.T) {
		out, err := Apply([]byte(`{"name":"x","scripts":{}}`), Patch{Scripts: webpackScripts()[:1]})
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(string(out), "}\n"))
		assert.Contains(t, string(out), "\n  \"name\": \"x\"")
		assert.Contains(t, string(out), "\n    \"build\": ")
	})

	t.Run("rejects_non_object", func(t *testing.T) {
		for _, doc := range []string{``, `[]`, `"str"`, `{"name":`} {
			_, err := Apply([]byte(doc), Patch{Scripts: webpackScripts()})
			assert.True(t, errors.Is(err, ErrInvalidManifest), "doc %q", doc)
		}
	})
}

func TestPatchFile(t *testing.T) {
	t.Run("patches_in_place", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "package.json")
		require.NoError(t, os.WriteFile(path, []byte(npmInitOutput), 0o644))

		require.NoError(t, PatchFile(path, Patch{Scripts: webpackScripts()}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "MODE=production webpack -p", gjson.GetBytes(data, "scripts.build").String())
		assert.Equal(t, "demo-app", gjson.GetBytes(data, "name").String())
	})

	t.Run("missing_file", func(t *testing.T) {
		err := PatchFile(filepath.Join(t.TempDir(), "package.json"), Patch{Scripts: webpackScripts()})
		assert.True(t, errors.Is(err, ErrInvalidManifest))
	})
}

func TestEscapeKey(t *testing.T) {
	assert.Equal(t, "browserslist", escapeKey("browserslist"))
	assert.Equal(t, `lint\:fix`, escapeKey("lint:fix"))
	assert.Equal(t, `a\.b`, escapeKey("a.b"))
}
