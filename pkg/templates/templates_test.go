package templates

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigYAML(t *testing.T) {
	assert.Contains(t, ConfigYAML, "dump:")
	assert.Contains(t, ConfigYAML, "GNLINEAGE_DUMP_DIR")

	var data map[string]any
	err := yaml.Unmarshal([]byte(ConfigYAML), &data)
	require.NoError(t, err)
	for _, v := range []string{"dump", "output", "server", "log"} {
		assert.Contains(t, data, v)
	}
}

func TestIndexHTML(t *testing.T) {
	tmpl, err := template.New("index").Parse(IndexHTML)
	require.NoError(t, err)
	assert.NotNil(t, tmpl.Lookup("index"))
	assert.Contains(t, IndexHTML, `name="find-last-common-node"`)
}
