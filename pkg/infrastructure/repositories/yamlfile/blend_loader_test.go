package yamlfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBlendsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blends.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBlends(t *testing.T) {
	path := writeBlendsFile(t, `
blends:
  - id: spicy-mix
    name: Spicy Mix
    components:
      - product_id: pea
        ratio_percent: 60
      - product_id: radish
        ratio_percent: 40
  - id: mild-mix
    name: Mild Mix
    components:
      - product_id: broccoli
        ratio_percent: 33.4
      - product_id: kale
        ratio_percent: 33.3
      - product_id: kohlrabi
        ratio_percent: 33.3
`)

	blends, err := NewLoader().LoadBlends(path)
	require.NoError(t, err)
	require.Len(t, blends, 2)

	spicy := blends[0]
	assert.Equal(t, "Spicy Mix", spicy.Name)
	require.Len(t, spicy.Components, 2)
	assert.Equal(t, "pea", string(spicy.Components[0].ProductID))
	assert.True(t, spicy.Components[0].RatioPercent.Equal(decimal.NewFromInt(60)))

	mild := blends[1]
	require.Len(t, mild.Components, 3)
	assert.True(t, mild.RatioTotal().Equal(decimal.NewFromInt(100)))
}

func TestLoadBlendsInvalidRecipe(t *testing.T) {
	path := writeBlendsFile(t, `
blends:
  - id: broken
    name: Broken Mix
    components:
      - product_id: pea
        ratio_percent: 0
`)

	_, err := NewLoader().LoadBlends(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Contains(t, err.Error(), "ratio")
}

func TestLoadBlendsEmptyFile(t *testing.T) {
	path := writeBlendsFile(t, "blends: []\n")

	_, err := NewLoader().LoadBlends(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no blends")
}

func TestLoadBlendsMalformedYAML(t *testing.T) {
	path := writeBlendsFile(t, "blends: [unclosed\n")

	_, err := NewLoader().LoadBlends(path)
	require.Error(t, err)
}

func TestLoadBlendsMissingFile(t *testing.T) {
	_, err := NewLoader().LoadBlends(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}
