package i18n

import (
	"math"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBundleLanguages(t *testing.T) {
	assert.Equal(t, []string{"en", "it"}, Default().Languages())
}

func TestCatalogKeyParity(t *testing.T) {
	b := Default()
	assert.Equal(t, b.Keys("en"), b.Keys("it"), "every locale must define the same keys")
}

func TestMatch(t *testing.T) {
	b := Default()
	tests := map[string]string{
		"":                        "en",
		"it":                      "it",
		"it-IT":                   "it",
		"fr":                      "en",
		"it-IT,it;q=0.9,en;q=0.8": "it",
		"not a tag!!":             "en",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, b.Localizer(in).Lang())
		})
	}
}

func TestText(t *testing.T) {
	en := New("en")
	it := New("it")

	assert.Equal(t, "Total Contributed", en.Text("result.total_contributed"))
	assert.Equal(t, "Totale Versato", it.Text("result.total_contributed"))
	assert.Equal(t, "In 20 years, you will have contributed a total of €130,000.",
		en.Text("summary.intro", 20, en.Currency(130000)))
	assert.Equal(t, "Prudent (3%)", en.Text("preset.prudent"))
	assert.Equal(t, "Bilanciato (5%)", New("it").PresetLabel("balanced"))
}

func TestCurrency(t *testing.T) {
	en := New("en")
	it := New("it")

	assert.Equal(t, "€1,235", en.Currency(1234.5))
	assert.Equal(t, "1.235 €", it.Currency(1234.5))
	assert.Equal(t, "€0", en.Currency(0))
	assert.Equal(t, "€0", en.Currency(-0.3))
	assert.Equal(t, "-€1,500", en.Currency(-1500))
	assert.Equal(t, "n/a", en.Currency(math.NaN()))
	assert.Equal(t, "n.d.", it.Currency(math.Inf(1)))
}

func TestPercentAndRatio(t *testing.T) {
	en := New("en")
	it := New("it")

	assert.Equal(t, "26.0%", en.Percent(26))
	assert.Equal(t, "26,0%", it.Percent(26))
	assert.Equal(t, "0.2%", en.Percent(0.2))
	assert.Equal(t, "25.0%", en.Ratio(1, 4))
	assert.Equal(t, "n/a", en.Ratio(1, 0))
}

func TestLoadFromFS(t *testing.T) {
	t.Run("missing base locale", func(t *testing.T) {
		fsys := fstest.MapFS{
			"locales/it.yaml": {Data: []byte("locale: it\nmessages:\n  a: b\n")},
		}
		_, err := LoadFromFS(fsys)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "base locale")
	})

	t.Run("missing messages", func(t *testing.T) {
		fsys := fstest.MapFS{
			"locales/en.yaml": {Data: []byte("locale: en\n")},
		}
		_, err := LoadFromFS(fsys)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "messages map is required")
	})

	t.Run("empty fs", func(t *testing.T) {
		_, err := LoadFromFS(fstest.MapFS{})
		assert.Error(t, err)
	})

	t.Run("fallback to base", func(t *testing.T) {
		fsys := fstest.MapFS{
			"locales/en.yaml": {Data: []byte("locale: en\nmessages:\n  greet: hello\n  bye: goodbye\n")},
			"locales/it.yaml": {Data: []byte("locale: it\nmessages:\n  greet: ciao\n")},
		}
		b, err := LoadFromFS(fsys)
		require.NoError(t, err)
		it := b.Localizer("it")
		assert.Equal(t, "ciao", it.Text("greet"))
		assert.Equal(t, "goodbye", it.Text("bye"))
	})
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		lang    string
		in      string
		want    float64
		wantErr bool
	}{
		{"en", "10000", 10000, false},
		{"en", "10,000", 10000, false},
		{"en", " 1,500.50 ", 1500.5, false},
		{"en", "0.2", 0.2, false},
		{"en", ".5", 0.5, false},
		{"en", "-3", -3, false},
		{"en", "0,2", 0, true},
		{"en", "1.500,50", 0, true},
		{"en", "10,00", 0, true},
		{"en", "", 0, true},
		{"en", "abc", 0, true},
		{"it", "1.500,50", 1500.5, false},
		{"it", "10.000", 10000, false},
		{"it", "0,5", 0.5, false},
		{"it", "0.5", 0, true},
		{"it", "1,500.50", 0, true},
		{"it", "1,", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.in, func(t *testing.T) {
			got, err := New(tt.lang).ParseNumber(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidNumber)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestSeparatorsAndFormatInput(t *testing.T) {
	group, decimal := New("it").Separators()
	assert.Equal(t, '.', group)
	assert.Equal(t, ',', decimal)

	assert.Equal(t, "0,2", New("it").FormatInput(0.2))
	assert.Equal(t, "0.2", New("en").FormatInput(0.2))
	assert.Equal(t, "10000", New("en").FormatInput(10000))

	v, err := New("it").ParseNumber(New("it").FormatInput(1234.56))
	require.NoError(t, err)
	assert.InDelta(t, 1234.56, v, 1e-9)
}
