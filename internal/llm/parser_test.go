package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"surrounded by prose", `Here is the menu: {"a":1} hope it helps!`, `{"a":1}`},
		{"nested braces", `x {"a":{"b":2}} y`, `{"a":{"b":2}}`},
		{"no object", "sorry, I could not read the image", ""},
		{"braces out of order", "} nothing {", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractJSONObject(tc.in))
		})
	}
}

func TestExtractFencedMatchesBareJSON(t *testing.T) {
	payload := `[{"type":"category","id":"c1","name":"Entrantes","description":""}]`

	fenced := "```json\n" + payload + "\n```"
	bare := "  " + payload + "  "

	var fromFenced, fromBare []TranslationUnit
	require.NoError(t, json.Unmarshal([]byte(ExtractFenced(fenced)), &fromFenced))
	require.NoError(t, json.Unmarshal([]byte(ExtractFenced(bare)), &fromBare))

	assert.Equal(t, fromBare, fromFenced)
}

func TestExtractFencedWithoutLanguageTag(t *testing.T) {
	payload := `{"ok":true}`
	fenced := "```\n" + payload + "\n```"
	assert.Equal(t, payload, ExtractFenced(fenced))
}

func TestStripQuotes(t *testing.T) {
	assert.Equal(t, "La Carta", StripQuotes(`  "La Carta"  `))
	assert.Equal(t, "La Carta", StripQuotes("'La Carta'"))
	assert.Equal(t, "La Carta", StripQuotes("“La Carta”"))
	assert.Equal(t, "no quotes", StripQuotes("no quotes"))
	assert.Equal(t, `half "quoted`, StripQuotes(`half "quoted`))
}
