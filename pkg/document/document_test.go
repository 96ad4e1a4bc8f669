package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestString(t *testing.T) {
	doc := decode(t, `{
		"name": "BMW X5",
		"title": "ignored",
		"summary": null,
		"price": 89500,
		"ratio": 1.25,
		"billing": {"first_name": "Ada"},
		"customer": {"first_name": "Grace", "last_name": "Hopper"},
		"tags": ["a"]
	}`)

	tests := []struct {
		name  string
		def   string
		paths []string
		want  string
	}{
		{"first alias wins", "Product", []string{"name", "title"}, "BMW X5"},
		{"falls through missing", "Product", []string{"missing", "title"}, "ignored"},
		{"null counts as missing", "", []string{"summary"}, ""},
		{"default literal", "Product", []string{"nope", "nada"}, "Product"},
		{"integer number", "0", []string{"price"}, "89500"},
		{"fractional number", "0", []string{"ratio"}, "1.25"},
		{"nested path", "", []string{"billing.first_name", "customer.first_name"}, "Ada"},
		{"nested fallback", "", []string{"billing.last_name", "customer.last_name"}, "Hopper"},
		{"list is not scalar", "x", []string{"tags"}, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, String(doc, tt.def, tt.paths...))
		})
	}
}

func TestInt(t *testing.T) {
	doc := decode(t, `{"stock": "7", "qty": 2.9, "bad": "many", "flag": true}`)

	assert.Equal(t, 7, Int(doc, 0, "stock_quantity", "stock"))
	assert.Equal(t, 2, Int(doc, 1, "qty"))
	assert.Equal(t, 5, Int(doc, 5, "bad"))
	assert.Equal(t, 3, Int(doc, 3, "flag"))
	assert.Equal(t, 0, Int(nil, 0, "stock"))
}

func TestBool(t *testing.T) {
	doc := decode(t, `{"visible": false, "paid": "true", "junk": 1}`)

	assert.False(t, Bool(doc, true, "visible"))
	assert.True(t, Bool(doc, false, "paid"))
	assert.True(t, Bool(doc, true, "junk"))
}

func TestList(t *testing.T) {
	doc := decode(t, `{"items": "not a list", "line_items": [{"id": 1}]}`)

	assert.Len(t, List(doc, "items", "line_items"), 1)

	empty := List(doc, "missing")
	require.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestObject(t *testing.T) {
	doc := decode(t, `{"billing": {"city": "Bern"}, "shipping": "none"}`)

	assert.Equal(t, "Bern", Object(doc, "billing")["city"])
	assert.Nil(t, Object(doc, "shipping"))
	assert.Nil(t, Object(doc, "customer"))
}

func TestIsInteger(t *testing.T) {
	assert.True(t, IsInteger(float64(3)))
	assert.True(t, IsInteger(-4))
	assert.False(t, IsInteger(3.5))
	assert.False(t, IsInteger("3"))
	assert.False(t, IsInteger(true))
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "", Display(nil))
	assert.Equal(t, "42", Display(float64(42)))
	assert.Equal(t, "true", Display(true))
	assert.Equal(t, `{"a":1}`, Display(map[string]any{"a": 1}))
	assert.Equal(t, `[1,"x"]`, Display([]any{1, "x"}))
}
