package reindent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeLine_BracketsEmptyInput(t *testing.T) {
	c := TokenizeLine("")
	require.Len(t, c.Constructs, 1)
	assert.Equal(t, ConstructPlain, c.Constructs[0].Type)
	assert.True(t, c.IsBalanced())
}

func TestTokenizeLine_BracketsCounts(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantLeading  int
		wantTrailing int
	}{
		{"plain text", "Hello world", 0, 0},
		{"open brace", "function test() {", 0, 1},
		{"close brace", "}", 1, 0},
		{"close with semicolon", "};", 1, 0},
		{"array open", "var arr = [", 0, 1},
		{"array close", "];", 1, 0},
		{"balanced call", "console.log('test');", 0, 0},
		{"else chain", "} else {", 1, 1},
		{"callback close", "});", 2, 0},
		{"nested opens", "foo({", 0, 2},
		{"close then call", "}).then(function() {", 2, 2},
		{"placeholder in single quotes", "var name = '${user.name}';", 0, 0},
		{"placeholder in double quotes", `var x = "${a} {";`, 0, 0},
		{"placeholder in template literal", "var y = `${b}(`;", 0, 0},
		{"escaped quote", `var s = 'it\'s {';`, 0, 0},
		{"escaped backslash before quote", `var s = '\\'; {`, 0, 1},
		{"apostrophe in double quotes", `var s = "don't {";`, 0, 0},
		{"unterminated string", "var s = 'oops {", 0, 0},
		{"bare placeholder", "Hello ${name}", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := TokenizeLine(tt.input)
			assert.Equal(t, tt.wantLeading, c.LeadingClosers, "leading closers")
			assert.Equal(t, tt.wantTrailing, c.TrailingOpeners, "trailing openers")
		})
	}
}

func TestTokenizeLine_BracketsConstructs(t *testing.T) {
	c := TokenizeLine("a[0] = {")
	require.Len(t, c.Constructs, 3)
	assert.Equal(t, ConstructBracketOpen, c.Constructs[0].Type)
	assert.Equal(t, "[", c.Constructs[0].Name)
	assert.Equal(t, 1, c.Constructs[0].Position)
	assert.Equal(t, ConstructBracketClose, c.Constructs[1].Type)
	assert.Equal(t, "]", c.Constructs[1].Name)
	assert.Equal(t, ConstructBracketOpen, c.Constructs[2].Type)
	assert.Equal(t, "{", c.Constructs[2].Name)
	assert.Equal(t, 7, c.Constructs[2].Position)
}

func TestIsEscaped(t *testing.T) {
	assert.False(t, isEscaped(`'`, 0))
	assert.True(t, isEscaped(`\'`, 1))
	assert.False(t, isEscaped(`\\'`, 2))
	assert.True(t, isEscaped(`\\\'`, 3))
}
