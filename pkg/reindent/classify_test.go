package reindent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLine_Directives(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantType     ConstructType
		wantName     string
		wantLeading  int
		wantTrailing int
	}{
		{"if", "#if $condition", ConstructDirectiveOpen, "if", 0, 1},
		{"for", "#for $item in $items", ConstructDirectiveOpen, "for", 0, 1},
		{"def", "#def myFunction()", ConstructDirectiveOpen, "def", 0, 1},
		{"end if", "#end if", ConstructDirectiveClose, "end if", 1, 0},
		{"end for", "#end for", ConstructDirectiveClose, "end for", 1, 0},
		{"end def", "#end def", ConstructDirectiveClose, "end def", 1, 0},
		{"else", "#else", ConstructDirectiveMid, "else", 1, 1},
		{"elif", "#elif $b", ConstructDirectiveMid, "elif", 1, 1},
		{"else if", "#else if $b", ConstructDirectiveMid, "else if", 1, 1},
		{"if without space", "#if($x)", ConstructDirectiveOpen, "if", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ClassifyLine(tt.input)
			require.Len(t, c.Constructs, 1)
			assert.Equal(t, tt.wantType, c.Constructs[0].Type)
			assert.Equal(t, tt.wantName, c.Constructs[0].Name)
			assert.Equal(t, tt.wantLeading, c.LeadingClosers)
			assert.Equal(t, tt.wantTrailing, c.TrailingOpeners)
			assert.False(t, c.Unterminated)
		})
	}
}

func TestClassifyLine_UnrecognizedDirectivesArePlain(t *testing.T) {
	tests := []string{
		"#set $x = 1",
		"#include 'header.tmpl'",
		"#end while",
		"#endif",
		"#end",
		"#iffy",
		"#elseif $x",
		"## a comment with { brace",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			c := ClassifyLine(input)
			assert.True(t, c.IsBalanced())
			for _, construct := range c.Constructs {
				assert.NotEqual(t, ConstructDirectiveOpen, construct.Type)
				assert.NotEqual(t, ConstructDirectiveMid, construct.Type)
				assert.NotEqual(t, ConstructDirectiveClose, construct.Type)
			}
		})
	}
}

func TestClassifyLine_HashLineFallsBackToBrackets(t *testing.T) {
	c := ClassifyLine("#main {")
	assert.Equal(t, 0, c.LeadingClosers)
	assert.Equal(t, 1, c.TrailingOpeners)
}

func TestClassifyLine_Dispatch(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType ConstructType
	}{
		{"empty", "", ConstructPlain},
		{"markup", "<div>", ConstructHTMLOpen},
		{"closing markup", "</div>", ConstructHTMLClose},
		{"code", "if (x) {", ConstructBracketOpen},
		{"text", "Hello world", ConstructPlain},
		{"less-than in code", "a < b", ConstructPlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ClassifyLine(tt.input)
			if len(c.Constructs) == 0 {
				assert.Equal(t, ConstructPlain, tt.wantType)
				return
			}
			assert.Equal(t, tt.wantType, c.Constructs[0].Type)
		})
	}
}

func TestConstructType_String(t *testing.T) {
	assert.Equal(t, "html-open", ConstructHTMLOpen.String())
	assert.Equal(t, "directive-mid", ConstructDirectiveMid.String())
	assert.Equal(t, "bracket-close", ConstructBracketClose.String())
	assert.Equal(t, "unknown", ConstructType(99).String())
}
