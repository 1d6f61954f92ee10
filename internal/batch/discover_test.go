package batch

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher_Match(t *testing.T) {
	tests := []struct {
		name    string
		matcher Matcher
		path    string
		want    bool
	}{
		{"default tmpl", Matcher{}, "test.tmpl", true},
		{"default inc", Matcher{}, "test.inc", true},
		{"default other", Matcher{}, "test.txt", false},
		{"default nested", Matcher{}, "a/b/c/nested.tmpl", true},
		{"custom extension", Matcher{Extensions: []string{".html"}}, "page.html", true},
		{"custom replaces default", Matcher{Extensions: []string{".html"}}, "page.tmpl", false},
		{"excluded dir", Matcher{Exclude: []string{"vendor/**"}}, "vendor/x.tmpl", false},
		{"excluded glob", Matcher{Exclude: []string{"**/*.min.tmpl"}}, "a/x.min.tmpl", false},
		{"not excluded", Matcher{Exclude: []string{"vendor/**"}}, "src/x.tmpl", true},
		{"suffix is not extension", Matcher{}, "tmpl", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.matcher.Match(tt.path))
		})
	}
}

func TestMatcher_Validate(t *testing.T) {
	require.NoError(t, Matcher{}.Validate())
	require.NoError(t, Matcher{Extensions: []string{".tmpl", ".html"}, Exclude: []string{"build/**"}}.Validate())

	err := Matcher{Extensions: []string{"tmpl"}}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)

	err = Matcher{Exclude: []string{"[unclosed"}}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestDiscover_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "test.tmpl"), unformatted)
	writeFile(t, filepath.Join(dir, "test.inc"), unformatted)
	writeFile(t, filepath.Join(dir, "test.txt"), unformatted)

	files, err := Discover(context.Background(), dir, Matcher{}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "test.inc"),
		filepath.Join(dir, "test.tmpl"),
	}, files)
}

func TestDiscover_Subdirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "subdir", "nested.tmpl"), unformatted)
	writeFile(t, filepath.Join(dir, "subdir", "deeper", "deep.inc"), unformatted)
	writeFile(t, filepath.Join(dir, "vendor", "skip.tmpl"), unformatted)

	files, err := Discover(context.Background(), dir, Matcher{Exclude: []string{"vendor"}}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "subdir", "deeper", "deep.inc"),
		filepath.Join(dir, "subdir", "nested.tmpl"),
	}, files)
}

func TestDiscover_InvalidDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.tmpl")
	writeFile(t, file, unformatted)

	for _, root := range []string{filepath.Join(dir, "nonexistent"), file} {
		_, err := Discover(context.Background(), root, Matcher{}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfig)
		assert.Contains(t, err.Error(), "--recursive requires a valid directory path")
	}
}

func TestPlan_RecursiveWithOutfile(t *testing.T) {
	req := Request{Source: t.TempDir(), Outfile: "output.tmpl", Recursive: true}

	_, err := Plan(context.Background(), req, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "-o/--outfile cannot be used with --recursive")
}

func TestPlan_SingleFile(t *testing.T) {
	jobs, err := Plan(context.Background(), Request{Source: "a.tmpl", Outfile: "b.tmpl"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []Job{{Source: "a.tmpl", Target: "b.tmpl"}}, jobs)
}

func TestPlan_MissingSource(t *testing.T) {
	_, err := Plan(context.Background(), Request{}, nil)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestPlan_RecursiveEndToEnd(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "test.tmpl")
	inc := filepath.Join(dir, "test.inc")
	other := filepath.Join(dir, "test.txt")
	nested := filepath.Join(dir, "subdir", "nested.tmpl")
	for _, p := range []string{tmpl, inc, other, nested} {
		writeFile(t, p, unformatted)
	}

	jobs, err := Plan(context.Background(), Request{Source: dir, Recursive: true}, nil)
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	results := New(Options{}).Run(context.Background(), jobs)
	assert.Equal(t, Summary{Formatted: 3}, Summarize(results))

	assert.Equal(t, formatted, readFile(t, tmpl))
	assert.Equal(t, formatted, readFile(t, inc))
	assert.Equal(t, formatted, readFile(t, nested))
	assert.Equal(t, unformatted, readFile(t, other))
}
