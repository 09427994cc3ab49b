package skills

import (
	"testing"

	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return NewExtractor(taxonomy.Default())
}

func TestExtract_CaseInsensitiveDeduplicated(t *testing.T) {
	e := newTestExtractor(t)

	set := e.Extract("I know PYTHON and python and Python.")

	assert.True(t, set.Has("python"))
	assert.Equal(t, []string{"python"}, set.Sorted())
}

func TestExtract_PhraseIntegrity(t *testing.T) {
	e := newTestExtractor(t)

	withPhrase := e.Extract("Designed REST APIs for payment systems")
	assert.True(t, withPhrase.Has("rest apis"))

	withoutPhrase := e.Extract("Deep knowledge of REST principles")
	assert.False(t, withoutPhrase.Has("rest apis"))
}

func TestExtract_PhraseAcrossLineBreak(t *testing.T) {
	e := newTestExtractor(t)

	set := e.Extract("Skills: REST\nAPIs, Git")
	assert.True(t, set.Has("rest apis"))
	assert.True(t, set.Has("git"))
}

func TestExtract_OverlappingPhrasesBothReported(t *testing.T) {
	e := newTestExtractor(t)

	set := e.Extract("5 years with SQL Server administration")
	assert.True(t, set.Has("sql server"))
	assert.True(t, set.Has("sql"))
}

func TestExtract_WholeTokenBoundaries(t *testing.T) {
	e := newTestExtractor(t)

	// "git" must not match inside "digital"; "r" must not match inside
	// arbitrary words.
	set := e.Extract("Led digital transformation programs")
	assert.False(t, set.Has("git"))
	assert.False(t, set.Has("r"))
}

func TestExtract_PunctuatedSkills(t *testing.T) {
	e := newTestExtractor(t)

	set := e.Extract("Built CI/CD pipelines, C# services and .NET Core APIs")
	assert.True(t, set.Has("ci/cd"))
	assert.True(t, set.Has("c#"))
	assert.True(t, set.Has(".net core"))
}

func TestExtract_NoMatchesIsEmptySet(t *testing.T) {
	e := newTestExtractor(t)

	set := e.Extract("I enjoy gardening and cooking")
	assert.Empty(t, set)
}

func TestExtract_EmptyInput(t *testing.T) {
	e := newTestExtractor(t)

	assert.Empty(t, e.Extract(""))
}

func TestExtract_Idempotent(t *testing.T) {
	e := newTestExtractor(t)

	text := "Python developer with Flask, SQL and Git experience"
	first := e.Extract(text)
	second := e.Extract(text)

	require.Equal(t, first, second)
	assert.Equal(t, []string{"flask", "git", "python", "sql"}, first.Sorted())
}
