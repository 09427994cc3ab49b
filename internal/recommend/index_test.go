package recommend

import (
	"testing"

	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestIndex(t *testing.T, descriptions []string) *Index {
	t.Helper()
	normalizer, err := parsing.NewNormalizer()
	require.NoError(t, err)

	idx, err := BuildIndex(normalizer, descriptions)
	require.NoError(t, err)
	return idx
}

func TestBuildIndex_EmptyCorpus(t *testing.T) {
	normalizer, err := parsing.NewNormalizer()
	require.NoError(t, err)

	_, err = BuildIndex(normalizer, nil)
	assert.Error(t, err)
}

func TestRecommend_ExactCopyRanksFirst(t *testing.T) {
	idx := buildTestIndex(t, []string{
		"django flask numpy",
		"salesforce crm hubspot",
		"autocad solidworks revit",
	})

	got := idx.Recommend([]string{"django", "flask", "numpy"}, 3)
	require.NotEmpty(t, got)
	assert.Equal(t, 0, got[0])
}

func TestRecommend_DescendingSimilarityOrder(t *testing.T) {
	idx := buildTestIndex(t, []string{
		"java spring hibernate maven",
		"java fundamentals course",
		"watercolor painting basics",
	})

	got := idx.Recommend([]string{"java", "spring"}, 3)
	require.Len(t, got, 2)
	// Course 0 shares both query terms, course 1 only one; course 2 has
	// zero overlap and is excluded entirely.
	assert.Equal(t, []int{0, 1}, got)
}

func TestRecommend_Deterministic(t *testing.T) {
	idx := buildTestIndex(t, []string{
		"java programming introduction",
		"advanced java patterns",
		"java for beginners",
		"cooking fundamentals",
		"java microservices",
	})

	first := idx.Recommend([]string{"java"}, 3)
	second := idx.Recommend([]string{"java"}, 3)
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestRecommend_TiesBrokenByLowerIndex(t *testing.T) {
	idx := buildTestIndex(t, []string{
		"docker kubernetes",
		"python flask",
		"docker kubernetes",
	})

	got := idx.Recommend([]string{"docker"}, 2)
	// Rows 0 and 2 are identical; the lower index wins the tie.
	assert.Equal(t, []int{0, 2}, got)
}

func TestRecommend_EmptyMissingSkills(t *testing.T) {
	idx := buildTestIndex(t, []string{"python flask", "java spring"})

	assert.Empty(t, idx.Recommend(nil, 5))
	assert.Empty(t, idx.Recommend([]string{}, 5))
}

func TestRecommend_OutOfVocabularyQuery(t *testing.T) {
	idx := buildTestIndex(t, []string{"python flask", "java spring"})

	assert.Empty(t, idx.Recommend([]string{"underwater basket weaving"}, 5))
}

func TestRecommend_KLargerThanCorpus(t *testing.T) {
	idx := buildTestIndex(t, []string{"python flask", "python django"})

	got := idx.Recommend([]string{"python"}, 10)
	assert.Len(t, got, 2)
}

func TestVectorizer_BigramsContribute(t *testing.T) {
	idx := buildTestIndex(t, []string{
		"sql server administration",
		"sql database server performance",
	})

	got := idx.Recommend([]string{"sql server"}, 2)
	// Both rows contain "sql" and "server", but only row 0 has them
	// adjacent, so the "sql server" bigram pushes it ahead.
	require.Len(t, got, 2)
	assert.Equal(t, []int{0, 1}, got)
}
