package entity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthor(t *testing.T) {
	r := NewRegistry()

	a, err := r.NewAuthor("Abdullahi Aden")
	require.NoError(t, err)
	assert.Equal(t, "Abdullahi Aden", a.Name())
	assert.Empty(t, a.Articles())

	_, err = r.NewAuthor("")
	assert.Equal(t, KindValue, KindOf(err))
	assert.Equal(t, "name", FieldOf(err))
	assert.Len(t, r.Authors(), 1)
}

func TestAuthor_AddArticle(t *testing.T) {
	r := NewRegistry()
	a := mustAuthor(t, r, "A")
	m := mustMagazine(t, r, "MM", "C")

	art, err := a.AddArticle(m, "Blockchain Basics")
	require.NoError(t, err)

	assert.Contains(t, a.Articles(), art)
	assert.Contains(t, m.Articles(), art)
	assert.Contains(t, r.Articles(), art)
	assert.Same(t, a, art.Author())
	assert.Same(t, m, art.Magazine())
}

func TestAuthor_AddArticle_Errors(t *testing.T) {
	r := NewRegistry()
	a := mustAuthor(t, r, "A")
	m := mustMagazine(t, r, "MM", "C")

	_, err := a.AddArticle(nil, "Valid title")
	assert.Equal(t, KindType, KindOf(err))

	_, err = a.AddArticle(m, "shrt")
	assert.Equal(t, KindValue, KindOf(err))

	assert.Empty(t, a.Articles())
	assert.Empty(t, m.Articles())
	assert.Empty(t, r.Articles())
}

func TestAuthor_ArticlesIsACopy(t *testing.T) {
	r := NewRegistry()
	a := mustAuthor(t, r, "A")
	m := mustMagazine(t, r, "MM", "C")
	mustWrite(t, a, m, "First piece")

	view := a.Articles()
	view[0] = nil
	_ = append(view, nil)

	require.Len(t, a.Articles(), 1)
	assert.NotNil(t, a.Articles()[0])
}

func TestAuthor_MagazinesAndTopicAreas(t *testing.T) {
	tests := []struct {
		name          string
		mCategory     string
		nCategory     string
		wantTopicArea []string
	}{
		{"distinct categories", "C", "D", []string{"C", "D"}},
		{"shared category collapses", "C", "C", []string{"C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			a := mustAuthor(t, r, "A")
			m := mustMagazine(t, r, "MM", tt.mCategory)
			n := mustMagazine(t, r, "NN", tt.nCategory)
			mustWrite(t, a, m, "First in M")
			mustWrite(t, a, m, "Second in M")
			mustWrite(t, a, n, "Only in N")

			assert.Equal(t, []*Magazine{m, n}, a.Magazines())
			if diff := cmp.Diff(tt.wantTopicArea, a.TopicAreas()); diff != "" {
				t.Errorf("TopicAreas() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAuthor_NoArticles(t *testing.T) {
	r := NewRegistry()
	a := mustAuthor(t, r, "Idle")

	assert.Empty(t, a.Magazines())
	assert.Empty(t, a.TopicAreas())
}

func TestAuthor_TopicAreasFollowCategoryChange(t *testing.T) {
	r := NewRegistry()
	a := mustAuthor(t, r, "A")
	m := mustMagazine(t, r, "MM", "Tech")
	mustWrite(t, a, m, "Gadget review")

	require.NoError(t, m.SetCategory("Science"))

	assert.Equal(t, []string{"Science"}, a.TopicAreas())
}
