package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Author writes articles for any number of magazines.
// The name is fixed at construction. Authors must be created with
// Registry.NewAuthor; a zero Author reads as empty and is rejected as a
// reference.
type Author struct {
	id       uuid.UUID
	reg      *Registry
	gen      uint64
	name     string
	articles []*Article
}

// NewAuthor validates name and registers a new Author.
func (r *Registry) NewAuthor(name string) (*Author, error) {
	if err := ValidateAuthorName(name); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	a := &Author{id: uuid.New(), reg: r, gen: r.gen, name: name}
	r.authors = append(r.authors, a)
	return a, nil
}

// ID returns the author's identity.
func (a *Author) ID() uuid.UUID { return a.id }

// Name returns the author's name.
func (a *Author) Name() string { return a.name }

// Articles returns the author's articles in the order they were written.
func (a *Author) Articles() []*Article {
	defer a.reg.rlock()()
	return slices.Clone(a.articles)
}

// AddArticle writes a new article titled title in magazine.
// It fails with a reference error when magazine is nil or foreign, and with a
// validation error when the title length is out of range.
func (a *Author) AddArticle(magazine *Magazine, title string) (*Article, error) {
	if err := a.reg.checkMagazine(magazine); err != nil {
		return nil, err
	}
	return a.reg.NewArticle(a, magazine, title)
}

// Magazines returns the distinct magazines the author has written for,
// in the order they were first written for.
func (a *Author) Magazines() []*Magazine {
	defer a.reg.rlock()()
	return a.magazinesLocked()
}

// TopicAreas returns the distinct categories of the author's magazines,
// in first-seen order.
func (a *Author) TopicAreas() []string {
	defer a.reg.rlock()()

	var areas []string
	seen := make(map[string]struct{})
	for _, m := range a.magazinesLocked() {
		if _, ok := seen[m.category]; ok {
			continue
		}
		seen[m.category] = struct{}{}
		areas = append(areas, m.category)
	}
	return areas
}

func (a *Author) magazinesLocked() []*Magazine {
	var mags []*Magazine
	seen := make(map[uuid.UUID]struct{})
	for _, art := range a.articles {
		if _, ok := seen[art.magazine.id]; ok {
			continue
		}
		seen[art.magazine.id] = struct{}{}
		mags = append(mags, art.magazine)
	}
	return mags
}
