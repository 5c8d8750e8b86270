package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Magazine publishes articles under a single category.
// Name and category may be changed after construction; articles keep a
// reference to the magazine, so a rename is visible through them at once.
// Magazines must be created with Registry.NewMagazine.
type Magazine struct {
	id       uuid.UUID
	reg      *Registry
	gen      uint64
	name     string
	category string
	articles []*Article
}

// NewMagazine validates name and category and registers a new Magazine.
func (r *Registry) NewMagazine(name, category string) (*Magazine, error) {
	if err := ValidateMagazineName(name); err != nil {
		return nil, err
	}
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	m := &Magazine{id: uuid.New(), reg: r, gen: r.gen, name: name, category: category}
	r.magazines = append(r.magazines, m)
	return m, nil
}

// ID returns the magazine's identity.
func (m *Magazine) ID() uuid.UUID { return m.id }

// Name returns the magazine's current name.
func (m *Magazine) Name() string {
	defer m.reg.rlock()()
	return m.name
}

// SetName renames the magazine. The name must have 2 to 16 characters.
func (m *Magazine) SetName(name string) error {
	if err := ValidateMagazineName(name); err != nil {
		return err
	}
	unlock := m.reg.lock()
	m.name = name
	unlock()
	return nil
}

// Category returns the magazine's current category.
func (m *Magazine) Category() string {
	defer m.reg.rlock()()
	return m.category
}

// SetCategory changes the magazine's category. It must be non-empty.
func (m *Magazine) SetCategory(category string) error {
	if err := ValidateCategory(category); err != nil {
		return err
	}
	unlock := m.reg.lock()
	m.category = category
	unlock()
	return nil
}

// Articles returns the magazine's articles in publication order.
func (m *Magazine) Articles() []*Article {
	defer m.reg.rlock()()
	return slices.Clone(m.articles)
}

// ArticleCount returns the number of articles the magazine has published.
func (m *Magazine) ArticleCount() int {
	defer m.reg.rlock()()
	return len(m.articles)
}

// Contributors returns the distinct authors published in the magazine,
// in first-seen order.
func (m *Magazine) Contributors() []*Author {
	defer m.reg.rlock()()

	var authors []*Author
	seen := make(map[uuid.UUID]struct{})
	for _, art := range m.articles {
		if _, ok := seen[art.author.id]; ok {
			continue
		}
		seen[art.author.id] = struct{}{}
		authors = append(authors, art.author)
	}
	return authors
}

// ArticleTitles returns the titles of the magazine's articles in publication order.
func (m *Magazine) ArticleTitles() []string {
	defer m.reg.rlock()()

	titles := make([]string, 0, len(m.articles))
	for _, art := range m.articles {
		titles = append(titles, art.title)
	}
	return titles
}

// ContributingAuthors returns the authors with more than ContributingThreshold
// articles in the magazine, in the order each author first appeared.
func (m *Magazine) ContributingAuthors() []*Author {
	defer m.reg.rlock()()

	var order []*Author
	counts := make(map[uuid.UUID]int)
	for _, art := range m.articles {
		if _, ok := counts[art.author.id]; !ok {
			order = append(order, art.author)
		}
		counts[art.author.id]++
	}

	var result []*Author
	for _, a := range order {
		if counts[a.id] > ContributingThreshold {
			result = append(result, a)
		}
	}
	return result
}
