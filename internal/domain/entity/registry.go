package entity

import (
	"slices"
	"sync"
)

// Registry owns every Author, Magazine and Article built through it.
//
// It replaces process-wide lists: each caller (a CLI run, a test) creates its
// own Registry and constructs entities from it. A single RWMutex guards the
// registry lists and the article collections of every entity it created, so a
// construction that touches the registry and both endpoints is atomic.
type Registry struct {
	mu        sync.RWMutex
	gen       uint64
	authors   []*Author
	magazines []*Magazine
	articles  []*Article
}

// Stats is a point-in-time count of registered entities.
type Stats struct {
	Authors   int
	Magazines int
	Articles  int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Articles returns every article constructed through r, in insertion order.
func (r *Registry) Articles() []*Article {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.articles)
}

// Magazines returns every magazine constructed through r, in insertion order.
func (r *Registry) Magazines() []*Magazine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.magazines)
}

// Authors returns every author constructed through r, in insertion order.
func (r *Registry) Authors() []*Author {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.authors)
}

// Stats returns the current entity counts.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Stats{
		Authors:   len(r.authors),
		Magazines: len(r.magazines),
		Articles:  len(r.articles),
	}
}

// TopPublisher returns the magazine with the most articles.
// The boolean is false when no magazine has been registered. On a tie the
// earliest registered magazine wins.
func (r *Registry) TopPublisher() (*Magazine, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var top *Magazine
	for _, m := range r.magazines {
		if top == nil || len(m.articles) > len(top.articles) {
			top = m
		}
	}
	return top, top != nil
}

// Reset forgets every registered entity. Entities that are still referenced
// elsewhere stay readable, but passing them to the registry again, or
// reassigning their articles, fails with a *ReferenceError.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	r.authors = nil
	r.magazines = nil
	r.articles = nil
}

func (r *Registry) checkAuthorLocked(a *Author) error {
	switch {
	case a == nil || a.reg == nil:
		return &ReferenceError{Field: "author", Message: "author must be an instance of Author"}
	case a.reg != r:
		return &ReferenceError{Field: "author", Message: "author belongs to another registry"}
	case a.gen != r.gen:
		return &ReferenceError{Field: "author", Message: "author is no longer registered"}
	}
	return nil
}

func (r *Registry) checkMagazine(m *Magazine) error {
	defer r.rlock()()
	return r.checkMagazineLocked(m)
}

func (r *Registry) checkMagazineLocked(m *Magazine) error {
	switch {
	case m == nil || m.reg == nil:
		return &ReferenceError{Field: "magazine", Message: "magazine must be an instance of Magazine"}
	case m.reg != r:
		return &ReferenceError{Field: "magazine", Message: "magazine belongs to another registry"}
	case m.gen != r.gen:
		return &ReferenceError{Field: "magazine", Message: "magazine is no longer registered"}
	}
	return nil
}

// rlock read-locks r and returns the matching unlock. A nil registry, as held
// by a zero-value entity, has nothing to lock.
func (r *Registry) rlock() func() {
	if r == nil {
		return func() {}
	}
	r.mu.RLock()
	return r.mu.RUnlock
}

// lock is the write counterpart of rlock.
func (r *Registry) lock() func() {
	if r == nil {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

// removeArticle drops art from list, keeping the order of the rest.
func removeArticle(list []*Article, art *Article) []*Article {
	return slices.DeleteFunc(list, func(a *Article) bool { return a == art })
}
