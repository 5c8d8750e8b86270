// Package entity defines the author, magazine and article graph together with
// the Registry that owns it.
//
// Article is the edge between an Author and a Magazine. Every article built by
// a Registry is listed by the registry, by its author and by its magazine, and
// reassigning an endpoint moves the article between collections, so each
// collection only ever holds articles that point back at its owner.
package entity

import (
	"github.com/google/uuid"
)

// Article is a titled piece written by one author for one magazine.
type Article struct {
	id       uuid.UUID
	reg      *Registry
	gen      uint64
	title    string
	author   *Author
	magazine *Magazine
}

// NewArticle validates its arguments and links a new article into the
// registry, the author and the magazine.
//
// A nil, foreign or reset author or magazine yields a *ReferenceError; a title
// outside 5..50 characters yields a *ValidationError.
func (r *Registry) NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkAuthorLocked(author); err != nil {
		return nil, err
	}
	if err := r.checkMagazineLocked(magazine); err != nil {
		return nil, err
	}
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}

	art := &Article{
		id:       uuid.New(),
		reg:      r,
		gen:      r.gen,
		title:    title,
		author:   author,
		magazine: magazine,
	}
	r.articles = append(r.articles, art)
	author.articles = append(author.articles, art)
	magazine.articles = append(magazine.articles, art)
	return art, nil
}

// ID returns the article's identity.
func (a *Article) ID() uuid.UUID { return a.id }

// Title returns the article's title.
func (a *Article) Title() string { return a.title }

// Author returns the article's current author.
func (a *Article) Author() *Author {
	defer a.reg.rlock()()
	return a.author
}

// Magazine returns the article's current magazine.
func (a *Article) Magazine() *Magazine {
	defer a.reg.rlock()()
	return a.magazine
}

// SetAuthor reassigns the article to author, moving it from the previous
// author's collection to the new one.
func (a *Article) SetAuthor(author *Author) error {
	unlock := a.reg.lock()
	defer unlock()

	if err := a.reg.checkAuthorLocked(author); err != nil {
		return err
	}
	if err := a.checkLocked(); err != nil {
		return err
	}
	if a.author == author {
		return nil
	}
	a.author.articles = removeArticle(a.author.articles, a)
	author.articles = append(author.articles, a)
	a.author = author
	return nil
}

// SetMagazine reassigns the article to magazine, moving it from the previous
// magazine's collection to the new one.
func (a *Article) SetMagazine(magazine *Magazine) error {
	unlock := a.reg.lock()
	defer unlock()

	if err := a.reg.checkMagazineLocked(magazine); err != nil {
		return err
	}
	if err := a.checkLocked(); err != nil {
		return err
	}
	if a.magazine == magazine {
		return nil
	}
	a.magazine.articles = removeArticle(a.magazine.articles, a)
	magazine.articles = append(magazine.articles, a)
	a.magazine = magazine
	return nil
}

// checkLocked rejects an article that was dropped by Registry.Reset.
func (a *Article) checkLocked() error {
	if a.reg == nil || a.gen != a.reg.gen {
		return &ReferenceError{Field: "article", Message: "article is no longer registered"}
	}
	return nil
}
