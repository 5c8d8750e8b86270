package main

import (
	"context"

	"byline/internal/domain/entity"
	"byline/internal/usecase/catalog"
)

// sampleGraph is the two-author, two-magazine graph both commands start from.
type sampleGraph struct {
	authors   []*entity.Author
	magazines []*entity.Magazine
}

func seedSample(ctx context.Context, svc *catalog.Service) (*sampleGraph, error) {
	g := &sampleGraph{}

	for _, name := range []string{"Luqman Bashir", "Abdullahi Aden"} {
		a, err := svc.CreateAuthor(ctx, name)
		if err != nil {
			return nil, err
		}
		g.authors = append(g.authors, a)
	}

	for _, in := range []catalog.CreateMagazineInput{
		{Name: "Daily Nation", Category: "General News"},
		{Name: "Taifa Ya Leo", Category: "Taarifa Ya Leo"},
	} {
		m, err := svc.CreateMagazine(ctx, in)
		if err != nil {
			return nil, err
		}
		g.magazines = append(g.magazines, m)
	}

	articles := []struct {
		author, magazine int
		title            string
	}{
		{0, 0, "AI Revolution"},
		{0, 1, "Fitness Trends"},
		{1, 0, "Blockchain Basics"},
		{0, 0, "Quantum Computing"},
	}
	for _, art := range articles {
		if _, err := svc.AddArticle(ctx, catalog.AddArticleInput{
			Author:   g.authors[art.author],
			Magazine: g.magazines[art.magazine],
			Title:    art.title,
		}); err != nil {
			return nil, err
		}
	}
	return g, nil
}
