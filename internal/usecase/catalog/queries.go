package catalog

import (
	"context"
	"fmt"

	"byline/internal/domain/entity"
)

// MagazineSummary is a read-only snapshot of one magazine and its derived views.
type MagazineSummary struct {
	Name                string
	Category            string
	ArticleCount        int
	Titles              []string
	Contributors        []string
	ContributingAuthors []string
}

// MagazinesByAuthor returns the distinct magazines the author has published in.
func (s *Service) MagazinesByAuthor(ctx context.Context, author *entity.Author) ([]*entity.Magazine, error) {
	var magazines []*entity.Magazine
	err := s.run(ctx, "magazines_by_author", func(context.Context) error {
		if author == nil {
			return fmt.Errorf("magazines by author: %w", nilReference("author"))
		}
		magazines = author.Magazines()
		return nil
	}, authorAttr(author))
	return magazines, err
}

// TopicAreas returns the distinct categories of the author's magazines.
func (s *Service) TopicAreas(ctx context.Context, author *entity.Author) ([]string, error) {
	var areas []string
	err := s.run(ctx, "topic_areas", func(context.Context) error {
		if author == nil {
			return fmt.Errorf("topic areas: %w", nilReference("author"))
		}
		areas = author.TopicAreas()
		return nil
	}, authorAttr(author))
	return areas, err
}

// Summarize returns the summary of magazine.
func (s *Service) Summarize(ctx context.Context, magazine *entity.Magazine) (MagazineSummary, error) {
	var summary MagazineSummary
	err := s.run(ctx, "summarize_magazine", func(context.Context) error {
		if magazine == nil {
			return fmt.Errorf("summarize magazine: %w", nilReference("magazine"))
		}
		summary = summarize(magazine)
		return nil
	}, magazineAttr(magazine))
	return summary, err
}

// SummarizeAll returns a summary per registered magazine, in registration order.
func (s *Service) SummarizeAll(ctx context.Context) ([]MagazineSummary, error) {
	var summaries []MagazineSummary
	err := s.run(ctx, "summarize_all", func(context.Context) error {
		for _, m := range s.Registry.Magazines() {
			summaries = append(summaries, summarize(m))
		}
		return nil
	})
	return summaries, err
}

// TopPublisher returns the magazine with the most articles.
func (s *Service) TopPublisher(ctx context.Context) (*entity.Magazine, error) {
	var top *entity.Magazine
	err := s.run(ctx, "top_publisher", func(context.Context) error {
		m, ok := s.Registry.TopPublisher()
		if !ok {
			return fmt.Errorf("top publisher: %w", ErrNoMagazines)
		}
		top = m
		return nil
	})
	return top, err
}

func summarize(m *entity.Magazine) MagazineSummary {
	return MagazineSummary{
		Name:                m.Name(),
		Category:            m.Category(),
		ArticleCount:        m.ArticleCount(),
		Titles:              m.ArticleTitles(),
		Contributors:        authorNames(m.Contributors()),
		ContributingAuthors: authorNames(m.ContributingAuthors()),
	}
}

func authorNames(authors []*entity.Author) []string {
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		names = append(names, a.Name())
	}
	return names
}
