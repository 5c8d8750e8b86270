package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"byline/internal/domain/entity"
	"byline/internal/observability/logging"
	"byline/internal/observability/metrics"
	"byline/internal/observability/tracing"
)

// AddArticleInput represents the input parameters for publishing an article.
type AddArticleInput struct {
	Author   *entity.Author
	Magazine *entity.Magazine
	Title    string
}

// CreateMagazineInput represents the input parameters for creating a magazine.
type CreateMagazineInput struct {
	Name     string
	Category string
}

// Service provides catalog use cases over a single Registry.
//
// Logger may be nil, in which case the logger carried by the context (or
// slog.Default) is used. Metrics are recorded only when RecordMetrics is set.
type Service struct {
	Registry      *entity.Registry
	Logger        *slog.Logger
	RecordMetrics bool
}

// NewService returns a Service bound to reg that records metrics.
func NewService(reg *entity.Registry, logger *slog.Logger) *Service {
	return &Service{Registry: reg, Logger: logger, RecordMetrics: true}
}

// CreateAuthor registers a new author.
func (s *Service) CreateAuthor(ctx context.Context, name string) (*entity.Author, error) {
	var author *entity.Author
	err := s.run(ctx, "create_author", func(context.Context) error {
		a, err := s.Registry.NewAuthor(name)
		if err != nil {
			return fmt.Errorf("create author: %w", err)
		}
		author = a
		return nil
	}, attribute.String("author.name", name))
	return author, err
}

// CreateMagazine registers a new magazine.
func (s *Service) CreateMagazine(ctx context.Context, in CreateMagazineInput) (*entity.Magazine, error) {
	var magazine *entity.Magazine
	err := s.run(ctx, "create_magazine", func(context.Context) error {
		m, err := s.Registry.NewMagazine(in.Name, in.Category)
		if err != nil {
			return fmt.Errorf("create magazine: %w", err)
		}
		magazine = m
		return nil
	}, attribute.String("magazine.name", in.Name), attribute.String("magazine.category", in.Category))
	return magazine, err
}

// AddArticle publishes an article by in.Author in in.Magazine.
func (s *Service) AddArticle(ctx context.Context, in AddArticleInput) (*entity.Article, error) {
	var article *entity.Article
	err := s.run(ctx, "add_article", func(context.Context) error {
		if in.Author == nil {
			return fmt.Errorf("add article: %w", nilReference("author"))
		}
		a, err := in.Author.AddArticle(in.Magazine, in.Title)
		if err != nil {
			return fmt.Errorf("add article: %w", err)
		}
		article = a
		return nil
	}, attribute.String("article.title", in.Title))
	return article, err
}

// ReassignAuthor moves article to author.
func (s *Service) ReassignAuthor(ctx context.Context, article *entity.Article, author *entity.Author) error {
	return s.run(ctx, "reassign_author", func(context.Context) error {
		if article == nil {
			return fmt.Errorf("reassign author: %w", nilReference("article"))
		}
		if err := article.SetAuthor(author); err != nil {
			return fmt.Errorf("reassign author: %w", err)
		}
		return nil
	}, articleAttr(article))
}

// MoveArticle moves article to magazine.
func (s *Service) MoveArticle(ctx context.Context, article *entity.Article, magazine *entity.Magazine) error {
	return s.run(ctx, "move_article", func(context.Context) error {
		if article == nil {
			return fmt.Errorf("move article: %w", nilReference("article"))
		}
		if err := article.SetMagazine(magazine); err != nil {
			return fmt.Errorf("move article: %w", err)
		}
		return nil
	}, articleAttr(article))
}

// RenameMagazine changes the magazine's name. The old name is kept on failure.
func (s *Service) RenameMagazine(ctx context.Context, magazine *entity.Magazine, name string) error {
	return s.run(ctx, "rename_magazine", func(context.Context) error {
		if magazine == nil {
			return fmt.Errorf("rename magazine: %w", nilReference("magazine"))
		}
		if err := magazine.SetName(name); err != nil {
			return fmt.Errorf("rename magazine: %w", err)
		}
		return nil
	}, magazineAttr(magazine), attribute.String("magazine.name", name))
}

// Recategorize changes the magazine's category. The old category is kept on failure.
func (s *Service) Recategorize(ctx context.Context, magazine *entity.Magazine, category string) error {
	return s.run(ctx, "recategorize_magazine", func(context.Context) error {
		if magazine == nil {
			return fmt.Errorf("recategorize magazine: %w", nilReference("magazine"))
		}
		if err := magazine.SetCategory(category); err != nil {
			return fmt.Errorf("recategorize magazine: %w", err)
		}
		return nil
	}, magazineAttr(magazine), attribute.String("magazine.category", category))
}

// FindAuthor returns the registered author with the given ID.
func (s *Service) FindAuthor(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	var found *entity.Author
	err := s.run(ctx, "find_author", func(context.Context) error {
		for _, a := range s.Registry.Authors() {
			if a.ID() == id {
				found = a
				return nil
			}
		}
		return fmt.Errorf("find author %s: %w", id, ErrAuthorNotFound)
	}, attribute.String("author.id", id.String()))
	return found, err
}

// FindMagazine returns the registered magazine with the given ID.
func (s *Service) FindMagazine(ctx context.Context, id uuid.UUID) (*entity.Magazine, error) {
	var found *entity.Magazine
	err := s.run(ctx, "find_magazine", func(context.Context) error {
		for _, m := range s.Registry.Magazines() {
			if m.ID() == id {
				found = m
				return nil
			}
		}
		return fmt.Errorf("find magazine %s: %w", id, ErrMagazineNotFound)
	}, attribute.String("magazine.id", id.String()))
	return found, err
}

// run wraps fn in a span, records its outcome and logs it.
func (s *Service) run(ctx context.Context, operation string, fn func(context.Context) error, attrs ...attribute.KeyValue) error {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "catalog."+operation, attrs...)
	defer span.End()

	err := fn(ctx)
	elapsed := time.Since(start)

	logger := s.logger(ctx).With("operation", operation)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn("catalog operation rejected",
			slog.String("field", entity.FieldOf(err)),
			slog.String("kind", entity.KindOf(err).String()),
			slog.Any("error", err))
	} else {
		logger.Debug("catalog operation completed",
			slog.Duration("duration", elapsed))
	}

	if s.RecordMetrics {
		metrics.RecordOperation(operation, elapsed, err)
		if errors.Is(err, entity.ErrValidationFailed) || errors.Is(err, entity.ErrInvalidReference) {
			metrics.RecordValidationError(operation, entity.FieldOf(err), entity.KindOf(err).String())
		}
		stats := s.Registry.Stats()
		metrics.UpdateGraphSize(stats.Authors, stats.Magazines, stats.Articles)
	}
	return err
}

func (s *Service) logger(ctx context.Context) *slog.Logger {
	logger := s.Logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	return logging.WithRunIDField(ctx, logger)
}

func nilReference(field string) error {
	return &entity.ReferenceError{Field: field, Message: field + " must not be nil"}
}

func authorAttr(a *entity.Author) attribute.KeyValue {
	if a == nil {
		return attribute.String("author.id", "")
	}
	return attribute.String("author.id", a.ID().String())
}

func magazineAttr(m *entity.Magazine) attribute.KeyValue {
	if m == nil {
		return attribute.String("magazine.id", "")
	}
	return attribute.String("magazine.id", m.ID().String())
}

func articleAttr(a *entity.Article) attribute.KeyValue {
	if a == nil {
		return attribute.String("article.id", "")
	}
	return attribute.String("article.id", a.ID().String())
}
