package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/ecollege-api/internal/models"
	appErrors "github.com/noah-isme/ecollege-api/pkg/errors"
	"github.com/noah-isme/ecollege-api/pkg/export"
)

type catalogueRepository interface {
	Entries(ctx context.Context) ([]models.CatalogueEntry, error)
}

// CatalogueHeaders lists the export columns in order.
var CatalogueHeaders = []string{"faculty", "dean", "department", "head", "course", "adviser", "duration"}

// CatalogueDocument is a rendered catalogue export.
type CatalogueDocument struct {
	Filename    string
	ContentType string
	Body        []byte
}

// CatalogueService flattens the faculty hierarchy into downloadable documents.
type CatalogueService struct {
	repo   catalogueRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewCatalogueService constructs a CatalogueService.
func NewCatalogueService(repo catalogueRepository, logger *zap.Logger) *CatalogueService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogueService{repo: repo, logger: logger, now: time.Now}
}

// Dataset builds the tabular catalogue.
func (s *CatalogueService) Dataset(ctx context.Context) (export.Dataset, error) {
	entries, err := s.repo.Entries(ctx)
	if err != nil {
		return export.Dataset{}, storeFailure(s.logger, "load catalogue", err)
	}

	rows := make([]map[string]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, map[string]string{
			"faculty":    e.FacultyName,
			"dean":       e.FacultyDean,
			"department": deref(e.DepartmentName),
			"head":       deref(e.DepartmentHead),
			"course":     deref(e.CourseName),
			"adviser":    deref(e.CourseAdviser),
			"duration":   deref(e.CourseDuration),
		})
	}
	return export.Dataset{Title: "e-College Catalogue", Headers: CatalogueHeaders, Rows: rows}, nil
}

// Export renders the catalogue in the requested format.
func (s *CatalogueService) Export(ctx context.Context, format string) (*CatalogueDocument, error) {
	renderer, err := export.ForFormat(format)
	if err != nil {
		return nil, appErrors.Inoperable(err)
	}

	data, err := s.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	body, err := renderer.Render(data)
	if err != nil {
		s.logger.Error("render catalogue", zap.String("format", format), zap.Error(err))
		return nil, appErrors.Server(fmt.Errorf("render catalogue: %w", err))
	}

	filename := fmt.Sprintf("catalogue-%s.%s", s.now().UTC().Format("20060102"), renderer.Extension())
	s.logger.Info("catalogue exported", zap.String("file", filename), zap.Int("rows", len(data.Rows)))
	return &CatalogueDocument{Filename: filename, ContentType: renderer.ContentType(), Body: body}, nil
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
