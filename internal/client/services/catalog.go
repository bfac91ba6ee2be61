package services

import (
	"context"

	"github.com/dmitrijs2005/tunnelpanel/internal/client/client"
	"github.com/dmitrijs2005/tunnelpanel/internal/client/models"
	"github.com/dmitrijs2005/tunnelpanel/internal/logging"
)

const (
	CatalogUnavailableMessage = "Error loading packages. Please refresh the page."
	DefaultCTALabel           = "Create Account & Start Using VPN"
)

// CatalogService loads the public package catalog.
type CatalogService struct {
	client client.Client
	logger logging.Logger
}

func NewCatalogService(c client.Client, logger logging.Logger) *CatalogService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &CatalogService{client: c, logger: logger}
}

// Packages returns the catalog in server order.
func (c *CatalogService) Packages(ctx context.Context) ([]models.Package, error) {
	pkgs, err := c.client.Packages(ctx)
	if err != nil {
		c.logger.Error(ctx, "loading packages failed", "error", err.Error())
		return nil, err
	}
	return pkgs, nil
}

// Selection is the package chosen during one signup visit.
type Selection struct {
	packages []models.Package
	selected *models.Package
}

func NewSelection(pkgs []models.Package) *Selection {
	return &Selection{packages: pkgs}
}

func (s *Selection) Packages() []models.Package {
	if s == nil {
		return nil
	}
	return s.packages
}

// Select marks the package with the given id. Unknown ids leave the
// selection unchanged and return false.
func (s *Selection) Select(id int64) bool {
	if s == nil {
		return false
	}
	for i := range s.packages {
		if s.packages[i].ID == id {
			p := s.packages[i]
			s.selected = &p
			return true
		}
	}
	return false
}

func (s *Selection) Selected() (models.Package, bool) {
	if s == nil || s.selected == nil {
		return models.Package{}, false
	}
	return *s.selected, true
}

// CTALabel is the text of the signup call-to-action.
func (s *Selection) CTALabel() string {
	p, ok := s.Selected()
	if !ok {
		return DefaultCTALabel
	}
	return "Create Account - " + p.Name + " " + p.PriceLabel()
}

func (s *Selection) Reset() {
	if s != nil {
		s.selected = nil
	}
}
