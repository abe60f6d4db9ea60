// Package catalog loads the offer catalog and serves it from memory.
package catalog

import (
	"context"
	_ "embed"
	"log/slog"
	"os"

	"unveil/config"
	"unveil/internal/domain/entity"
	domainerrors "unveil/internal/domain/errors"
	"unveil/internal/domain/repository"
	"unveil/internal/infra/validator"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

//go:embed seed/offers.yaml
var seedCatalog []byte

// File is the on-disk layout of a catalog.
type File struct {
	Offers []*entity.Offer `yaml:"offers"`
}

// Parse decodes a YAML catalog and validates every offer. Offer IDs must be unique.
func Parse(data []byte, v *validator.Validator) ([]*entity.Offer, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}

	seen := make(map[string]struct{}, len(file.Offers))
	for i, offer := range file.Offers {
		if offer == nil {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed.WithDetails("empty offer"), "offer #%d", i)
		}
		if err := v.Struct(offer); err != nil {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "offer #%d (%s)", i, offer.ID)
		}
		if _, dup := seen[offer.ID]; dup {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed.WithDetails("duplicate offer id"), "offer #%d (%s)", i, offer.ID)
		}
		seen[offer.ID] = struct{}{}
	}

	return file.Offers, nil
}

// Load reads the catalog at path, or the embedded seed catalog when path is empty.
func Load(path string, v *validator.Validator) ([]*entity.Offer, error) {
	if path == "" {
		return Parse(seedCatalog, v)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog %s", path)
	}

	return Parse(data, v)
}

// memoryCatalog implements the repository.OfferCatalog interface over a fixed slice.
type memoryCatalog struct {
	offers []*entity.Offer
	byID   map[string]*entity.Offer
}

// NewMemoryCatalog serves offers in the given order. The slice is not copied; callers must not mutate it.
func NewMemoryCatalog(offers []*entity.Offer) repository.OfferCatalog {
	byID := make(map[string]*entity.Offer, len(offers))
	for _, offer := range offers {
		if _, exists := byID[offer.ID]; !exists {
			byID[offer.ID] = offer
		}
	}

	return &memoryCatalog{
		offers: offers,
		byID:   byID,
	}
}

// ListOffers returns every offer in catalog order.
func (c *memoryCatalog) ListOffers(ctx context.Context) ([]*entity.Offer, error) {
	offers := make([]*entity.Offer, len(c.offers))
	copy(offers, c.offers)

	return offers, nil
}

// FindOfferByID retrieves an offer by its ID.
func (c *memoryCatalog) FindOfferByID(ctx context.Context, id string) (*entity.Offer, error) {
	offer, ok := c.byID[id]
	if !ok {
		return nil, repository.ErrOfferNotFound
	}

	return offer, nil
}

// Params holds dependencies for the catalog, injected by Fx.
type Params struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Validator *validator.Validator
}

// New loads the configured catalog.
func New(params Params) (repository.OfferCatalog, error) {
	path := ""
	if params.Config.Catalog != nil {
		path = params.Config.Catalog.Path
	}

	offers, err := Load(path, params.Validator)
	if err != nil {
		return nil, err
	}

	source := path
	if source == "" {
		source = "embedded seed"
	}
	params.Logger.Info("Offer catalog loaded",
		slog.String("source", source),
		slog.Int("offers", len(offers)),
	)

	return NewMemoryCatalog(offers), nil
}
