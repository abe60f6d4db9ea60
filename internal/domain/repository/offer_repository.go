// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"unveil/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrOfferNotFound is returned when an offer is not found in the catalog.
var ErrOfferNotFound = errors.New("offer not found")

// OfferCatalog defines read access to the published offers.
type OfferCatalog interface {
	// ListOffers returns every offer in catalog order.
	ListOffers(ctx context.Context) ([]*entity.Offer, error)

	// FindOfferByID retrieves an offer by its ID.
	FindOfferByID(ctx context.Context, id string) (*entity.Offer, error)
}
