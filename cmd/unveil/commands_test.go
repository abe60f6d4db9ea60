package main

import (
	"testing"
	"time"

	"unveil/internal/domain/entity"
	domainerrors "unveil/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDates(t *testing.T) {
	dates, err := parseDates([]string{"2026-10-20", "2026-10-22"})
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, time.Date(2026, time.October, 20, 0, 0, 0, 0, time.Local), dates[0])

	_, err = parseDates([]string{"20/10/2026"})
	assert.Error(t, err)
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "Remoto", location(&entity.Offer{IsRemote: true, City: "Santiago"}))
	assert.Equal(t, "Santiago, Chile", location(&entity.Offer{City: "Santiago", Country: "Chile"}))
	assert.Equal(t, "Chile", location(&entity.Offer{Country: "Chile"}))
}

func TestRenderError(t *testing.T) {
	wrapped := errors.Wrap(domainerrors.ErrOfferNotFound.WithDetails("offer_9"), "propose")
	assert.Equal(t, "[OFFER_NOT_FOUND] No se encontró la oferta (offer_9)", renderError(wrapped))

	assert.Equal(t, "[INVALID_PROPOSAL] La propuesta no es válida", renderError(domainerrors.ErrInvalidProposal))

	assert.Equal(t, "[INTERNAL_ERROR] Error interno del sistema (disk full)", renderError(errors.New("disk full")))
}

func TestLoadProfile_RequiresPath(t *testing.T) {
	_, err := loadProfile("", nil)
	assert.Error(t, err)
}
