package errors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetails(t *testing.T) {
	err := ErrInvalidProposal.WithDetails("no dates")

	assert.Equal(t, "INVALID_PROPOSAL", err.ErrorCode())
	assert.Equal(t, "no dates", err.Details())
	assert.Equal(t, "La propuesta no es válida: no dates", err.Error())
	assert.Empty(t, ErrInvalidProposal.Details(), "original must stay untouched")
}

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrOfferNotFound.WithDetails("offer_99")
	wrapped := errors.Wrap(detailed, "lookup")

	assert.ErrorIs(t, detailed, ErrOfferNotFound)
	assert.ErrorIs(t, wrapped, ErrOfferNotFound)
	assert.NotErrorIs(t, wrapped, ErrCampaignNotFound)
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrCampaignNotFound.WrapMessage("cancel campaign")

	assert.Contains(t, err.Error(), "cancel campaign")
	assert.ErrorIs(t, err, ErrCampaignNotFound)

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CAMPAIGN_NOT_FOUND", appErr.ErrorCode())
}
