package validator

import (
	"testing"
	"time"

	"unveil/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Offer(t *testing.T) {
	v := New()

	valid := &entity.Offer{ID: "offer_1", BusinessID: "biz_1", Title: "Cena", RequiredLevel: entity.LevelAdvanced}
	require.NoError(t, v.Struct(valid))

	noLevel := &entity.Offer{ID: "offer_2", BusinessID: "biz_1", Title: "Cena"}
	require.NoError(t, v.Struct(noLevel))

	badLevel := &entity.Offer{ID: "offer_3", BusinessID: "biz_1", Title: "Cena", RequiredLevel: "Experto"}
	err := v.Struct(badLevel)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requiredLevel")
	assert.Contains(t, err.Error(), "oneof")
}

func TestValidator_OfferMissingFields(t *testing.T) {
	err := New().Struct(&entity.Offer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Offer.id failed 'required'")
	assert.Contains(t, err.Error(), "Offer.businessId failed 'required'")
}

func TestValidator_ProposalDates(t *testing.T) {
	v := New()
	day := time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dates   []time.Time
		wantErr bool
	}{
		{"no dates", nil, true},
		{"one date", []time.Time{day}, false},
		{"two dates", []time.Time{day, day.AddDate(0, 0, 1)}, false},
		{"three dates", []time.Time{day, day, day}, true},
		{"zero date", []time.Time{{}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(&entity.CreatorProposal{OfferID: "offer_1", CreatorID: "user_1", ProposedDates: tt.dates})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
