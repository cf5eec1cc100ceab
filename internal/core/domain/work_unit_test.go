package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressingAttention(t *testing.T) {
	a := Addressing{
		TeamAlias:      "campaignmanagement",
		AnalystAliases: map[string]string{"Debra Eskra": "deb.eskra"},
	}
	tests := []struct {
		name    string
		parties Parties
		want    []string
	}{
		{"nobody known", Parties{}, []string{"campaignmanagement"}},
		{"reporter only", Parties{Reporter: "John Smith"}, []string{"John.Smith"}},
		{"analyst only", Parties{LeadAnalyst: "Ann Lee"}, []string{"Ann.Lee"}},
		{"aliased analyst", Parties{LeadAnalyst: "Debra Eskra"}, []string{"deb.eskra"}},
		{"both", Parties{Reporter: "John Smith", LeadAnalyst: "Debra Eskra"}, []string{"John.Smith", "deb.eskra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Attention(tt.parties))
		})
	}
}

func TestParentLink(t *testing.T) {
	u := WorkUnit{Pixel: Pixel{ID: "1"}, TicketKey: "CAM-1"}
	assert.True(t, u.Resolved())
	assert.False(t, WorkUnit{}.Resolved())
	assert.False(t, ParentLink{Unit: u}.HasMeasurement())
	assert.True(t, ParentLink{Unit: u, MeasurementTicket: "MEAS-9"}.HasMeasurement())
}
