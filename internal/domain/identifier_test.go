package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ItemID
		ok    bool
	}{
		{
			name:  "Regular item",
			input: "tf2_g0_risk_1",
			want:  ItemID{Area: AreaMobility, Group: 0, Category: CategoryRisk, Index: 1},
			ok:    true,
		},
		{
			name:  "Finding item",
			input: "tf4_g0_stat_0",
			want:  ItemID{Area: AreaSelfCare, Group: 0, Category: CategoryFinding, Index: 0},
			ok:    true,
		},
		{
			name:  "Second group",
			input: "tf6_g1_act_2",
			want:  ItemID{Area: AreaDischarge, Group: 1, Category: CategoryMeasure, Index: 2},
			ok:    true,
		},
		{
			name:  "Gateway",
			input: "tf1_g0_gateway",
			want:  ItemID{Area: AreaCognition, Group: 0, Gateway: true},
			ok:    true,
		},
		{
			name:  "Matrix risk",
			input: "matrix_g0_risk_13",
			want:  ItemID{Area: AreaMatrix, Group: 0, Category: CategoryRisk, Index: 13},
			ok:    true,
		},
		{name: "Unknown area", input: "tf9_g0_risk_0", ok: false},
		{name: "Unknown category", input: "tf1_g0_bogus_0", ok: false},
		{name: "Missing index", input: "tf1_g0_risk", ok: false},
		{name: "Non-numeric group", input: "tf1_gx_risk_0", ok: false},
		{name: "Non-numeric index", input: "tf1_g0_risk_x", ok: false},
		{name: "Trailing part after gateway", input: "tf1_g0_gateway_0", ok: false},
		{name: "Empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseItemID(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestItemIDStringRoundTrip(t *testing.T) {
	ids := []ItemID{
		{Area: AreaIllness, Group: 0, Category: CategoryAid, Index: 3},
		{Area: AreaDischarge, Group: 1, Gateway: true},
		{Area: AreaMatrix, Group: 0, Category: CategoryRisk, Index: 0},
	}
	for _, id := range ids {
		parsed, ok := ParseItemID(id.String())
		require.True(t, ok, id.String())
		assert.Equal(t, id, parsed)
	}
}

func TestGatewayID(t *testing.T) {
	id := GatewayID(AreaSocial, 0)
	assert.Equal(t, "tf5_g0_gateway", id.String())
	assert.True(t, id.Gateway)
}
