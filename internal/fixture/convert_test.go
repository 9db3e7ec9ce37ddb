package fixture

import (
	"testing"

	"github.com/alexanderramin/workboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_Minimal(t *testing.T) {
	seed, err := Convert(validMinimalSchema())
	require.NoError(t, err)

	require.Len(t, seed.WorkCenters, 1)
	assert.Equal(t, domain.WorkCenter{ID: "wc-1", Name: "Extrusion Line A"}, seed.WorkCenters[0])

	require.Len(t, seed.WorkOrders, 1)
	assert.Equal(t, domain.WorkOrder{
		ID:           "wo-1",
		WorkCenterID: "wc-1",
		Name:         "Order A",
		Status:       domain.StatusPlanned,
		Start:        domain.Date(2025, 12, 20),
		End:          domain.Date(2025, 12, 26),
	}, seed.WorkOrders[0])
}

func TestConvert_DefaultsStatusToOpen(t *testing.T) {
	s := validMinimalSchema()
	s.WorkOrders[0].Status = ""

	seed, err := Convert(s)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOpen, seed.WorkOrders[0].Status)
}

func TestConvert_InvalidDateFails(t *testing.T) {
	s := validMinimalSchema()
	s.WorkOrders[0].StartDate = "nope"

	_, err := Convert(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wo-1")
}

func TestDefault(t *testing.T) {
	seed := Default()
	assert.Len(t, seed.WorkCenters, 5)
	assert.Len(t, seed.WorkOrders, 6)
	assert.Equal(t, "Extrusion Line A", seed.WorkCenters[0].Name)
	assert.Equal(t, domain.StatusInProgress, seed.WorkOrders[0].Status)
}
