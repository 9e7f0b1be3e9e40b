package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testVehicle() *VehicleType {
	return &VehicleType{
		ID:                "saloon",
		Name:              "Saloon",
		Capacity:          Capacity{Passengers: 4, Luggage: 2},
		MinimumFare:       16.40,
		AdditionalStopFee: 5.00,
		Slabs: []DistanceSlab{
			{UpToMiles: 4, Rate: 3.95},
			{UpToMiles: 11, Rate: 3.30},
			{UpToMiles: 20, Rate: 2.80},
			{UpToMiles: 40, Rate: 2.45},
			{UpToMiles: 90, Rate: 2.20},
			{UpToMiles: 300, Rate: 1.95},
		},
		OpenEndedRate: 1.80,
		Hourly:        HourlyTiers{ShortHire: 30.00, LongHire: 25.00},
	}
}

func TestVehicleType_SlabRate(t *testing.T) {
	v := testVehicle()

	tests := []struct {
		name     string
		distance float64
		expected float64
	}{
		{
			name:     "short trip falls into first slab",
			distance: 3,
			expected: 3.95,
		},
		{
			name:     "distance exactly on slab boundary uses that slab",
			distance: 4,
			expected: 3.95,
		},
		{
			name:     "distance just past boundary moves to next slab",
			distance: 4.1,
			expected: 3.30,
		},
		{
			name:     "mid-range trip",
			distance: 12,
			expected: 2.80,
		},
		{
			name:     "last slab upper bound",
			distance: 300,
			expected: 1.95,
		},
		{
			name:     "beyond last slab uses open-ended rate",
			distance: 301,
			expected: 1.80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.SlabRate(tt.distance))
		})
	}
}

func TestVehicleType_HourlyRate(t *testing.T) {
	v := testVehicle()

	tests := []struct {
		name     string
		hours    float64
		expected float64
	}{
		{
			name:     "short hire lower bound",
			hours:    3,
			expected: 30.00,
		},
		{
			name:     "short hire just under boundary",
			hours:    5.9,
			expected: 30.00,
		},
		{
			name:     "long hire boundary",
			hours:    6,
			expected: 25.00,
		},
		{
			name:     "long hire mid-range",
			hours:    8,
			expected: 25.00,
		},
		{
			name:     "beyond twelve hours falls back to long hire",
			hours:    14,
			expected: 25.00,
		},
		{
			name:     "under three hours falls back to long hire",
			hours:    2,
			expected: 25.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.HourlyRate(tt.hours))
		})
	}
}
