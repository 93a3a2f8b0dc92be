package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVehicleFlatten(t *testing.T) {
	v := &Vehicle{
		ID: "v-1",
		Conditions: []Condition{
			{ConditionIDKey: "c-1", "note": "scratched bumper"},
		},
		Fields: map[string]any{
			"make":  "Renault",
			"model": "Clio",
		},
	}

	out := v.Flatten()

	assert.Equal(t, "v-1", out["vehicleId"])
	assert.Equal(t, "Renault", out["make"])
	assert.Equal(t, "Clio", out["model"])
	assert.Equal(t, v.Conditions, out["conditions"])
	assert.NotContains(t, out, "documents")
}

func TestVehicleFlatten_NoConditions(t *testing.T) {
	v := &Vehicle{ID: "v-2"}

	out := v.Flatten()

	// conditions must serialize as [] rather than null
	assert.Equal(t, []Condition{}, out["conditions"])
}

func TestConditionID(t *testing.T) {
	assert.Equal(t, "c-9", Condition{ConditionIDKey: "c-9"}.ID())
	assert.Equal(t, "", Condition{}.ID())
	assert.Equal(t, "", Condition{ConditionIDKey: 42}.ID())
}
