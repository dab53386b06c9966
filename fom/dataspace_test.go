package fom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataSpace_SetGet(t *testing.T) {
	ds := NewDataSpace()

	_, ok := ds.Get("veh.pe_packing_data.name")
	assert.False(t, ok)

	ds.Set("veh.pe_packing_data.name", "Voyager")
	got, ok := ds.Get("veh.pe_packing_data.name")
	assert.True(t, ok)
	assert.Equal(t, "Voyager", got)
}

func TestDataSpace_GetStringNonString(t *testing.T) {
	ds := NewDataSpace()
	ds.Set("veh.count", 3)

	assert.Equal(t, "", ds.GetString("veh.count"))
	assert.Equal(t, "", ds.GetString("missing.path"))
}

// SynchronizeInstanceName is an explicit operation, verifiable without
// building any descriptor.
func TestDataSpace_SynchronizeInstanceName(t *testing.T) {
	ds := NewDataSpace()

	ds.SynchronizeInstanceName("veh.entity_packing", "Voyager")
	assert.Equal(t, "Voyager", ds.InstanceName("veh.entity_packing"))
	assert.Equal(t, "Voyager", ds.GetString("veh.entity_packing.name"))

	ds.SynchronizeInstanceName("veh.entity_packing", "")
	assert.Equal(t, "", ds.InstanceName("veh.entity_packing"))
}
