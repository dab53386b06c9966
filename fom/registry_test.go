package fom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeObject_SynchronizesInstanceName(t *testing.T) {
	tests := []struct {
		name         string
		create       bool
		instanceName string
		wantBacking  string
	}{
		{
			name:         "creating federate tags the backing instance",
			create:       true,
			instanceName: "Voyager",
			wantBacking:  "Voyager",
		},
		{
			name:         "discovering federate clears the backing name",
			create:       false,
			instanceName: "Voyager",
			wantBacking:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := NewDataSpace()
			ds.SynchronizeInstanceName("veh", "stale")
			reg := NewRegistry(ds)

			obj, err := reg.DescribeObject(FOMTypePhysicalEntity, tt.instanceName, tt.create, "veh", LifecycleHooks{})
			require.NoError(t, err)
			assert.Equal(t, tt.instanceName, obj.InstanceName)
			assert.Equal(t, tt.wantBacking, ds.InstanceName("veh"))
		})
	}
}

func TestDescribeObject_CreateRequiresInstanceName(t *testing.T) {
	reg := NewRegistry(nil)

	_, err := reg.DescribeObject(FOMTypePhysicalEntity, "", true, "veh", LifecycleHooks{})
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))

	// No half-built descriptor is retained.
	assert.Empty(t, reg.Objects())
}

func TestDescribeObject_DiscoveryAllowsEmptyInstanceName(t *testing.T) {
	reg := NewRegistry(nil)

	obj, err := reg.DescribeObject(FOMTypePhysicalEntity, "", false, "veh", LifecycleHooks{})
	require.NoError(t, err)
	assert.False(t, obj.CreateFlag)
}

func TestAddAttribute_DuplicateLogicalName(t *testing.T) {
	reg := NewRegistry(nil)
	obj, err := reg.DescribeObject(FOMTypePhysicalEntity, "Voyager", true, "veh", LifecycleHooks{})
	require.NoError(t, err)

	first, err := reg.AddAttribute(obj, AttributeSpec{
		LogicalName:  "state",
		LocalBinding: "veh.stc_encoder.buffer",
		UpdatePolicy: UpdateInitializeAndCyclic,
		Encoding:     EncodingNone,
	})
	require.NoError(t, err)

	_, err = reg.AddAttribute(obj, AttributeSpec{
		LogicalName:  "state",
		LocalBinding: "veh.other.buffer",
	})
	require.Error(t, err)
	assert.True(t, IsDuplicateAttribute(err))

	// The first registration survives the collision untouched.
	require.Len(t, obj.Attributes, 1)
	assert.Same(t, first, obj.Attributes[0])
	assert.Equal(t, "veh.stc_encoder.buffer", first.LocalBinding)
}

func TestAddAttribute_DirectionDefaultsFollowCreateFlag(t *testing.T) {
	boolPtr := func(v bool) *bool { return &v }

	tests := []struct {
		name          string
		create        bool
		spec          AttributeSpec
		wantPublish   bool
		wantSubscribe bool
		wantOwned     bool
	}{
		{
			name:          "creator publishes by default",
			create:        true,
			spec:          AttributeSpec{LogicalName: "state"},
			wantPublish:   true,
			wantSubscribe: false,
			wantOwned:     true,
		},
		{
			name:          "discoverer subscribes by default",
			create:        false,
			spec:          AttributeSpec{LogicalName: "state"},
			wantPublish:   false,
			wantSubscribe: true,
			wantOwned:     false,
		},
		{
			name:   "explicit direction overrides the default",
			create: true,
			spec: AttributeSpec{
				LogicalName: "state",
				Publish:     boolPtr(false),
				Subscribe:   boolPtr(true),
			},
			wantPublish:   false,
			wantSubscribe: true,
			wantOwned:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry(nil)
			obj, err := reg.DescribeObject(FOMTypePhysicalEntity, "Voyager", tt.create, "veh", LifecycleHooks{})
			require.NoError(t, err)

			attr, err := reg.AddAttribute(obj, tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPublish, attr.Publish)
			assert.Equal(t, tt.wantSubscribe, attr.Subscribe)
			assert.Equal(t, tt.wantOwned, attr.LocallyOwned)
		})
	}
}

func TestAddAttribute_RequiresLogicalName(t *testing.T) {
	reg := NewRegistry(nil)
	obj, err := reg.DescribeObject(FOMTypePhysicalEntity, "Voyager", true, "veh", LifecycleHooks{})
	require.NoError(t, err)

	_, err = reg.AddAttribute(obj, AttributeSpec{LocalBinding: "veh.x"})
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

// The hand-off is pass-through: the federate receives the exact descriptor
// supplied, no field normalization or attribute reordering.
func TestRegisterWithFederate_PassThrough(t *testing.T) {
	reg := NewRegistry(nil)
	fed, err := NewFederate("SpaceFOM_Test", "Voyager_Fed")
	require.NoError(t, err)

	obj, err := reg.DescribeObject(FOMTypePhysicalEntity, "Voyager", true, "veh", LifecycleHooks{})
	require.NoError(t, err)
	_, err = reg.AddAttribute(obj, AttributeSpec{
		LogicalName:  "state",
		LocalBinding: "veh.stc_encoder.buffer",
		UpdatePolicy: UpdateInitializeAndCyclic,
		Encoding:     EncodingNone,
	})
	require.NoError(t, err)

	require.NoError(t, reg.RegisterWithFederate(fed, obj))

	got, ok := fed.Object("Voyager")
	require.True(t, ok)
	assert.Same(t, obj, got.Descriptor())
	require.Len(t, got.Descriptor().Attributes, 1)
	assert.True(t, got.Descriptor().Attributes[0].Publish)
	assert.False(t, got.Descriptor().Attributes[0].Subscribe)
}
