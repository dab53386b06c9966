package fom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRunBundle(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const masterRunYAML = `
federation: SpaceFOM_Roles_Test
federate: Master
roles:
  master: true
  pacing: false
  root_frame_publisher: true
timing:
  scenario_epoch: 1597369269.184
  lookahead: 0.25
  least_common_time_step: 0.25
  time_padding: 1.0
  base_time_units: microseconds
debug_level: 2
sim_objects:
  - THLA
  - THLA_INIT
known_federates:
  - name: Master
    required: true
  - name: Pacing
    required: true
  - name: RRFP
    required: true
frames:
  - name: RootFrame
    sim_object: root_ref_frame.frame_packing
  - name: FrameA
    parent: RootFrame
    sim_object: ref_frame_A.frame_packing
    create: false
entities:
  - name: Voyager
    sim_object: voyager.entity
    create: true
    lag_compensation: receive-side
interfaces:
  - name: Voyager.dock
    sim_object: voyager.dock_interface
`

func TestLoadRunBundle_EndToEnd(t *testing.T) {
	path := writeRunBundle(t, masterRunYAML)

	bundle, err := LoadRunBundle(path)
	require.NoError(t, err)
	require.NoError(t, bundle.Validate())

	space := NewDataSpace()
	fed, reg, err := bundle.Build(space)
	require.NoError(t, err)

	assert.Equal(t, "SpaceFOM_Roles_Test", fed.FederationName)
	assert.True(t, fed.IsMaster())
	assert.False(t, fed.IsPacing())
	assert.True(t, fed.IsRootFramePublisher())
	assert.Equal(t, 0.25, fed.LookaheadTime())
	assert.Equal(t, 1.0, fed.TimePadding())
	assert.Equal(t, BaseTimeMicroseconds, fed.HLABaseTimeUnits())
	assert.Equal(t, DebugLevel(2), fed.DebugLevel())
	assert.Len(t, fed.KnownFederates(), 3)
	assert.Equal(t, []string{"THLA", "THLA_INIT"}, fed.SimObjects())

	// Root frame defaults to create for the root frame publisher; FrameA
	// is explicitly discovery.
	root := fed.RootFrame()
	require.NotNil(t, root)
	assert.Equal(t, "RootFrame", root.InstanceName())
	assert.True(t, root.Object.CreateFlag)
	frameA, ok := reg.Frame("FrameA")
	require.True(t, ok)
	assert.False(t, frameA.Object.CreateFlag)

	// 2 frames + entity + interface.
	assert.Len(t, fed.Objects(), 4)
	assert.Equal(t, "Voyager", space.InstanceName("voyager.entity"))

	entity, ok := fed.Object("Voyager")
	require.True(t, ok)
	assert.Equal(t, LagCompensationReceiveSide, entity.Descriptor().Hooks.LagCompensationType)

	require.NoError(t, fed.Initialize())
}

func TestRunBundle_ValidateErrors(t *testing.T) {
	base := func() *RunBundle {
		return &RunBundle{Federation: "SpaceFOM_Test", Federate: "Master"}
	}
	neg := -1.0

	tests := []struct {
		name    string
		mutate  func(*RunBundle)
		wantErr string
	}{
		{
			name:    "missing federation",
			mutate:  func(b *RunBundle) { b.Federation = "" },
			wantErr: "federation name is required",
		},
		{
			name:    "missing federate",
			mutate:  func(b *RunBundle) { b.Federate = "" },
			wantErr: "federate name is required",
		},
		{
			name:    "unknown base time units",
			mutate:  func(b *RunBundle) { b.Timing.BaseTimeUnits = "fortnights" },
			wantErr: "unknown base_time_units",
		},
		{
			name:    "non-positive lookahead",
			mutate:  func(b *RunBundle) { b.Timing.Lookahead = &neg },
			wantErr: "lookahead must be positive",
		},
		{
			name: "unknown lag compensation",
			mutate: func(b *RunBundle) {
				b.Frames = []FrameConfig{{Name: "RootFrame", LagCompensation: "psychic"}}
			},
			wantErr: "unknown lag_compensation",
		},
		{
			name: "unnamed frame",
			mutate: func(b *RunBundle) {
				b.Frames = []FrameConfig{{SimObject: "root.frame_packing"}}
			},
			wantErr: "name is required",
		},
		{
			name: "unnamed known federate",
			mutate: func(b *RunBundle) {
				b.KnownFederates = []KnownFederateConfig{{Required: true}}
			},
			wantErr: "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := base()
			tt.mutate(b)
			err := b.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunBundle_BuildSurfacesTreeErrors(t *testing.T) {
	t.Run("dangling parent", func(t *testing.T) {
		b := &RunBundle{
			Federation: "SpaceFOM_Test",
			Federate:   "Master",
			Frames: []FrameConfig{
				{Name: "RootFrame", SimObject: "root.frame_packing"},
				{Name: "FrameB", Parent: "FrameA", SimObject: "b.frame_packing"},
			},
		}
		_, _, err := b.Build(nil)
		require.Error(t, err)
		assert.True(t, IsDanglingParent(err))
	})

	t.Run("two roots", func(t *testing.T) {
		b := &RunBundle{
			Federation: "SpaceFOM_Test",
			Federate:   "Master",
			Frames: []FrameConfig{
				{Name: "RootFrame", SimObject: "root.frame_packing"},
				{Name: "SecondRoot", SimObject: "second.frame_packing"},
			},
		}
		_, _, err := b.Build(nil)
		require.Error(t, err)
		assert.True(t, IsMultipleRoots(err))
	})
}

func TestLoadRunBundle_BadFile(t *testing.T) {
	_, err := LoadRunBundle(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeRunBundle(t, "federation: [unterminated")
	_, err = LoadRunBundle(path)
	assert.Error(t, err)
}
