package fom

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunBundle holds one federate run configuration, loadable from a YAML
// file. Nil pointer fields mean "not set in YAML" and fall back to the
// documented defaults at Build time.
type RunBundle struct {
	Federation string `yaml:"federation"`
	Federate   string `yaml:"federate"`

	Roles          RolesConfig           `yaml:"roles"`
	Timing         TimingConfig          `yaml:"timing"`
	KnownFederates []KnownFederateConfig `yaml:"known_federates"`
	DebugLevel     *int                  `yaml:"debug_level"`
	SimObjects     []string              `yaml:"sim_objects"`

	Frames     []FrameConfig     `yaml:"frames"`
	Entities   []EntityConfig    `yaml:"entities"`
	Interfaces []InterfaceConfig `yaml:"interfaces"`
}

// RolesConfig holds the federation role flags for this federate.
type RolesConfig struct {
	Master             bool `yaml:"master"`
	Pacing             bool `yaml:"pacing"`
	RootFramePublisher bool `yaml:"root_frame_publisher"`
}

// TimingConfig holds federate time management parameters, all in seconds
// except the base time units name.
type TimingConfig struct {
	ScenarioEpoch       *float64 `yaml:"scenario_epoch"`
	Lookahead           *float64 `yaml:"lookahead"`
	LeastCommonTimeStep *float64 `yaml:"least_common_time_step"`
	TimePadding         *float64 `yaml:"time_padding"`
	TimeRegulating      *bool    `yaml:"time_regulating"`
	TimeConstrained     *bool    `yaml:"time_constrained"`
	BaseTimeUnits       string   `yaml:"base_time_units"`
}

// KnownFederateConfig names one federate expected in the execution.
type KnownFederateConfig struct {
	Name     string `yaml:"name"`
	Required bool   `yaml:"required"`
}

// FrameConfig describes one reference frame. An empty parent marks the
// root. Create defaults to the root_frame_publisher role for the root
// frame and to false for every other frame.
type FrameConfig struct {
	Name            string `yaml:"name"`
	Parent          string `yaml:"parent"`
	Create          *bool  `yaml:"create"`
	SimObject       string `yaml:"sim_object"`
	LagCompensation string `yaml:"lag_compensation"`
}

// EntityConfig describes one physical entity. Create defaults to false
// (discovery).
type EntityConfig struct {
	Name            string `yaml:"name"`
	Create          *bool  `yaml:"create"`
	SimObject       string `yaml:"sim_object"`
	LagCompensation string `yaml:"lag_compensation"`
}

// InterfaceConfig describes one physical interface. Create defaults to
// false (discovery).
type InterfaceConfig struct {
	Name      string `yaml:"name"`
	Create    *bool  `yaml:"create"`
	SimObject string `yaml:"sim_object"`
}

// LoadRunBundle reads and parses a YAML federate run configuration file.
func LoadRunBundle(path string) (*RunBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var bundle RunBundle
	if err := yaml.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}
	return &bundle, nil
}

// ValidBaseTimeUnits is the set of recognized base time unit names.
var ValidBaseTimeUnits = map[string]BaseTimeUnits{
	"":             BaseTimeMicroseconds,
	"seconds":      BaseTimeSeconds,
	"milliseconds": BaseTimeMilliseconds,
	"microseconds": BaseTimeMicroseconds,
	"nanoseconds":  BaseTimeNanoseconds,
}

// ValidLagCompensation is the set of recognized lag compensation names.
var ValidLagCompensation = map[string]LagCompensationType{
	"":             LagCompensationNone,
	"none":         LagCompensationNone,
	"send-side":    LagCompensationSendSide,
	"receive-side": LagCompensationReceiveSide,
}

// Validate checks names, enumerations and parameter ranges in the bundle.
// Structural errors (duplicate attributes, dangling parents, multiple
// roots) surface later, at Build time, as their typed errors.
func (b *RunBundle) Validate() error {
	if b.Federation == "" {
		return fmt.Errorf("federation name is required")
	}
	if b.Federate == "" {
		return fmt.Errorf("federate name is required")
	}
	if _, ok := ValidBaseTimeUnits[b.Timing.BaseTimeUnits]; !ok {
		return fmt.Errorf("unknown base_time_units %q", b.Timing.BaseTimeUnits)
	}
	if b.Timing.Lookahead != nil && *b.Timing.Lookahead <= 0 {
		return fmt.Errorf("lookahead must be positive, got %g", *b.Timing.Lookahead)
	}
	if b.Timing.LeastCommonTimeStep != nil && *b.Timing.LeastCommonTimeStep <= 0 {
		return fmt.Errorf("least_common_time_step must be positive, got %g", *b.Timing.LeastCommonTimeStep)
	}
	if b.Timing.TimePadding != nil && *b.Timing.TimePadding < 0 {
		return fmt.Errorf("time_padding must be non-negative, got %g", *b.Timing.TimePadding)
	}
	if b.DebugLevel != nil && (*b.DebugLevel < int(DebugLevelOff) || *b.DebugLevel > int(DebugLevelFull)) {
		return fmt.Errorf("debug_level must be in [%d, %d], got %d", DebugLevelOff, DebugLevelFull, *b.DebugLevel)
	}
	for i, kf := range b.KnownFederates {
		if kf.Name == "" {
			return fmt.Errorf("known_federates[%d]: name is required", i)
		}
	}
	for i, fr := range b.Frames {
		if fr.Name == "" {
			return fmt.Errorf("frames[%d]: name is required", i)
		}
		if _, ok := ValidLagCompensation[fr.LagCompensation]; !ok {
			return fmt.Errorf("frames[%d] (%s): unknown lag_compensation %q", i, fr.Name, fr.LagCompensation)
		}
	}
	for i, en := range b.Entities {
		if en.Name == "" {
			return fmt.Errorf("entities[%d]: name is required", i)
		}
		if _, ok := ValidLagCompensation[en.LagCompensation]; !ok {
			return fmt.Errorf("entities[%d] (%s): unknown lag_compensation %q", i, en.Name, en.LagCompensation)
		}
	}
	for i, in := range b.Interfaces {
		if in.Name == "" {
			return fmt.Errorf("interfaces[%d]: name is required", i)
		}
	}
	return nil
}

// Build materializes the bundle into a federate and its descriptor set,
// writing name-synchronization side effects into space. A nil space gets a
// fresh private one. The federate is left un-initialized so the caller can
// apply further programmatic configuration before freezing it.
func (b *RunBundle) Build(space *DataSpace) (*Federate, *Registry, error) {
	if err := b.Validate(); err != nil {
		return nil, nil, err
	}

	fed, err := NewFederate(b.Federation, b.Federate)
	if err != nil {
		return nil, nil, err
	}
	fed.SetMasterRole(b.Roles.Master)
	fed.SetPacingRole(b.Roles.Pacing)
	fed.SetRootFramePublisherRole(b.Roles.RootFramePublisher)

	if b.DebugLevel != nil {
		fed.SetDebugLevel(DebugLevel(*b.DebugLevel))
	}
	fed.SetHLABaseTimeUnits(ValidBaseTimeUnits[b.Timing.BaseTimeUnits])
	if b.Timing.ScenarioEpoch != nil {
		fed.SetScenarioTimelineEpoch(*b.Timing.ScenarioEpoch)
	}
	if b.Timing.Lookahead != nil {
		if err := fed.SetLookaheadTime(*b.Timing.Lookahead); err != nil {
			return nil, nil, err
		}
	}
	if b.Timing.LeastCommonTimeStep != nil {
		if err := fed.SetLeastCommonTimeStep(*b.Timing.LeastCommonTimeStep); err != nil {
			return nil, nil, err
		}
	}
	if b.Timing.TimePadding != nil {
		fed.SetTimePadding(*b.Timing.TimePadding)
	}
	if b.Timing.TimeRegulating != nil {
		fed.SetTimeRegulating(*b.Timing.TimeRegulating)
	}
	if b.Timing.TimeConstrained != nil {
		fed.SetTimeConstrained(*b.Timing.TimeConstrained)
	}

	for _, kf := range b.KnownFederates {
		if err := fed.AddKnownFederate(kf.Required, kf.Name); err != nil {
			return nil, nil, err
		}
	}
	for _, so := range b.SimObjects {
		fed.AddSimObject(so)
	}

	reg := NewRegistry(space)

	for _, fc := range b.Frames {
		create := fc.Parent == "" && b.Roles.RootFramePublisher
		if fc.Create != nil {
			create = *fc.Create
		}
		hooks := LifecycleHooks{LagCompensationType: ValidLagCompensation[fc.LagCompensation]}
		frame, err := NewRefFrameObject(reg, create, fc.Name, fc.SimObject, fc.Parent, hooks)
		if err != nil {
			return nil, nil, err
		}
		if frame.IsRoot() {
			if err := fed.SetRootFrame(frame); err != nil {
				return nil, nil, err
			}
		} else if err := reg.RegisterWithFederate(fed, frame); err != nil {
			return nil, nil, err
		}
	}

	for _, ec := range b.Entities {
		create := boolOr(ec.Create, false)
		hooks := LifecycleHooks{LagCompensationType: ValidLagCompensation[ec.LagCompensation]}
		obj, err := NewPhysicalEntityObject(reg, create, ec.Name, ec.SimObject, hooks)
		if err != nil {
			return nil, nil, err
		}
		if err := reg.RegisterWithFederate(fed, obj); err != nil {
			return nil, nil, err
		}
	}

	for _, ic := range b.Interfaces {
		create := boolOr(ic.Create, false)
		obj, err := NewPhysicalInterfaceObject(reg, create, ic.Name, ic.SimObject, LifecycleHooks{})
		if err != nil {
			return nil, nil, err
		}
		if err := reg.RegisterWithFederate(fed, obj); err != nil {
			return nil, nil, err
		}
	}

	if err := reg.ValidateFrameTree(); err != nil {
		return nil, nil, err
	}
	return fed, reg, nil
}
