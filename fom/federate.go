package fom

import (
	"github.com/sirupsen/logrus"
)

// BaseTimeUnits selects the HLA logical time tick resolution shared by all
// federates in the federation execution.
type BaseTimeUnits int

const (
	BaseTimeSeconds BaseTimeUnits = iota
	BaseTimeMilliseconds
	BaseTimeMicroseconds // federation default
	BaseTimeNanoseconds
)

func (u BaseTimeUnits) String() string {
	switch u {
	case BaseTimeSeconds:
		return "seconds"
	case BaseTimeMilliseconds:
		return "milliseconds"
	case BaseTimeMicroseconds:
		return "microseconds"
	case BaseTimeNanoseconds:
		return "nanoseconds"
	}
	return "unknown"
}

// TicksPerSecond returns the number of logical time ticks per second for
// the selected base time units.
func (u BaseTimeUnits) TicksPerSecond() int64 {
	switch u {
	case BaseTimeSeconds:
		return 1
	case BaseTimeMilliseconds:
		return 1_000
	case BaseTimeNanoseconds:
		return 1_000_000_000
	default:
		return 1_000_000
	}
}

// DebugLevel controls configuration-pass log verbosity forwarded to the
// external framework.
type DebugLevel int

const (
	DebugLevelOff DebugLevel = iota
	DebugLevelLow
	DebugLevelMedium
	DebugLevelHigh
	DebugLevelFull
)

// KnownFederate names a federate expected in the federation execution. A
// required federate must join before initialization can complete.
type KnownFederate struct {
	Required bool
	Name     string
}

// Federate is the federate configuration collaborator: it receives fully
// built descriptors, holds the federate-level settings (roles, timing,
// known federates), and runs the final cross-checks before the external
// framework performs the federation join. After Initialize succeeds the
// configuration is frozen; descriptors are never mutated afterward by this
// layer.
type Federate struct {
	FederationName string
	FederateName   string

	master bool
	pacing bool
	rrfp   bool // root reference frame publisher

	knownFederates []KnownFederate

	scenarioEpoch       float64 // scenario timeline epoch, seconds
	lookahead           float64 // HLA lookahead, seconds
	leastCommonTimeStep float64 // least common time step across the federation, seconds
	timePadding         float64 // mode transition padding, seconds
	timeRegulating      bool
	timeConstrained     bool
	baseTimeUnits       BaseTimeUnits

	debugLevel DebugLevel

	rootFrame   *ReferenceFrameDescriptor
	objects     []FederateObject
	byInstance  map[string]FederateObject
	simObjects  []string
	initialized bool
}

// NewFederate returns a federate configuration for the named federation
// execution. Both names are required.
func NewFederate(federationName, federateName string) (*Federate, error) {
	if federationName == "" {
		return nil, &ConfigurationError{FOMType: "Federate", Field: "FederationName", Reason: "must not be empty"}
	}
	if federateName == "" {
		return nil, &ConfigurationError{FOMType: "Federate", Field: "FederateName", Reason: "must not be empty"}
	}
	return &Federate{
		FederationName: federationName,
		FederateName:   federateName,
		baseTimeUnits:  BaseTimeMicroseconds,
		timeRegulating: true,
		timeConstrained: true,
		byInstance:     make(map[string]FederateObject),
	}, nil
}

// SetMasterRole marks this federate as the federation execution master.
func (f *Federate) SetMasterRole(master bool) { f.master = master }

// SetPacingRole marks this federate as the pacing federate.
func (f *Federate) SetPacingRole(pacing bool) { f.pacing = pacing }

// SetRootFramePublisherRole marks this federate as the root reference frame
// publisher (RRFP).
func (f *Federate) SetRootFramePublisherRole(rrfp bool) { f.rrfp = rrfp }

// IsMaster reports the master role setting.
func (f *Federate) IsMaster() bool { return f.master }

// IsPacing reports the pacing role setting.
func (f *Federate) IsPacing() bool { return f.pacing }

// IsRootFramePublisher reports the RRFP role setting.
func (f *Federate) IsRootFramePublisher() bool { return f.rrfp }

// SetDebugLevel sets the verbosity forwarded to the external framework.
func (f *Federate) SetDebugLevel(level DebugLevel) { f.debugLevel = level }

// DebugLevel returns the configured verbosity.
func (f *Federate) DebugLevel() DebugLevel { return f.debugLevel }

// AddKnownFederate records a federate expected in this federation
// execution. Names must be non-empty and unique.
func (f *Federate) AddKnownFederate(required bool, name string) error {
	if f.initialized {
		return f.frozenError("KnownFederates")
	}
	if name == "" {
		return &ConfigurationError{FOMType: "Federate", Instance: f.FederateName, Field: "KnownFederates", Reason: "federate name must not be empty"}
	}
	for _, kf := range f.knownFederates {
		if kf.Name == name {
			return &ConfigurationError{FOMType: "Federate", Instance: f.FederateName, Field: "KnownFederates", Reason: "federate " + name + " already listed"}
		}
	}
	f.knownFederates = append(f.knownFederates, KnownFederate{Required: required, Name: name})
	return nil
}

// KnownFederates returns the known-federate list in registration order.
func (f *Federate) KnownFederates() []KnownFederate { return f.knownFederates }

// SetScenarioTimelineEpoch sets the scenario timeline epoch in seconds.
func (f *Federate) SetScenarioTimelineEpoch(epoch float64) { f.scenarioEpoch = epoch }

// ScenarioTimelineEpoch returns the scenario timeline epoch in seconds.
func (f *Federate) ScenarioTimelineEpoch() float64 { return f.scenarioEpoch }

// SetLookaheadTime sets the HLA lookahead in seconds. Must be positive.
func (f *Federate) SetLookaheadTime(seconds float64) error {
	if seconds <= 0 {
		return &ConfigurationError{FOMType: "Federate", Instance: f.FederateName, Field: "Lookahead", Reason: "must be positive"}
	}
	f.lookahead = seconds
	return nil
}

// LookaheadTime returns the HLA lookahead in seconds, 0 when unset.
func (f *Federate) LookaheadTime() float64 { return f.lookahead }

// SetLeastCommonTimeStep sets the least common time step shared by all
// federates, in seconds. Must be positive.
func (f *Federate) SetLeastCommonTimeStep(seconds float64) error {
	if seconds <= 0 {
		return &ConfigurationError{FOMType: "Federate", Instance: f.FederateName, Field: "LeastCommonTimeStep", Reason: "must be positive"}
	}
	f.leastCommonTimeStep = seconds
	return nil
}

// LeastCommonTimeStep returns the least common time step in seconds.
func (f *Federate) LeastCommonTimeStep() float64 { return f.leastCommonTimeStep }

// SetTimePadding sets the mode transition padding in seconds.
func (f *Federate) SetTimePadding(seconds float64) { f.timePadding = seconds }

// TimePadding returns the mode transition padding in seconds.
func (f *Federate) TimePadding() float64 { return f.timePadding }

// SetTimeRegulating sets whether this federate regulates federation time.
func (f *Federate) SetTimeRegulating(regulating bool) { f.timeRegulating = regulating }

// SetTimeConstrained sets whether this federate is time constrained.
func (f *Federate) SetTimeConstrained(constrained bool) { f.timeConstrained = constrained }

// IsTimeRegulating reports the time regulation setting.
func (f *Federate) IsTimeRegulating() bool { return f.timeRegulating }

// IsTimeConstrained reports the time constrained setting.
func (f *Federate) IsTimeConstrained() bool { return f.timeConstrained }

// SetHLABaseTimeUnits sets the logical time tick resolution.
func (f *Federate) SetHLABaseTimeUnits(units BaseTimeUnits) { f.baseTimeUnits = units }

// HLABaseTimeUnits returns the logical time tick resolution.
func (f *Federate) HLABaseTimeUnits() BaseTimeUnits { return f.baseTimeUnits }

// AddSimObject records a simulation object enabled for this federate run.
func (f *Federate) AddSimObject(path string) {
	f.simObjects = append(f.simObjects, path)
}

// SimObjects returns the enabled simulation object paths.
func (f *Federate) SimObjects() []string { return f.simObjects }

// SetRootFrame records the root reference frame and registers it like any
// other object. The frame must actually be a root.
func (f *Federate) SetRootFrame(frame *ReferenceFrameDescriptor) error {
	if f.initialized {
		return f.frozenError("RootFrame")
	}
	if !frame.IsRoot() {
		return &ConfigurationError{FOMType: FOMTypeReferenceFrame, Instance: frame.InstanceName(), Field: "ParentFrameName", Reason: "root frame must not name a parent"}
	}
	if f.rootFrame != nil {
		return &MultipleRootsError{ExistingRoot: f.rootFrame.InstanceName(), Instance: frame.InstanceName()}
	}
	if err := f.AddObject(frame); err != nil {
		return err
	}
	f.rootFrame = frame
	return nil
}

// RootFrame returns the root reference frame, nil when none is set.
func (f *Federate) RootFrame() *ReferenceFrameDescriptor { return f.rootFrame }

// AddObject receives a fully built descriptor from the registry hand-off.
// Instance names must be unique per federate; named objects only, since a
// discovering federate may leave instance names empty until discovery.
func (f *Federate) AddObject(desc FederateObject) error {
	if f.initialized {
		return f.frozenError("Objects")
	}
	obj := desc.Descriptor()
	if obj.InstanceName != "" {
		if _, exists := f.byInstance[obj.InstanceName]; exists {
			return &ConfigurationError{FOMType: obj.FOMTypeName, Instance: obj.InstanceName, Field: "InstanceName", Reason: "already registered with this federate"}
		}
		f.byInstance[obj.InstanceName] = desc
	}
	f.objects = append(f.objects, desc)
	return nil
}

// Objects returns every registered descriptor in hand-off order.
func (f *Federate) Objects() []FederateObject { return f.objects }

// Object returns the registered descriptor with the given instance name.
func (f *Federate) Object(instanceName string) (FederateObject, bool) {
	o, ok := f.byInstance[instanceName]
	return o, ok
}

// Initialize runs the final cross-checks and freezes the configuration.
// Failures here abort the configuration pass: they must be fixed in the
// configuration input, not retried.
func (f *Federate) Initialize() error {
	if f.initialized {
		return nil
	}
	if f.rrfp && f.rootFrame == nil {
		return &ConfigurationError{FOMType: "Federate", Instance: f.FederateName, Field: "RootFrame", Reason: "root reference frame publisher must set a root frame"}
	}
	if f.lookahead > 0 && f.leastCommonTimeStep > 0 && f.lookahead > f.leastCommonTimeStep {
		return &ConfigurationError{FOMType: "Federate", Instance: f.FederateName, Field: "Lookahead", Reason: "must not exceed the least common time step"}
	}
	f.initialized = true

	logrus.Infof("federate %q configured for federation %q: %d objects, %d known federates, lookahead=%gs, lcts=%gs",
		f.FederateName, f.FederationName, len(f.objects), len(f.knownFederates), f.lookahead, f.leastCommonTimeStep)
	return nil
}

// Initialized reports whether the configuration has been frozen.
func (f *Federate) Initialized() bool { return f.initialized }

func (f *Federate) frozenError(field string) error {
	return &ConfigurationError{FOMType: "Federate", Instance: f.FederateName, Field: field, Reason: "configuration is frozen after initialization"}
}
