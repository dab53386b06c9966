package fom

// Standard solar system reference frame instance names.
const (
	FrameSolarSystemBarycenter = "SolarSystemBarycentricInertial"
	FrameSunInertial           = "SunCentricInertial"
	FrameEarthMoonBarycenter   = "EarthMoonBarycentricInertial"
	FrameEarthInertial         = "EarthMJ2000Eq"
	FrameMoonInertial          = "MoonCentricInertial"
	FrameMarsInertial          = "MarsCentricInertial"
	FrameEarthFixed            = "EarthCentricFixed"
	FrameMoonFixed             = "MoonCentricFixed"
	FrameMarsFixed             = "MarsCentricFixed"
)

// SolarSystemTree holds the frames of the standard planetary reference
// frame tree, for direct access after assembly.
type SolarSystemTree struct {
	SolarSystemBarycenter *ReferenceFrameDescriptor
	SunInertial           *ReferenceFrameDescriptor
	EarthMoonBarycenter   *ReferenceFrameDescriptor
	EarthInertial         *ReferenceFrameDescriptor
	MoonInertial          *ReferenceFrameDescriptor
	MarsInertial          *ReferenceFrameDescriptor
	EarthFixed            *ReferenceFrameDescriptor
	MoonFixed             *ReferenceFrameDescriptor
	MarsFixed             *ReferenceFrameDescriptor
}

// solarSystemFrames lists the standard tree in assembly order. Parents come
// before children; the registry rejects any other ordering.
var solarSystemFrames = []struct {
	instanceName  string
	simObjectPath string
	parentName    string
}{
	{FrameSolarSystemBarycenter, "solar_system_barycenter.frame_packing", ""},
	{FrameSunInertial, "sun_inertial.frame_packing", FrameSolarSystemBarycenter},
	{FrameEarthMoonBarycenter, "earth_moon_barycenter.frame_packing", FrameSolarSystemBarycenter},
	{FrameEarthInertial, "earth_centered_inertial.frame_packing", FrameEarthMoonBarycenter},
	{FrameMoonInertial, "moon_centered_inertial.frame_packing", FrameEarthMoonBarycenter},
	{FrameMarsInertial, "mars_centered_inertial.frame_packing", FrameSolarSystemBarycenter},
	{FrameEarthFixed, "earth_centered_fixed.frame_packing", FrameEarthInertial},
	{FrameMoonFixed, "moon_centered_fixed.frame_packing", FrameMoonInertial},
	{FrameMarsFixed, "mars_centered_fixed.frame_packing", FrameMarsInertial},
}

// BuildSolarSystemTree assembles the standard planetary reference frame
// tree: the solar system barycenter root, the Sun, Earth-Moon barycenter
// and Mars inertial frames under it, Earth and Moon inertial frames under
// the Earth-Moon barycenter, and a planet-fixed frame under each planetary
// inertial frame. The root is set on the federate; every other frame is
// registered as a federate object. With create false the whole tree is set
// up for discovery.
func BuildSolarSystemTree(r *Registry, fed *Federate, create bool, lagCompType LagCompensationType) (*SolarSystemTree, error) {
	byName := make(map[string]*ReferenceFrameDescriptor, len(solarSystemFrames))

	for _, sf := range solarSystemFrames {
		hooks := LifecycleHooks{LagCompensationType: lagCompType}
		frame, err := NewRefFrameObject(r, create, sf.instanceName, sf.simObjectPath, sf.parentName, hooks)
		if err != nil {
			return nil, err
		}
		byName[sf.instanceName] = frame

		if frame.IsRoot() {
			if err := fed.SetRootFrame(frame); err != nil {
				return nil, err
			}
		} else if err := r.RegisterWithFederate(fed, frame); err != nil {
			return nil, err
		}
	}

	return &SolarSystemTree{
		SolarSystemBarycenter: byName[FrameSolarSystemBarycenter],
		SunInertial:           byName[FrameSunInertial],
		EarthMoonBarycenter:   byName[FrameEarthMoonBarycenter],
		EarthInertial:         byName[FrameEarthInertial],
		MoonInertial:          byName[FrameMoonInertial],
		MarsInertial:          byName[FrameMarsInertial],
		EarthFixed:            byName[FrameEarthFixed],
		MoonFixed:             byName[FrameMoonFixed],
		MarsFixed:             byName[FrameMarsFixed],
	}, nil
}
