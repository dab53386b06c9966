package fom

import (
	"github.com/sirupsen/logrus"
)

// Registry builds validated object and attribute descriptors for one
// federate configuration pass. Each pass owns its own registry; there is no
// process-wide state. All validation happens at construction time so that
// configuration mistakes surface here, before the federation join step,
// instead of deep inside the external framework.
type Registry struct {
	space       *DataSpace
	objects     []*ObjectDescriptor
	frames      []*ReferenceFrameDescriptor
	frameByName map[string]*ReferenceFrameDescriptor
	root        *ReferenceFrameDescriptor
}

// NewRegistry returns a registry writing name-synchronization side effects
// into space. A nil space gets a fresh private one.
func NewRegistry(space *DataSpace) *Registry {
	if space == nil {
		space = NewDataSpace()
	}
	return &Registry{
		space:       space,
		frameByName: make(map[string]*ReferenceFrameDescriptor),
	}
}

// Space returns the backing data space the registry synchronizes names into.
func (r *Registry) Space() *DataSpace {
	return r.space
}

// DescribeObject constructs a descriptor for one distributed object
// instance. A creating federate must supply a non-empty instance name so
// the externally enforced naming-consistency checks can pass. As a side
// effect the backing instance is tagged with the federation name when
// creating, or cleared when discovering.
func (r *Registry) DescribeObject(fomType, instanceName string, create bool, simObjectPath string, hooks LifecycleHooks) (*ObjectDescriptor, error) {
	if fomType == "" {
		return nil, &ConfigurationError{Instance: instanceName, Field: "FOMTypeName", Reason: "must not be empty"}
	}
	if create && instanceName == "" {
		return nil, &ConfigurationError{FOMType: fomType, Field: "InstanceName", Reason: "a creating federate must name the instance"}
	}

	// Instance name in the data must match the federation-visible name.
	if simObjectPath != "" {
		if create {
			r.space.SynchronizeInstanceName(simObjectPath, instanceName)
		} else {
			r.space.SynchronizeInstanceName(simObjectPath, "")
		}
	}

	obj := &ObjectDescriptor{
		FOMTypeName:   fomType,
		InstanceName:  instanceName,
		CreateFlag:    create,
		SimObjectPath: simObjectPath,
		Hooks:         hooks,
	}
	r.objects = append(r.objects, obj)

	logrus.Debugf("described %s object %q (create=%v, sim_object=%s)", fomType, instanceName, create, simObjectPath)
	return obj, nil
}

// AddAttribute appends one attribute descriptor to obj. Unset direction
// fields default to the creator-publishes rule: Publish follows the
// object's CreateFlag, Subscribe its negation, LocallyOwned the CreateFlag.
// Registration order is preserved.
func (r *Registry) AddAttribute(obj *ObjectDescriptor, spec AttributeSpec) (*AttributeDescriptor, error) {
	if spec.LogicalName == "" {
		return nil, &ConfigurationError{FOMType: obj.FOMTypeName, Instance: obj.InstanceName, Field: "LogicalName", Reason: "must not be empty"}
	}
	if obj.HasAttribute(spec.LogicalName) {
		return nil, &DuplicateAttributeError{Instance: obj.InstanceName, FOMType: obj.FOMTypeName, LogicalName: spec.LogicalName}
	}

	attr := &AttributeDescriptor{
		LogicalName:  spec.LogicalName,
		LocalBinding: spec.LocalBinding,
		Publish:      boolOr(spec.Publish, obj.CreateFlag),
		Subscribe:    boolOr(spec.Subscribe, !obj.CreateFlag),
		LocallyOwned: boolOr(spec.LocallyOwned, obj.CreateFlag),
		UpdatePolicy: spec.UpdatePolicy,
		Encoding:     spec.Encoding,
	}
	obj.Attributes = append(obj.Attributes, attr)
	return attr, nil
}

// DescribeReferenceFrame constructs a reference frame descriptor. The FOM
// type is fixed by the shared object model. An empty parentName marks the
// root frame; a registry holds at most one root. A non-empty parentName
// must name a frame already registered with this registry, which forces
// parent-before-child assembly order.
func (r *Registry) DescribeReferenceFrame(instanceName string, create bool, parentName, simObjectPath string, hooks LifecycleHooks) (*ReferenceFrameDescriptor, error) {
	if parentName == "" {
		if r.root != nil {
			return nil, &MultipleRootsError{ExistingRoot: r.root.InstanceName(), Instance: instanceName}
		}
	} else if _, ok := r.frameByName[parentName]; !ok {
		return nil, &DanglingParentError{Instance: instanceName, ParentName: parentName}
	}

	obj, err := r.DescribeObject(FOMTypeReferenceFrame, instanceName, create, simObjectPath, hooks)
	if err != nil {
		return nil, err
	}

	frame := &ReferenceFrameDescriptor{Object: obj, ParentFrameName: parentName}
	r.frames = append(r.frames, frame)
	r.frameByName[instanceName] = frame
	if frame.IsRoot() {
		r.root = frame
	}
	return frame, nil
}

// Objects returns every descriptor built so far, in construction order.
func (r *Registry) Objects() []*ObjectDescriptor {
	return r.objects
}

// Frames returns every reference frame descriptor, in construction order.
func (r *Registry) Frames() []*ReferenceFrameDescriptor {
	return r.frames
}

// Frame returns the reference frame registered under instanceName.
func (r *Registry) Frame(instanceName string) (*ReferenceFrameDescriptor, bool) {
	f, ok := r.frameByName[instanceName]
	return f, ok
}

// Root returns the root reference frame, or nil before one is registered.
func (r *Registry) Root() *ReferenceFrameDescriptor {
	return r.root
}

// Children returns the frames whose parent is instanceName, in
// registration order.
func (r *Registry) Children(instanceName string) []*ReferenceFrameDescriptor {
	var out []*ReferenceFrameDescriptor
	for _, f := range r.frames {
		if f.ParentFrameName == instanceName && !f.IsRoot() {
			out = append(out, f)
		}
	}
	return out
}

// ValidateFrameTree checks that the assembled frames form a single tree:
// exactly one root, every parent link resolving, and every frame reaching
// the root by following parent links. Construction-order checks make this
// hold by induction; this pass re-validates the whole set before hand-off.
func (r *Registry) ValidateFrameTree() error {
	if len(r.frames) == 0 {
		return nil
	}
	if r.root == nil {
		return &ConfigurationError{FOMType: FOMTypeReferenceFrame, Field: "ParentFrameName", Reason: "no root frame in the set"}
	}
	for _, f := range r.frames {
		if f.IsRoot() {
			continue
		}
		seen := map[string]bool{f.InstanceName(): true}
		cur := f
		for !cur.IsRoot() {
			parent, ok := r.frameByName[cur.ParentFrameName]
			if !ok {
				return &DanglingParentError{Instance: cur.InstanceName(), ParentName: cur.ParentFrameName}
			}
			if seen[parent.InstanceName()] {
				return &ConfigurationError{FOMType: FOMTypeReferenceFrame, Instance: f.InstanceName(), Field: "ParentFrameName", Reason: "parent links form a cycle"}
			}
			seen[parent.InstanceName()] = true
			cur = parent
		}
	}
	return nil
}

// FederateObject is any fully built descriptor that can be handed to a
// federate: a plain object descriptor or a reference frame wrapper.
type FederateObject interface {
	Descriptor() *ObjectDescriptor
}

// Descriptor returns the object itself.
func (o *ObjectDescriptor) Descriptor() *ObjectDescriptor { return o }

// Descriptor returns the wrapped object descriptor.
func (f *ReferenceFrameDescriptor) Descriptor() *ObjectDescriptor { return f.Object }

// RegisterWithFederate hands a fully built descriptor to the federate
// configuration collaborator. This is a pure hand-off: the descriptor
// passes through unmodified, no field normalization or reordering occurs,
// and the registry retains no new state.
func (r *Registry) RegisterWithFederate(fed *Federate, desc FederateObject) error {
	return fed.AddObject(desc)
}

func boolOr(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}
