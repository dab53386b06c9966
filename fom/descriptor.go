package fom

import "fmt"

// FOM type names are fixed by the shared object model. Every federate in a
// federation execution must use these exact strings when describing objects.
const (
	FOMTypeReferenceFrame    = "ReferenceFrame"
	FOMTypePhysicalEntity    = "PhysicalEntity"
	FOMTypePhysicalInterface = "PhysicalInterface"
)

// UpdatePolicy selects when the external framework pushes or pulls an
// attribute value over the federation.
type UpdatePolicy int

const (
	// UpdateInitialize sends/receives the value once, during initialization.
	UpdateInitialize UpdatePolicy = iota
	// UpdateCyclic sends/receives the value every data cycle.
	UpdateCyclic
	// UpdateInitializeAndCyclic combines both.
	UpdateInitializeAndCyclic
)

func (p UpdatePolicy) String() string {
	switch p {
	case UpdateInitialize:
		return "initialize"
	case UpdateCyclic:
		return "cyclic"
	case UpdateInitializeAndCyclic:
		return "initialize+cyclic"
	}
	return fmt.Sprintf("UpdatePolicy(%d)", int(p))
}

// Encoding selects the wire representation applied by the external
// encoder/decoder. It is declared here and forwarded unmodified.
type Encoding int

const (
	// EncodingNone transfers the raw buffer with fixed endianness.
	EncodingNone Encoding = iota
	// EncodingLittleEndian transfers a little-endian fixed record.
	EncodingLittleEndian
	// EncodingUnicodeString transfers an HLA unicode string.
	EncodingUnicodeString
	// EncodingOpaqueBuffer transfers an opaque byte buffer.
	EncodingOpaqueBuffer
)

func (e Encoding) String() string {
	switch e {
	case EncodingNone:
		return "none"
	case EncodingLittleEndian:
		return "little-endian"
	case EncodingUnicodeString:
		return "unicode-string"
	case EncodingOpaqueBuffer:
		return "opaque-buffer"
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}

// LagCompensationType selects which side, if any, compensates received
// attribute data for network and processing delay.
type LagCompensationType int

const (
	LagCompensationNone LagCompensationType = iota
	LagCompensationSendSide
	LagCompensationReceiveSide
)

func (l LagCompensationType) String() string {
	switch l {
	case LagCompensationNone:
		return "none"
	case LagCompensationSendSide:
		return "send-side"
	case LagCompensationReceiveSide:
		return "receive-side"
	}
	return fmt.Sprintf("LagCompensationType(%d)", int(l))
}

// LifecycleHooks carries optional runtime callbacks for one object. All
// handles are opaque to this layer and are forwarded to the external
// framework unmodified.
type LifecycleHooks struct {
	Conditional         any                 // conditional-send callback
	LagCompensation     any                 // lag compensation handler
	LagCompensationType LagCompensationType // which side compensates
	OwnershipHandler    any                 // attribute ownership transfer handler
	DeletedCallback     any                 // object deletion callback
}

// AttributeDescriptor binds one published/subscribed logical attribute name
// to a local data location, a direction, an update cadence, and a wire
// encoding.
type AttributeDescriptor struct {
	LogicalName  string       // FOM attribute name, unique per object
	LocalBinding string       // dotted path into the backing data space
	Publish      bool         // this federate produces the value
	Subscribe    bool         // this federate consumes the value
	LocallyOwned bool         // update ownership held at configuration time
	UpdatePolicy UpdatePolicy // when the value is transferred
	Encoding     Encoding     // wire representation
}

// AttributeSpec is the input to Registry.AddAttribute. Nil pointer fields
// inherit a default derived from the owning object: Publish defaults to the
// object's CreateFlag, Subscribe and LocallyOwned follow suit. The
// "creator publishes, everyone else subscribes" rule is a default, not an
// invariant; explicit values always win.
type AttributeSpec struct {
	LogicalName  string
	LocalBinding string
	Publish      *bool
	Subscribe    *bool
	LocallyOwned *bool
	UpdatePolicy UpdatePolicy
	Encoding     Encoding
}

// ObjectDescriptor describes one distributed object instance: which FOM
// class it belongs to, what it is named in the federation execution, whether
// this federate creates it, and the ordered attribute list. Descriptors are
// built once during configuration and never mutated after hand-off.
type ObjectDescriptor struct {
	FOMTypeName   string // fixed string from the shared object model
	InstanceName  string // federation-execution-unique instance name
	CreateFlag    bool   // this federate instantiates the object
	SimObjectPath string // backing simulation object path, root of attribute bindings
	Attributes    []*AttributeDescriptor
	Hooks         LifecycleHooks
}

// HasAttribute reports whether an attribute with the given logical name has
// already been added.
func (o *ObjectDescriptor) HasAttribute(logicalName string) bool {
	for _, a := range o.Attributes {
		if a.LogicalName == logicalName {
			return true
		}
	}
	return false
}

// ReferenceFrameDescriptor wraps an ObjectDescriptor with the parent link
// that places the frame in a reference frame tree. ParentFrameName is the
// instance name of the immediate parent, empty only for the root frame.
type ReferenceFrameDescriptor struct {
	Object          *ObjectDescriptor
	ParentFrameName string
}

// IsRoot reports whether this frame is the root of the tree.
func (f *ReferenceFrameDescriptor) IsRoot() bool {
	return f.ParentFrameName == ""
}

// InstanceName is a shortcut to the wrapped object's instance name.
func (f *ReferenceFrameDescriptor) InstanceName() string {
	return f.Object.InstanceName
}
