package fom

// NewPhysicalInterfaceObject describes one physical interface: a named
// attachment point on a parent entity or interface, with its position and
// attitude expressed in the parent structural frame.
func NewPhysicalInterfaceObject(r *Registry, create bool, instanceName, simObjectPath string, hooks LifecycleHooks) (*ObjectDescriptor, error) {
	obj, err := r.DescribeObject(FOMTypePhysicalInterface, instanceName, create, simObjectPath, hooks)
	if err != nil {
		return nil, err
	}

	attrs := []AttributeSpec{
		{
			LogicalName:  "name",
			LocalBinding: simObjectPath + ".packing_data.name",
			UpdatePolicy: UpdateInitializeAndCyclic,
			Encoding:     EncodingUnicodeString,
		},
		{
			LogicalName:  "parent_name",
			LocalBinding: simObjectPath + ".packing_data.parent_name",
			UpdatePolicy: UpdateInitializeAndCyclic,
			Encoding:     EncodingUnicodeString,
		},
		{
			LogicalName:  "position",
			LocalBinding: simObjectPath + ".packing_data.position",
			UpdatePolicy: UpdateInitializeAndCyclic,
			Encoding:     EncodingLittleEndian,
		},
		{
			LogicalName:  "attitude",
			LocalBinding: simObjectPath + ".quat_encoder.buffer",
			UpdatePolicy: UpdateInitializeAndCyclic,
			Encoding:     EncodingNone,
		},
	}
	for _, spec := range attrs {
		if _, err := r.AddAttribute(obj, spec); err != nil {
			return nil, err
		}
	}
	return obj, nil
}
