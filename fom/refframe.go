package fom

// NewRefFrameObject describes one reference frame with the standard
// attribute set: name, parent_name, and the space/time coordinate state
// buffer. Attribute direction follows the creator-publishes default. An
// empty parentName marks the frame as the tree root.
func NewRefFrameObject(r *Registry, create bool, instanceName, simObjectPath, parentName string, hooks LifecycleHooks) (*ReferenceFrameDescriptor, error) {
	frame, err := r.DescribeReferenceFrame(instanceName, create, parentName, simObjectPath, hooks)
	if err != nil {
		return nil, err
	}

	// The frame publishes its own name and parent name so discovering
	// federates can assemble the same tree.
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
			LogicalName:  "state",
			LocalBinding: simObjectPath + ".stc_encoder.buffer",
			UpdatePolicy: UpdateInitializeAndCyclic,
			Encoding:     EncodingNone,
		},
	}
	for _, spec := range attrs {
		if _, err := r.AddAttribute(frame.Object, spec); err != nil {
			return nil, err
		}
	}

	// The parent name travels inside the frame data as well as in the
	// descriptor, so tag the backing field to match.
	if simObjectPath != "" {
		r.Space().Set(simObjectPath+".packing_data.parent_name", parentName)
	}
	return frame, nil
}
