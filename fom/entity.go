package fom

// NewPhysicalEntityObject describes one physical entity with the standard
// attribute set. String-valued identity attributes travel as unicode
// strings, vector states as little-endian records, and the encoder-packed
// space/time coordinate and attitude buffers raw.
func NewPhysicalEntityObject(r *Registry, create bool, instanceName, simObjectPath string, hooks LifecycleHooks) (*ObjectDescriptor, error) {
	obj, err := r.DescribeObject(FOMTypePhysicalEntity, instanceName, create, simObjectPath, hooks)
	if err != nil {
		return nil, err
	}

	attrs := []AttributeSpec{
		{
			LogicalName:  "name",
			LocalBinding: simObjectPath + ".pe_packing_data.name",
			UpdatePolicy: UpdateInitializeAndCyclic,
			Encoding:     EncodingUnicodeString,
		},
		{
			LogicalName:  "type",
			LocalBinding: simObjectPath + ".pe_packing_data.type",
			UpdatePolicy: UpdateInitializeAndCyclic,
			Encoding:     EncodingUnicodeString,
		},
		{
			LogicalName:  "status",
			LocalBinding: simObjectPath + ".pe_packing_data.status",
			UpdatePolicy: UpdateInitializeAndCyclic,
			Encoding:     EncodingUnicodeString,
		},
		{
			LogicalName:  "parent_reference_frame",
			LocalBinding: simObjectPath + ".pe_packing_data.parent_frame",
			UpdatePolicy: UpdateInitializeAndCyclic,
			Encoding:     EncodingUnicodeString,
		},
		{
			LogicalName:  "state",
			LocalBinding: simObjectPath + ".stc_encoder.buffer",
			UpdatePolicy: UpdateInitializeAndCyclic,
			Encoding:     EncodingNone,
		},
		{
			LogicalName:  "acceleration",
			LocalBinding: simObjectPath + ".pe_packing_data.accel",
			UpdatePolicy: UpdateInitializeAndCyclic,
			Encoding:     EncodingLittleEndian,
		},
		{
			LogicalName:  "rotational_acceleration",
			LocalBinding: simObjectPath + ".pe_packing_data.ang_accel",
			UpdatePolicy: UpdateInitializeAndCyclic,
			Encoding:     EncodingLittleEndian,
		},
		{
			LogicalName:  "center_of_mass",
			LocalBinding: simObjectPath + ".pe_packing_data.cm",
			UpdatePolicy: UpdateInitializeAndCyclic,
			Encoding:     EncodingLittleEndian,
		},
		{
			LogicalName:  "body_wrt_structural",
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
