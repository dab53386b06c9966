package fom

// DataSpace models the host simulation's data space: a flat store of values
// addressed by dotted path strings. Attribute LocalBinding paths resolve
// into one of these. The configuration layer itself only ever reads and
// writes a single well-known field per object, the self-reported instance
// name; all cyclic attribute data flow is performed by the external
// framework at runtime.
type DataSpace struct {
	values map[string]any
}

// NewDataSpace returns an empty data space.
func NewDataSpace() *DataSpace {
	return &DataSpace{values: make(map[string]any)}
}

// Set stores a value at the given dotted path.
func (d *DataSpace) Set(path string, value any) {
	d.values[path] = value
}

// Get returns the value at the given dotted path.
func (d *DataSpace) Get(path string) (any, bool) {
	v, ok := d.values[path]
	return v, ok
}

// GetString returns the string value at the given dotted path, or the empty
// string when the path is unset or holds a non-string.
func (d *DataSpace) GetString(path string) string {
	if s, ok := d.values[path].(string); ok {
		return s
	}
	return ""
}

// InstanceNamePath returns the dotted path of an object's self-reported
// name field.
func InstanceNamePath(simObjectPath string) string {
	return simObjectPath + ".name"
}

// SynchronizeInstanceName writes name into the backing object's name field
// so that object identity inside the simulation matches object identity in
// the federation. A creating federate tags the instance with its federation
// name; a discovering federate clears it to the empty string and lets the
// discovered data fill it in at runtime.
func (d *DataSpace) SynchronizeInstanceName(simObjectPath, name string) {
	d.Set(InstanceNamePath(simObjectPath), name)
}

// InstanceName reads back the self-reported name of an object.
func (d *DataSpace) InstanceName(simObjectPath string) string {
	return d.GetString(InstanceNamePath(simObjectPath))
}
