package model

// Vehicle is the document stored in the "vehicles" collection. The record is
// created by the mobile client out of band, so beyond the fields this service
// owns (conditions, documents) its shape is free-form; everything else is
// collected into Fields via bson inline decoding and surfaced flattened.
type Vehicle struct {
	ID         string         `bson:"_id" json:"vehicleId"`
	Conditions []Condition    `bson:"conditions,omitempty" json:"conditions"`
	Documents  []Document     `bson:"documents,omitempty" json:"documents,omitempty"`
	Fields     map[string]any `bson:",inline" json:"-"`
}

// Flatten merges the free-form fields and the owned fields into one object
// for client consumption. The conditions key is always present, defaulting to
// an empty array when the document carries none.
func (v *Vehicle) Flatten() map[string]any {
	out := make(map[string]any, len(v.Fields)+3)
	for k, val := range v.Fields {
		out[k] = val
	}
	out["vehicleId"] = v.ID
	if v.Conditions != nil {
		out["conditions"] = v.Conditions
	} else {
		out["conditions"] = []Condition{}
	}
	if len(v.Documents) > 0 {
		out["documents"] = v.Documents
	}
	return out
}
