package model

// Condition is one entry of a vehicle's conditions array. The payload shape
// is caller-defined; the service only guarantees the generated "id" key.
type Condition map[string]any

// ConditionIDKey is the key under which the generated identifier is stored.
const ConditionIDKey = "id"

// ID returns the generated identifier, or "" when absent.
func (c Condition) ID() string {
	s, _ := c[ConditionIDKey].(string)
	return s
}
