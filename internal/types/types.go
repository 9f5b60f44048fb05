// Package types contains shared type definitions used across the idm_exporter packages.
package types

// ResponseValue is a single (semantic key, value) pair extracted from the heat pump web interface.
type ResponseValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Values is the ordered result of one poll cycle. Later entries with the same key refine earlier ones.
type Values []ResponseValue

// Add appends a pair.
func (v *Values) Add(key, value string) {
	*v = append(*v, ResponseValue{Key: key, Value: value})
}

// Append appends all pairs of other.
func (v *Values) Append(other Values) {
	*v = append(*v, other...)
}

// Latest collapses the list into a map where the last occurrence of a key wins.
func (v Values) Latest() map[string]string {
	m := make(map[string]string, len(v))
	for _, rv := range v {
		m[rv.Key] = rv.Value
	}
	return m
}

// Get returns the last value reported for key.
func (v Values) Get(key string) (string, bool) {
	for i := len(v) - 1; i >= 0; i-- {
		if v[i].Key == key {
			return v[i].Value, true
		}
	}
	return "", false
}
