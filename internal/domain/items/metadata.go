package items

import (
	"fmt"
	"strconv"
)

// Metadata provides type-safe access to parsed definition tag values.
// Definition files are parsed once at load time; combat code only ever
// sees the typed records built from this.
type Metadata map[string]interface{}

// GetString retrieves a string value from metadata
func (m Metadata) GetString(key string) (string, error) {
	if m == nil {
		return "", fmt.Errorf("metadata is nil")
	}

	value, exists := m[key]
	if !exists {
		return "", fmt.Errorf("key %q not found", key)
	}

	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("key %q is not a string (got %T)", key, value)
	}

	return str, nil
}

// GetStringOrDefault retrieves a string value or returns the default
func (m Metadata) GetStringOrDefault(key, defaultValue string) string {
	str, err := m.GetString(key)
	if err != nil {
		return defaultValue
	}
	return str
}

// GetInt retrieves an int value from metadata
func (m Metadata) GetInt(key string) (int, error) {
	if m == nil {
		return 0, fmt.Errorf("metadata is nil")
	}

	value, exists := m[key]
	if !exists {
		return 0, fmt.Errorf("key %q not found", key)
	}

	// Handle the numeric types YAML decoding produces
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		return strconv.Atoi(v)
	default:
		return 0, fmt.Errorf("key %q cannot be converted to int (got %T)", key, value)
	}
}

// GetIntOrDefault retrieves an int value or returns the default
func (m Metadata) GetIntOrDefault(key string, defaultValue int) int {
	val, err := m.GetInt(key)
	if err != nil {
		return defaultValue
	}
	return val
}

// GetBool retrieves a bool value from metadata
func (m Metadata) GetBool(key string) (bool, error) {
	if m == nil {
		return false, fmt.Errorf("metadata is nil")
	}

	value, exists := m[key]
	if !exists {
		return false, fmt.Errorf("key %q not found", key)
	}

	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("key %q is not a bool (got %T)", key, value)
	}

	return b, nil
}

// GetBoolOrDefault retrieves a bool value or returns the default
func (m Metadata) GetBoolOrDefault(key string, defaultValue bool) bool {
	val, err := m.GetBool(key)
	if err != nil {
		return defaultValue
	}
	return val
}

// Has checks if a key exists in metadata
func (m Metadata) Has(key string) bool {
	if m == nil {
		return false
	}
	_, exists := m[key]
	return exists
}

// StatePairs retrieves repeated (state id, chance) entries from metadata.
// Entries that are not maps, or whose id is missing or non-positive, are
// skipped rather than failing the whole definition.
func (m Metadata) StatePairs(key string) []StateChance {
	if m == nil {
		return nil
	}

	value, exists := m[key]
	if !exists {
		return nil
	}

	entries, ok := value.([]interface{})
	if !ok {
		return nil
	}

	var pairs []StateChance
	for _, entry := range entries {
		raw, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}

		pair := Metadata(raw)
		stateID := pair.GetIntOrDefault("id", 0)
		if stateID <= 0 {
			continue
		}

		pairs = append(pairs, StateChance{
			StateID: stateID,
			Chance:  pair.GetIntOrDefault("chance", 0),
		})
	}

	return pairs
}
