package config

// SecretStringValue must be exported - used in tests.
const SecretStringValue = "<secret>"

// SecretString should be used for values that must not be visible in logs or
// configuration dumps, such as the API token.
type SecretString string

// String redacts the actual value so accidental formatting stays safe.
func (s SecretString) String() string {
	if len(s) == 0 {
		return ""
	}
	return SecretStringValue
}

// Reveal returns the actual value.
func (s SecretString) Reveal() string {
	return string(s)
}

// MarshalYAML marshals SecretString to YAML making sure that actual value is not visible.
func (s SecretString) MarshalYAML() (any, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return SecretStringValue, nil
}
