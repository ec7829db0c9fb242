package validate

// FieldError describes a single invalid field in a request body.
// Nested fields use dotted paths, e.g. "physical.height".
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// Rule checks one field and returns a message if it is invalid
type Rule struct {
	Field string
	Check func() string
}

// Apply runs every rule and collects the failures
func Apply(rules []Rule) []FieldError {
	var errs []FieldError
	for _, r := range rules {
		if msg := r.Check(); msg != "" {
			errs = append(errs, FieldError{Field: r.Field, Msg: msg})
		}
	}
	return errs
}
