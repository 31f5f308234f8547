// Package validator provides small declarative validation rules.
//
// A Rule couples a Check function with translation-friendly error metadata.
// Apply evaluates a list of rules and aggregates failures into
// ValidationErrors, which implements error and matches ErrValidationFailed
// through errors.Is.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("url", u),
//	    validator.ValidURLWithScheme("url", u, []string{"http", "https"}),
//	    validator.MaxLenString("secret_key", s, 1024),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Map() -> {"url": ["..."]}
//	}
package validator
