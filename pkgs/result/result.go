package result

// ParseResult is returned by every parsing operation. MathML is empty when
// no markup was produced. A result may carry MathML and errors at the same
// time, so success is decided by IsSuccess, not by MathML alone.
type ParseResult struct {
	MathML   string
	Errors   []Error
	Warnings []Warning
}

// Success wraps MathML with no diagnostics.
func Success(mathml string) ParseResult {
	return ParseResult{MathML: mathml}
}

// Failure carries a single error and no MathML.
func Failure(err Error) ParseResult {
	return ParseResult{Errors: []Error{err}}
}

// Partial is a success that carries warnings.
func Partial(mathml string, warnings []Warning) ParseResult {
	return ParseResult{MathML: mathml, Warnings: warnings}
}

// Incomplete assembles a result from aggregated pieces.
func Incomplete(mathml string, errs []Error, warnings []Warning) ParseResult {
	return ParseResult{MathML: mathml, Errors: errs, Warnings: warnings}
}

// HasMathML reports whether any MathML was produced.
func (r ParseResult) HasMathML() bool { return r.MathML != "" }

// IsSuccess reports whether MathML is present and no errors were recorded.
func (r ParseResult) IsSuccess() bool {
	return r.MathML != "" && len(r.Errors) == 0
}

// HasWarnings reports whether any warnings were recorded.
func (r ParseResult) HasWarnings() bool { return len(r.Warnings) > 0 }

// FirstError returns the first recorded error, or nil.
func (r ParseResult) FirstError() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return r.Errors[0]
}
