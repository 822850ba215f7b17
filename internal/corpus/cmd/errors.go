package cmd

// Exit codes reported by the corpus binary
const (
	ExitSuccess           = 0 // Success
	ExitGeneralError      = 1 // General error
	ExitInvalidParameters = 3 // Invalid parameters
	ExitResourceNotFound  = 4 // Resource not found on the search path
)

// exitCodeError creates an error that will cause the program to exit with the specified code
type exitCodeError struct {
	code int
	err  error
}

func (e exitCodeError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e exitCodeError) ExitCode() int {
	return e.code
}

// exitWithCode returns an error that will cause the program to exit with the specified code
func exitWithCode(code int, err error) error {
	return exitCodeError{code: code, err: err}
}
