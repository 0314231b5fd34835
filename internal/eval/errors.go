package eval

import "fmt"

// undefinedVariable builds the "Variable NAME not defined" runtime error.
// Note the absent trailing period: only this message and divisionByZero's
// lack one.
func undefinedVariable(name string) error {
	return fmt.Errorf("Error: Variable %s not defined", name)
}

// redefined builds the "Redefining NAME is not allowed." runtime error for
// a second `define` of the same name within one frame.
func redefined(name string) error {
	return fmt.Errorf("Error: Redefining %s is not allowed.", name)
}

func divisionByZero() error {
	return fmt.Errorf("Error: Division by zero")
}

// typeError builds the `Type Error: Expect 'want' but got 'got'.` message;
// want/got are drawn from object.TypeName's vocabulary.
func typeError(want, got string) error {
	return fmt.Errorf("Type Error: Expect '%s' but got '%s'.", want, got)
}

func needExactly(n, got int) error {
	return fmt.Errorf("Error: Need %d arguments, but got %d.", n, got)
}

func needAtLeast(n, got int) error {
	return fmt.Errorf("Error: Need at least %d arguments, but got %d.", n, got)
}

func needOne(got int) error {
	return fmt.Errorf("Error: Need 1 argument, but got %d.", got)
}

// userArity builds the user-function arity mismatch message. Unlike every
// other runtime error, this one carries no "Error:" prefix.
func userArity(n, got int) error {
	return fmt.Errorf("Need %d arguments, but got %d.", n, got)
}
