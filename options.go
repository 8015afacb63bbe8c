package jsonast

import "fmt"

const defaultMaxDepth = 1000

type options struct {
	maxDepth int
}

// Option configures a call to Parse.
type Option func(*options) error

// MaxDepth returns an Option that sets the maximum object/array nesting
// depth for the parser. This helps prevent stack overflows when parsing
// highly nested documents.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("jsonast: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}
