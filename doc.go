/*
Package jsonast parses a JSON-like textual grammar into an abstract
syntax tree annotated with source byte offsets, rather than a decoded
value tree. Every token and AST node carries the half-open [start, end)
byte span it occupies in the input, and every literal keeps its raw
source lexeme: string escapes are not decoded and numbers are not
converted, so `"a\tb"` and `.456e+9` survive byte-for-byte.

Parse is the single entry point:

	program, err := jsonast.Parse([]byte(`{"name": "jsonast", "tags": [1, 2]}`))
	if err != nil {
		// handle error
	}
	obj := program.Body.(*ast.ObjectLiteral)
	start, end := obj.Properties[0].Span()

The grammar is close to JSON with deliberate differences: object keys
may be unquoted numbers (`{1: []}`), numbers may start with a bare
fraction (`.5`), exponents require an explicit sign (`1e+5`, never
`1e5`), and input remaining after the first complete value is ignored
rather than rejected.

Nesting depth is capped (configurable with MaxDepth) so pathologically
nested input fails with an error instead of exhausting the stack.
*/
package jsonast
