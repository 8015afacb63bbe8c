package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/askovholm/jsonast"
	"github.com/askovholm/jsonast/ast"
)

func newParseCmd() *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a document and print its positioned syntax tree",
		Long: `Parse a document and print one line per syntax tree node, showing
the node kind, its [start:end) byte span, and the raw lexeme for
literals.

If no file is provided, the document is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error

			if len(args) == 0 {
				source, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				source, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			program, err := jsonast.Parse(source, jsonast.MaxDepth(maxDepth))
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			dumpNode(cmd.OutOrStdout(), program.Body, 0)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", 1000, "maximum object/array nesting depth")

	return cmd
}

var (
	kindColor   = color.New(color.FgCyan)
	spanColor   = color.New(color.FgHiBlack)
	lexemeColor = color.New(color.FgGreen)
)

func dumpNode(w io.Writer, node ast.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	start, end := node.Span()

	fmt.Fprintf(w, "%s%s %s", indent,
		kindColor.Sprint(nodeKind(node)),
		spanColor.Sprintf("[%d:%d)", start, end))

	switch n := node.(type) {
	case *ast.ObjectLiteral:
		fmt.Fprintln(w)
		for _, prop := range n.Properties {
			dumpNode(w, prop, depth+1)
		}
	case *ast.Property:
		fmt.Fprintf(w, " key=%s %s\n",
			kindColor.Sprint(string(n.Key.Kind)),
			lexemeColor.Sprint(n.Key.Lexeme))
		dumpNode(w, n.Value, depth+1)
	case *ast.ArrayLiteral:
		fmt.Fprintln(w)
		for _, el := range n.Elements {
			dumpNode(w, el, depth+1)
		}
	case *ast.NullLiteral:
		fmt.Fprintln(w)
	default:
		fmt.Fprintf(w, " %s\n", lexemeColor.Sprint(node.String()))
	}
}

func nodeKind(node ast.Node) string {
	switch node.(type) {
	case *ast.ObjectLiteral:
		return "ObjectLiteral"
	case *ast.Property:
		return "Property"
	case *ast.ArrayLiteral:
		return "ArrayLiteral"
	case *ast.StringLiteral:
		return "StringLiteral"
	case *ast.NumericLiteral:
		return "NumericLiteral"
	case *ast.BooleanLiteral:
		return "BooleanLiteral"
	case *ast.NullLiteral:
		return "NullLiteral"
	default:
		return "Unknown"
	}
}
