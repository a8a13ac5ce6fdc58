package sections

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Literal encodes v as a JSON value, which is also a valid TypeScript
// expression. HTML-significant characters are escaped (<, >, &)
// so no value can close a surrounding JSX element, and quotes, backslashes and
// line separators are escaped so it cannot leave its string literal. Decoding the
// output with encoding/json yields v again.
func Literal(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Expression wraps Literal in braces for JSX child and attribute positions.
func Expression(v any) (string, error) {
	lit, err := Literal(v)
	if err != nil {
		return "", err
	}
	return "{" + lit + "}", nil
}
