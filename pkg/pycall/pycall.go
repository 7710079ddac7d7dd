// Package pycall recovers shell command strings from python source
// that spawns a subprocess, e.g. os.system("ls -la") or
// subprocess.run(["echo", "hi"]).
//
// Recovery is two-tiered. Source that parses as python is walked as
// a syntax tree and only plain literal arguments are read, which
// keeps the result faithful: variables, f-strings and other computed
// arguments are skipped rather than guessed at. Source that does not
// parse on its own, for example a single physical line of a larger
// statement, falls back to a textual pattern that understands the
// simple quoted call form. The textual tier cannot recover the list
// form.
package pycall

import (
	"context"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// subprocessCalls are the functions of the subprocess module whose
// first argument is the command.
var subprocessCalls = map[string]bool{
	"run":          true,
	"call":         true,
	"Popen":        true,
	"check_call":   true,
	"check_output": true,
}

// Extractor parses python snippets and reads command literals from
// them. It is not safe for concurrent use, create one per
// conversion.
type Extractor struct {
	parser *sitter.Parser
}

// New creates an Extractor with the python grammar loaded.
func New() *Extractor {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())

	return &Extractor{parser: p}
}

// Commands returns the shell commands spawned by the given source,
// in source order. Calls with non-literal arguments yield nothing.
func (e *Extractor) Commands(src string) []string {
	cmds, ok := e.fromTree(src)
	if !ok {
		return fromPattern(src)
	}

	return cmds
}

// fromTree is the structured tier. The second return value is false
// when the source does not parse cleanly and the textual tier should
// take over.
func (e *Extractor) fromTree(src string) ([]string, bool) {
	content := []byte(src)

	tree, err := e.parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, false
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || root.HasError() {
		return nil, false
	}

	cmds := make([]string, 0, 1)
	collect(root, content, &cmds)

	return cmds, true
}

func collect(n *sitter.Node, content []byte, cmds *[]string) {
	if n.Type() == "call" {
		if cmd, ok := commandFromCall(n, content); ok {
			*cmds = append(*cmds, cmd)
		}
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		collect(n.NamedChild(i), content, cmds)
	}
}

// commandFromCall reads the command from a call node, provided the
// callee is os.system or one of the subprocess functions and the
// command argument is a plain literal.
//
// os.system takes the command as a single positional string. The
// subprocess functions also accept the list form and an args=
// keyword, consulted only when no positional argument is there.
func commandFromCall(n *sitter.Node, content []byte) (string, bool) {
	fn := n.ChildByFieldName("function")
	if fn == nil || fn.Type() != "attribute" {
		return "", false
	}

	obj := fn.ChildByFieldName("object")
	attr := fn.ChildByFieldName("attribute")
	if obj == nil || attr == nil {
		return "", false
	}

	module := obj.Content(content)
	name := attr.Content(content)
	args := n.ChildByFieldName("arguments")

	switch {
	case module == "os" && name == "system":
		arg := firstPositional(args)
		if arg == nil {
			return "", false
		}
		return stringValue(arg, content)
	case module == "subprocess" && subprocessCalls[name]:
		arg := firstPositional(args)
		if arg == nil {
			arg = keywordArg(args, content, "args")
		}
		if arg == nil {
			return "", false
		}
		return literal(arg, content)
	}

	return "", false
}

// firstPositional returns the first argument that is not a keyword
// argument, or nil.
func firstPositional(args *sitter.Node) *sitter.Node {
	if args == nil {
		return nil
	}

	for i := 0; i < int(args.NamedChildCount()); i++ {
		c := args.NamedChild(i)
		if c.Type() == "comment" || c.Type() == "keyword_argument" {
			continue
		}
		return c
	}

	return nil
}

// keywordArg returns the value of the named keyword argument, or nil.
func keywordArg(args *sitter.Node, content []byte, name string) *sitter.Node {
	if args == nil {
		return nil
	}

	for i := 0; i < int(args.NamedChildCount()); i++ {
		c := args.NamedChild(i)
		if c.Type() != "keyword_argument" {
			continue
		}

		key := c.ChildByFieldName("name")
		if key != nil && key.Content(content) == name {
			return c.ChildByFieldName("value")
		}
	}

	return nil
}

// literal turns a string node or a list-of-strings node into the
// command text. List elements are joined with single spaces.
// Anything else is rejected.
func literal(n *sitter.Node, content []byte) (string, bool) {
	switch n.Type() {
	case "string":
		return stringValue(n, content)
	case "list":
		parts := make([]string, 0, int(n.NamedChildCount()))
		for i := 0; i < int(n.NamedChildCount()); i++ {
			el := n.NamedChild(i)
			if el.Type() == "comment" {
				continue
			}

			v, ok := stringValue(el, content)
			if !ok {
				return "", false
			}
			parts = append(parts, v)
		}

		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, " "), true
	}

	return "", false
}

// stringValue reads the text of a plain string literal without the
// quotes and prefix characters. Interpolated strings (f"...") are
// rejected, their command depends on runtime values.
func stringValue(n *sitter.Node, content []byte) (string, bool) {
	if n.Type() != "string" {
		return "", false
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		if n.NamedChild(i).Type() == "interpolation" {
			return "", false
		}
	}

	raw := n.Content(content)

	// skip prefixes like r"..." or b'...'
	for len(raw) > 0 && raw[0] != '"' && raw[0] != '\'' {
		if raw[0] == 'f' || raw[0] == 'F' {
			return "", false
		}
		raw = raw[1:]
	}

	for _, q := range []string{`"""`, "'''", `"`, "'"} {
		if len(raw) >= 2*len(q) && strings.HasPrefix(raw, q) && strings.HasSuffix(raw, q) {
			return raw[len(q) : len(raw)-len(q)], true
		}
	}

	return "", false
}

var (
	osSystemPattern   = regexp.MustCompile(`os\.system\(["'](.*?)["']\)`)
	subprocessPattern = regexp.MustCompile(`subprocess\.(run|call|Popen|check_call|check_output)\(["'](.*?)["']\)`)
)

// fromPattern is the textual tier, applied when the source does not
// parse. All os.system matches come first, then the subprocess
// matches.
func fromPattern(src string) []string {
	cmds := make([]string, 0, 1)

	for _, m := range osSystemPattern.FindAllStringSubmatch(src, -1) {
		cmds = append(cmds, m[1])
	}
	for _, m := range subprocessPattern.FindAllStringSubmatch(src, -1) {
		cmds = append(cmds, m[2])
	}

	return cmds
}
