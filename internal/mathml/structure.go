package mathml

import "strings"

// checkStructure rejects input treeblood would render partially: unbalanced
// groups, scripts without an argument, a trailing backslash and unmatched
// \left / \right.
func checkStructure(src string) error {
	var groups []int
	var fences []int
	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case '\\':
			if i+1 >= len(src) {
				return &ParseError{Pos: i, Msg: `unexpected end of input after '\'`}
			}
			j := i + 1
			for j < len(src) && isASCIILetter(src[j]) {
				j++
			}
			if j == i+1 {
				// \{, \}, \\ and friends are single escaped characters.
				i++
				continue
			}
			switch src[i+1 : j] {
			case "left":
				fences = append(fences, i)
			case "right":
				if len(fences) == 0 {
					return &ParseError{Pos: i, Msg: `unexpected \right`}
				}
				fences = fences[:len(fences)-1]
			}
			i = j - 1
		case '{':
			groups = append(groups, i)
		case '}':
			if len(groups) == 0 {
				return &ParseError{Pos: i, Msg: "unexpected '}'"}
			}
			groups = groups[:len(groups)-1]
		case '^', '_':
			rest := strings.TrimLeft(src[i+1:], " \t\r\n")
			if rest == "" || rest[0] == '}' || rest[0] == '^' || rest[0] == '_' {
				return &ParseError{Pos: i, Msg: "expected argument for '" + string(c) + "'"}
			}
		}
	}
	if len(groups) > 0 {
		return &ParseError{Pos: groups[len(groups)-1], Msg: "missing closing brace"}
	}
	if len(fences) > 0 {
		return &ParseError{Pos: fences[len(fences)-1], Msg: `missing \right`}
	}
	return nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
