package assembler

import "strings"

var commentMarkers = []string{"#", "//"}

func stripComment(line string) string {
	cut := len(line)
	for _, marker := range commentMarkers {
		if i := strings.Index(line, marker); i != -1 && i < cut {
			cut = i
		}
	}
	return line[:cut]
}

// cleanLine returns the line with comments and surrounding whitespace removed
func cleanLine(line string) string {
	return strings.TrimSpace(stripComment(line))
}

func tokenize(line string) []string {
	return strings.Fields(strings.ReplaceAll(line, ",", " "))
}

// preprocess classifies every non-empty line of the file as a label definition
// or an instruction. Line numbers are 1-based.
func preprocess(fileContents []string) []sourceLine {
	lines := make([]sourceLine, 0, len(fileContents))
	for i, raw := range fileContents {
		line := cleanLine(raw)
		if len(line) == 0 {
			continue
		}

		if strings.HasSuffix(line, ":") {
			lines = append(lines, sourceLine{
				lineNumber: i + 1,
				label:      strings.TrimSuffix(line, ":"),
				isLabel:    true,
			})
			continue
		}

		lines = append(lines, sourceLine{
			lineNumber: i + 1,
			tokens:     tokenize(line),
		})
	}
	return lines
}
