package mdx

// EscapeMathBraces escapes { and } inside $...$ and $$...$$ spans so MDX does
// not read them as expressions. The parser has no grammar for LaTeX math, so
// this is a character scan: a dollar with no matching closer is literal text
// and scanning resumes right after it.
func EscapeMathBraces(content string) string {
	runes := []rune(content)
	out := make([]rune, 0, len(runes))

	i := 0
	for i < len(runes) {
		if runes[i] != '$' {
			out = append(out, runes[i])
			i++
			continue
		}

		display := i+1 < len(runes) && runes[i+1] == '$'
		delimLen := 1
		if display {
			delimLen = 2
		}

		// Find the matching closer of the same style.
		j := i + delimLen
		found := false
		for j < len(runes) {
			if runes[j] == '$' {
				if !display {
					found = true
					break
				}
				if j+1 < len(runes) && runes[j+1] == '$' {
					found = true
					break
				}
			}
			j++
		}

		if !found {
			out = append(out, runes[i])
			i++
			continue
		}

		for k := 0; k < delimLen; k++ {
			out = append(out, '$')
		}
		for k := i + delimLen; k < j; k++ {
			if (runes[k] == '{' || runes[k] == '}') && (k == 0 || runes[k-1] != '\\') {
				out = append(out, '\\')
			}
			out = append(out, runes[k])
		}
		for k := 0; k < delimLen; k++ {
			out = append(out, '$')
		}

		i = j + delimLen
	}

	return string(out)
}
