package cards

import "strings"

// attr атрибут стартового тега; ValueStart/ValueEnd — смещения значения внутри исходного текста
type attr struct {
	Name       string
	Value      string
	ValueStart int
	ValueEnd   int
	Quote      byte
}

type startTag struct {
	Start int
	End   int // позиция после '>'
	Attrs []attr
}

func (t startTag) get(name string) (attr, bool) {
	for _, a := range t.Attrs {
		if a.Name == name {
			return a, true
		}
	}
	return attr{}, false
}

// asciiLower понижает только A-Z, поэтому смещения совпадают с исходной строкой
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// findAnchor ищет следующий "<a" с пробелом или '>' после имени
func findAnchor(lower string, from int) int {
	for from < len(lower) {
		i := strings.Index(lower[from:], "<a")
		if i < 0 {
			return -1
		}
		i += from
		next := i + 2
		if next < len(lower) && (isSpace(lower[next]) || lower[next] == '>') {
			return i
		}
		from = next
	}
	return -1
}

// findAnchorClose возвращает позицию после ближайшего "</a>" (допускается "</a >")
func findAnchorClose(lower string, from int) int {
	for from < len(lower) {
		i := strings.Index(lower[from:], "</a")
		if i < 0 {
			return -1
		}
		j := i + from + 3
		for j < len(lower) && isSpace(lower[j]) {
			j++
		}
		if j < len(lower) && lower[j] == '>' {
			return j + 1
		}
		from = i + from + 3
	}
	return -1
}

// parseStartTag разбирает тег, начинающийся в s[start] ('<'). ok=false, если тег не закрыт.
func parseStartTag(s string, start int) (startTag, bool) {
	tag := startTag{Start: start}
	i := start + 1
	for i < len(s) && !isSpace(s[i]) && s[i] != '>' && s[i] != '/' {
		i++
	}

	for i < len(s) {
		for i < len(s) && (isSpace(s[i]) || s[i] == '/') {
			i++
		}
		if i >= len(s) {
			return tag, false
		}
		if s[i] == '>' {
			tag.End = i + 1
			return tag, true
		}

		nameStart := i
		for i < len(s) && !isSpace(s[i]) && s[i] != '=' && s[i] != '>' && s[i] != '/' {
			i++
		}
		a := attr{Name: asciiLower(s[nameStart:i]), ValueStart: i, ValueEnd: i}

		j := i
		for j < len(s) && isSpace(s[j]) {
			j++
		}
		if j < len(s) && s[j] == '=' {
			j++
			for j < len(s) && isSpace(s[j]) {
				j++
			}
			if j >= len(s) {
				return tag, false
			}
			if q := s[j]; q == '"' || q == '\'' {
				end := strings.IndexByte(s[j+1:], q)
				if end < 0 {
					return tag, false
				}
				a.Quote = q
				a.ValueStart = j + 1
				a.ValueEnd = j + 1 + end
				i = a.ValueEnd + 1
			} else {
				a.ValueStart = j
				for j < len(s) && !isSpace(s[j]) && s[j] != '>' {
					j++
				}
				a.ValueEnd = j
				i = j
			}
			a.Value = s[a.ValueStart:a.ValueEnd]
		}
		tag.Attrs = append(tag.Attrs, a)
	}
	return tag, false
}

func hasToken(classValue, token string) bool {
	for _, t := range strings.Fields(classValue) {
		if t == token {
			return true
		}
	}
	return false
}

func addToken(classValue, token string) string {
	if hasToken(classValue, token) {
		return classValue
	}
	if strings.TrimSpace(classValue) == "" {
		return token
	}
	return classValue + " " + token
}

func removeToken(classValue, token string) string {
	fields := strings.Fields(classValue)
	out := fields[:0]
	for _, t := range fields {
		if t != token {
			out = append(out, t)
		}
	}
	return strings.Join(out, " ")
}
