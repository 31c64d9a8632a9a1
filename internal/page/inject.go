package page

import "strings"

const (
	HeaderPlaceholder = "{{HEADER}}"
	FooterPlaceholder = "{{FOOTER}}"
)

// Injector подставляет общие шаблоны шапки и подвала
type Injector struct {
	header string
	footer string
}

func NewInjector(header, footer string) *Injector {
	return &Injector{header: header, footer: footer}
}

func HasPlaceholders(content string) bool {
	return strings.Contains(content, HeaderPlaceholder) || strings.Contains(content, FooterPlaceholder)
}

// Inject заменяет все вхождения плейсхолдеров; false, если их не было
func (i *Injector) Inject(content string) (string, bool) {
	if !HasPlaceholders(content) {
		return content, false
	}
	content = strings.ReplaceAll(content, HeaderPlaceholder, i.header)
	content = strings.ReplaceAll(content, FooterPlaceholder, i.footer)
	return content, true
}
