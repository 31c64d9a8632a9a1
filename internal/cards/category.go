package cards

import "strings"

const (
	unknownIcon  = "📄"
	unknownLabel = "Article"
)

type Category struct {
	Key   string `yaml:"key"`
	Icon  string `yaml:"icon"`
	Label string `yaml:"label"`
}

// CategoryTable неизменяемое отображение категорий на (иконка, подпись)
type CategoryTable struct {
	order   []string
	byKey   map[string]Category
	byLabel map[string]string
	byIcon  map[string]string
}

func NewCategoryTable(categories []Category) *CategoryTable {
	t := &CategoryTable{
		byKey:   make(map[string]Category, len(categories)),
		byLabel: make(map[string]string, len(categories)),
		byIcon:  make(map[string]string, len(categories)),
	}
	for _, c := range categories {
		if _, dup := t.byKey[c.Key]; dup {
			continue
		}
		t.order = append(t.order, c.Key)
		t.byKey[c.Key] = c
		t.byLabel[c.Label] = c.Key
		t.byIcon[c.Icon] = c.Key
	}
	return t
}

func DefaultCategories() []Category {
	return []Category{
		{Key: "understand", Icon: "🎓", Label: "Understand SAP EWM"},
		{Key: "around", Icon: "📊", Label: "Around SAP EWM"},
		{Key: "work", Icon: "💼", Label: "Working as a SAP EWM Consultant"},
		{Key: "enhance", Icon: "🔧", Label: "Enhance SAP EWM"},
		{Key: "reveal", Icon: "🔍", Label: "Reveal SAP EWM"},
		{Key: "mfs", Icon: "🏗️", Label: "Discover SAP EWM MFS"},
	}
}

// Lookup возвращает категорию; для неизвестного ключа — иконка по умолчанию и сам ключ как подпись
func (t *CategoryTable) Lookup(key string) (Category, bool) {
	if c, ok := t.byKey[key]; ok {
		return c, true
	}
	return Category{Key: key, Icon: unknownIcon, Label: key}, false
}

// Keys в порядке конфигурации
func (t *CategoryTable) Keys() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Resolve определяет категорию карточки: по подписи тега, по папке в href, по иконке
func (t *CategoryTable) Resolve(tag, href, icon string) string {
	if key, ok := t.byLabel[strings.TrimSpace(tag)]; ok {
		return key
	}
	for _, segment := range strings.Split(strings.Trim(href, "/"), "/") {
		if _, ok := t.byKey[segment]; ok {
			return segment
		}
	}
	if key, ok := t.byIcon[strings.TrimSpace(icon)]; ok {
		return key
	}
	return ""
}

// HrefFolder имя каталога, в котором лежит статья; "" для файла без каталога
func HrefFolder(href string) string {
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		href = href[:i]
	}
	href = strings.Trim(href, "/")
	i := strings.LastIndex(href, "/")
	if i < 0 {
		return ""
	}
	dir := href[:i]
	return dir[strings.LastIndex(dir, "/")+1:]
}

// Label подпись для ключа: из таблицы, иначе сам ключ, для пустого ключа нейтральная
func (t *CategoryTable) Label(key string) string {
	if key == "" {
		return unknownLabel
	}
	cat, _ := t.Lookup(key)
	return cat.Label
}
