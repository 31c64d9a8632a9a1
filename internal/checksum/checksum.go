package checksum

import (
	"crypto/sha256"
	"fmt"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// ContentHash SHA256 содержимого страницы в hex
func (g *Generator) ContentHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x", hash)
}

// Changed true, если преобразование изменило содержимое
func (g *Generator) Changed(before, after string) bool {
	return before != after
}
