package storage

import "errors"

// ErrNotFound файл отсутствует
var ErrNotFound = errors.New("file not found")

// Repository интерфейс для работы с файлами сайта
type Repository interface {
	// Read читает файл целиком
	Read(path string) (string, error)

	// Write записывает содержимое атомарно: временный файл + rename
	Write(path, content string) error

	// Exists проверяет наличие файла
	Exists(path string) (bool, error)

	// Discover находит все *.html под root, пропуская каталоги из exclude
	Discover(root string, exclude []string) ([]string, error)
}
