package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sitebuild/internal/cards"
)

type categoriesFile struct {
	Categories []cards.Category `yaml:"categories"`
}

// LoadCategories загружает таблицу категорий из отдельного YAML файла
func LoadCategories(filePath string) ([]cards.Category, error) {
	if filePath == "" {
		return nil, fmt.Errorf("categories file path is empty")
	}

	if _, err := os.Stat(filePath); err != nil {
		return nil, fmt.Errorf("categories file not found: %s: %w", filePath, err)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open categories file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close categories file: %v\n", closeErr)
		}
	}()

	var parsed categoriesFile
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse categories YAML: %w", err)
	}

	if err := validateCategories(parsed.Categories); err != nil {
		return nil, err
	}

	return parsed.Categories, nil
}

func validateCategories(categories []cards.Category) error {
	if len(categories) == 0 {
		return fmt.Errorf("categories list is required")
	}
	for i, c := range categories {
		if c.Key == "" {
			return fmt.Errorf("categories[%d].key is required", i)
		}
		if c.Icon == "" {
			return fmt.Errorf("categories[%d].icon is required", i)
		}
		if c.Label == "" {
			return fmt.Errorf("categories[%d].label is required", i)
		}
	}
	return nil
}
