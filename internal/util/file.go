package util

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadIntFromFile reads a single integer value from a sysfs attribute file.
// Attribute files hold one value per read, so only the first line is parsed.
func ReadIntFromFile(path string) (value int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return -1, err
	}
	text := string(data)
	if len(text) <= 0 {
		return -1, fmt.Errorf("file is empty: %s", path)
	}
	firstLine, _, _ := strings.Cut(text, "\n")
	value, err = strconv.Atoi(strings.TrimSpace(firstLine))
	if err != nil {
		return -1, fmt.Errorf("parsing %s: %w", path, err)
	}
	return value, nil
}

// WriteIntToFile writes the decimal representation of value, terminated by a
// newline, to a sysfs attribute file. Exactly the formatted bytes are
// written; the kernel rejects anything with trailing garbage.
func WriteIntToFile(value int, path string) error {
	valueAsString := fmt.Sprintf("%d\n", value)
	return os.WriteFile(path, []byte(valueAsString), 0644)
}

// ReadFirstLine reads the first line of the given file with surrounding
// whitespace trimmed.
func ReadFirstLine(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	firstLine, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(firstLine), nil
}
