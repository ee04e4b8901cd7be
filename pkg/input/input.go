// Package input reads the numbers to factorize from a text file, one per line.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/factors/pkg/domain"
)

// ReadFile parses every line of the file at path.
// It returns domain.ErrFileNotFound when path is not an existing regular file.
// The whole file is parsed before returning, so a bad line yields no numbers at all.
func ReadFile(path string) ([]int64, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrFileNotFound)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads r line by line, trims surrounding whitespace and parses each line
// as a base-10 integer. Blank lines are invalid.
func Parse(r io.Reader) ([]int64, error) {
	var numbers []int64

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		n, err := ParseLine(text)
		if err != nil {
			return nil, &domain.ParseError{Line: line, Text: text, Err: err}
		}
		numbers = append(numbers, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return numbers, nil
}

// ParseLine parses a single trimmed value.
func ParseLine(text string) (int64, error) {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidNumber
	}
	if n < 0 {
		return 0, domain.ErrNegativeNumber
	}
	return n, nil
}
