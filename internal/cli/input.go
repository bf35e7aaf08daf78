package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// readLine prompts and returns one trimmed line. On exhausted input it marks
// the menu done so the outer loop can stop instead of re-prompting forever.
func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		m.eof = true
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) readInt(prompt string) (int, error) {
	s, err := m.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return n, nil
}

func (m *Menu) readFloat(prompt string) (float64, error) {
	s, err := m.readLine(prompt)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return f, nil
}

// readChoice reads a menu selection between 1 and max inclusive.
func (m *Menu) readChoice(prompt string, max int) (int, error) {
	n, err := m.readInt(prompt)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > max {
		return 0, fmt.Errorf("choose between 1 and %d", max)
	}
	return n, nil
}
