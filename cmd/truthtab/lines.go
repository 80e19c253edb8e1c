package main

import (
	"bufio"
	"io"
	"strings"
)

const (
	lineUndo    = "undo"
	lineRestart = "restart"
)

// readLines collects chained lines. "undo" drops the last line and
// "restart" drops all of them, blank lines are skipped.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		switch line {
		case "":
		case lineUndo:
			if len(lines) > 0 {
				lines = lines[:len(lines)-1]
			}
		case lineRestart:
			lines = lines[:0]
		default:
			lines = append(lines, line)
		}
	}
	return lines, s.Err()
}
