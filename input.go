package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// readInput returns the whole of the named file, or of stdin when name is
// empty or "-".
func readInput(stdin io.Reader, name string) (string, error) {
	r := stdin
	if name != "" && name != "-" {
		file, err := os.Open(name)
		if err != nil {
			return "", errors.Wrap(err, "opening input")
		}
		defer file.Close()
		r = file
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "reading input")
	}
	return string(b), nil
}

// splitSections splits text at its first blank line. Without one, all of
// text is the first section.
func splitSections(text string) (head, tail string) {
	offset := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		offset += len(line)
		if strings.TrimSpace(line) == "" {
			return text[:offset], text[offset:]
		}
	}
	return text, ""
}

// parseIDs reads one identifier per line, skipping lines that are blank or
// not a base-10 uint64.
func parseIDs(text string) []uint64 {
	var ids []uint64
	s := bufio.NewScanner(strings.NewReader(text))
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		id, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
