package parser

import (
	"fmt"
	"strings"
)

// ParseTags parses the output of `git for-each-ref refs/tags` invoked with
// TagListFormat. Empty stdout means no tags exist.
func ParseTags(stdout string) ([]TagRecord, error) {
	records := []TagRecord{}
	for _, line := range strings.Split(stdout, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, fieldSeparator)
		if len(fields) != tagFieldCount {
			return nil, fmt.Errorf("%w: expected %d tag fields, got %d in line %q",
				ErrUnparseableOutput, tagFieldCount, len(fields), line)
		}
		if fields[0] == "" || fields[1] == "" {
			return nil, fmt.Errorf("%w: empty tag field in line %q", ErrUnparseableOutput, line)
		}

		records = append(records, TagRecord{
			Name:   fields[0],
			Target: fields[1],
		})
	}
	return records, nil
}
