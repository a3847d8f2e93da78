// SPDX-License-Identifier: MIT

package sequence

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read parses one sequence from r. Lines starting with '>' or ';' (FASTA
// headers and comments) are skipped, whitespace is dropped and symbols are
// upper-cased. Reading stops at the second FASTA header, so only the first
// record of a multi-record file is returned.
func Read(r io.Reader, alpha Alphabet) (Sequence, error) {
	var sb strings.Builder
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<26)
	headers := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			headers++
			if headers > 1 {
				break
			}
			continue
		}
		for _, f := range strings.Fields(line) {
			sb.WriteString(f)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("sequence: read: %w", err)
	}
	if sb.Len() == 0 {
		return nil, ErrEmptyInput
	}

	return New(sb.String(), alpha)
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, alpha Alphabet) (Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sequence: %w", err)
	}
	defer f.Close()

	seq, err := Read(f, alpha)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return seq, nil
}
