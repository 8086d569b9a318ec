package buildcode

import (
	"fmt"
	"strings"
)

// runWins reports whether a run token (value~count) beats writing count
// separator-joined copies of the value. The run form carries a fixed
// overhead of one marker plus the count, so it only pays off past a
// length-dependent threshold. Ties go to the run form only for the empty
// value, where the run is also order-independent.
func runWins(valueLen, count int) bool {
	plain := valueLen*count + (count - 1)
	run := valueLen + 1 + len(encode62(count))
	if valueLen == 0 {
		return run <= plain
	}
	return run < plain
}

// compressValues turns a sequence of literal value strings into the token
// strings the grammar joins with a separator. Maximal runs of an identical
// value become value~count when that is shorter, bare ~count for the empty
// value.
func compressValues(values []string) []string {
	var tokens []string
	for i := 0; i < len(values); {
		j := i + 1
		for j < len(values) && values[j] == values[i] {
			j++
		}
		tokens = appendRun(tokens, values[i], j-i)
		i = j
	}
	return tokens
}

// appendRun emits one maximal run as either a single run token or count
// literal copies, whichever is shorter.
func appendRun(tokens []string, value string, count int) []string {
	if count > 1 && runWins(len(value), count) {
		return append(tokens, value+string(runMark)+encode62(count))
	}
	for k := 0; k < count; k++ {
		tokens = append(tokens, value)
	}
	return tokens
}

// expandTokens is the exact inverse of compressValues over already-split
// token strings. Run counts below two are never emitted and are rejected.
func expandTokens(tokens []string) ([]string, error) {
	var values []string
	for _, tok := range tokens {
		idx := strings.IndexByte(tok, runMark)
		if idx < 0 {
			values = append(values, tok)
			continue
		}
		value := tok[:idx]
		count, err := decode62(tok[idx+1:])
		if err != nil {
			return nil, err
		}
		if count < 2 {
			return nil, fmt.Errorf("%w: run count %d in token %q", ErrCountMismatch, count, tok)
		}
		for k := 0; k < count; k++ {
			values = append(values, value)
		}
	}
	return values, nil
}
