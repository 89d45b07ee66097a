package frameio

import (
	"fmt"
	"strconv"
	"strings"

	"berkotech.co/datawrangling/frame"
)

func sentinelSet(values []string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

// inferColumn decides the kind of a whole column at once: numeric when
// every non-null token parses as a float, boolean when every token is
// true/false, text otherwise.
func inferColumn(tokens []string, na map[string]bool) []interface{} {
	out := make([]interface{}, len(tokens))
	isNull := make([]bool, len(tokens))
	numeric, boolean := true, true
	nums := make([]float64, len(tokens))
	for i, tok := range tokens {
		t := strings.TrimSpace(tok)
		if na[tok] || na[t] {
			isNull[i] = true
			continue
		}
		if numeric {
			f, err := strconv.ParseFloat(t, 64)
			if err != nil {
				numeric = false
			}
			nums[i] = f
		}
		if boolean && !strings.EqualFold(t, "true") && !strings.EqualFold(t, "false") {
			boolean = false
		}
	}
	for i, tok := range tokens {
		switch {
		case isNull[i]:
			out[i] = nil
		case numeric:
			out[i] = nums[i]
		case boolean:
			out[i] = strings.EqualFold(strings.TrimSpace(tok), "true")
		default:
			out[i] = tok
		}
	}
	return out
}

// uniqueHeader fills empty names and suffixes repeats with .1, .2, ...
func uniqueHeader(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, ok := seen[name]; ok {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		} else {
			seen[name] = 0
		}
		out[i] = name
	}
	return out
}

func numberedHeader(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}

// buildFrame turns a rectangular token grid into a frame with inferred
// column kinds.
func buildFrame(header []string, records [][]string, cfg *Config) (*frame.Frame, error) {
	header = uniqueHeader(header)
	for r, rec := range records {
		if len(rec) != len(header) {
			return nil, &frame.ParseError{Row: r, Err: fmt.Errorf("expected %d fields, got %d", len(header), len(rec))}
		}
	}
	global := sentinelSet(cfg.NAValues)
	specs := make([]frame.ColumnSpec, len(header))
	tokens := make([]string, len(records))
	for c, name := range header {
		for r, rec := range records {
			tokens[r] = rec[c]
		}
		na := global
		if extra, ok := cfg.ColumnNAValues[name]; ok {
			na = sentinelSet(append(append([]string(nil), cfg.NAValues...), extra...))
		}
		specs[c] = frame.Col(name, inferColumn(tokens, na)...)
	}
	f, err := frame.New(specs...)
	if err != nil {
		return nil, err
	}
	if cfg.IndexColumn != "" {
		return f.SetIndex([]string{cfg.IndexColumn}, true)
	}
	return f, nil
}
