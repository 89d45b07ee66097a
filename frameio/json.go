package frameio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"berkotech.co/datawrangling/frame"
)

// Orient selects the JSON document layout.
type Orient int

const (
	// Columns is {"column": {"label": value}}. Hierarchical labels nest.
	Columns Orient = iota
	// Records is [{"column": value}, ...] in row order.
	Records
)

func (o Orient) String() string {
	if o == Records {
		return "records"
	}
	return "columns"
}

// ParseOrient maps "columns" and "records" to an Orient.
func ParseOrient(s string) (Orient, error) {
	switch s {
	case "columns", "":
		return Columns, nil
	case "records":
		return Records, nil
	}
	return Columns, fmt.Errorf("unknown JSON orient %q", s)
}

// object is a JSON object with its key order kept.
type object struct {
	keys   []string
	values map[string]json.RawMessage
}

func readObject(dec *json.Decoder) (*object, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}
	obj := &object{values: make(map[string]json.RawMessage)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		if _, dup := obj.values[key]; !dup {
			obj.keys = append(obj.keys, key)
		}
		obj.values[key] = raw
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

// jsonCell turns a raw JSON value into a cell. Arrays and objects are
// kept as compact JSON text.
func jsonCell(raw json.RawMessage) (interface{}, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}
	switch raw[0] {
	case 'n':
		return nil, nil
	case 't', 'f':
		var b bool
		err := json.Unmarshal(raw, &b)
		return b, err
	case '"':
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	case '[', '{':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return nil, err
		}
		return buf.String(), nil
	}
	return strconv.ParseFloat(string(raw), 64)
}

// jsonLabel reads integer-looking keys as numbers so that a frame written
// over the default index reads back over the same labels.
func jsonLabel(key string) interface{} {
	if n, err := strconv.ParseInt(key, 10, 64); err == nil {
		return float64(n)
	}
	return key
}

// ReadJSON reads a top-level array of objects (records) or an object of
// objects (columns). Column order is the order keys are first seen.
func ReadJSON(r io.Reader, opts ...Option) (*frame.Frame, error) {
	cfg := newConfig(opts)
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", frame.ErrParse, err)
	}

	var f *frame.Frame
	switch tok {
	case json.Delim('['):
		f, err = readRecords(dec)
	case json.Delim('{'):
		f, err = readColumns(dec)
	default:
		return nil, fmt.Errorf("%w: JSON document must be an array or an object", frame.ErrParse)
	}
	if err != nil {
		return nil, err
	}
	rows, cols := f.Shape()
	cfg.Logger.V(1).Info("read JSON", "rows", rows, "columns", cols)
	return f, nil
}

func readRecords(dec *json.Decoder) (*frame.Frame, error) {
	var columns []string
	seen := make(map[string]bool)
	var rows []map[string]interface{}
	for i := 0; dec.More(); i++ {
		obj, err := readObject(dec)
		if err != nil {
			return nil, &frame.ParseError{Row: i, Err: err}
		}
		row := make(map[string]interface{}, len(obj.keys))
		for _, k := range obj.keys {
			v, err := jsonCell(obj.values[k])
			if err != nil {
				return nil, &frame.ParseError{Row: i, Err: err}
			}
			row[k] = v
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
		rows = append(rows, row)
	}
	if _, err := dec.Token(); err != nil {
		return nil, &frame.ParseError{Row: len(rows), Err: err}
	}
	if len(columns) == 0 {
		return frame.New()
	}
	return frame.FromRecords(rows, columns...)
}

func readColumns(dec *json.Decoder) (*frame.Frame, error) {
	var names []string
	var cols []*object
	var labels []string
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: column %d: %w", frame.ErrParse, len(names), err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected column name, got %v", frame.ErrParse, tok)
		}
		obj, err := readObject(dec)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q: %w", frame.ErrParse, name, err)
		}
		for _, k := range obj.keys {
			if !seen[k] {
				seen[k] = true
				labels = append(labels, k)
			}
		}
		names = append(names, name)
		cols = append(cols, obj)
	}

	specs := make([]frame.ColumnSpec, len(names))
	for c, obj := range cols {
		vs := make([]interface{}, len(labels))
		for r, l := range labels {
			raw, ok := obj.values[l]
			if !ok {
				continue
			}
			v, err := jsonCell(raw)
			if err != nil {
				return nil, &frame.ParseError{Row: r, Err: err}
			}
			vs[r] = v
		}
		specs[c] = frame.Col(names[c], vs...)
	}
	f, err := frame.New(specs...)
	if err != nil {
		return nil, err
	}
	ls := make([]interface{}, len(labels))
	for i, l := range labels {
		ls[i] = jsonLabel(l)
	}
	return f.WithIndex(ls...)
}

// LoadJSON opens a local path or URL and reads it as a JSON document.
func LoadJSON(ctx context.Context, location string, opts ...Option) (*frame.Frame, error) {
	rc, err := Open(ctx, location, opts...)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ReadJSON(rc, opts...)
}

func marshalCell(v frame.Value) []byte {
	switch v.Kind() {
	case frame.Number:
		x, _ := v.Float()
		if math.IsInf(x, 0) {
			return []byte("null")
		}
		return []byte(strconv.FormatFloat(x, 'g', -1, 64))
	case frame.Text:
		s, _ := v.Text()
		b, _ := json.Marshal(s)
		return b
	case frame.Bool:
		b, _ := v.Bool()
		return []byte(strconv.FormatBool(b))
	}
	return []byte("null")
}

func marshalKey(s string) []byte {
	b, _ := json.Marshal(s)
	return b
}

// node is one level of a nested columns document.
type node struct {
	keys     []string
	children map[string]*node
	cell     []byte
}

func (n *node) insert(path []string, cell []byte) error {
	key := path[0]
	child, ok := n.children[key]
	if !ok {
		child = &node{children: make(map[string]*node)}
		n.children[key] = child
		n.keys = append(n.keys, key)
	}
	if len(path) == 1 {
		if ok {
			return fmt.Errorf("%w: duplicate label %q", frame.ErrKey, key)
		}
		child.cell = cell
		return nil
	}
	return child.insert(path[1:], cell)
}

func (n *node) write(buf *bytes.Buffer) {
	if n.cell != nil {
		buf.Write(n.cell)
		return
	}
	buf.WriteByte('{')
	for i, k := range n.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(marshalKey(k))
		buf.WriteByte(':')
		n.children[k].write(buf)
	}
	buf.WriteByte('}')
}

// ToJSON writes the frame as a JSON document. The columns orientation
// needs a unique index; each index level becomes one level of nesting.
func ToJSON(w io.Writer, f *frame.Frame, orient Orient) error {
	var buf bytes.Buffer
	names := f.Columns()
	rows := f.Values()

	switch orient {
	case Records:
		buf.WriteByte('[')
		for r, row := range rows {
			if r > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('{')
			for c, v := range row {
				if c > 0 {
					buf.WriteByte(',')
				}
				buf.Write(marshalKey(names[c]))
				buf.WriteByte(':')
				buf.Write(marshalCell(v))
			}
			buf.WriteByte('}')
		}
		buf.WriteByte(']')
	default:
		ix := f.Index()
		if !ix.IsUnique() {
			return fmt.Errorf("%w: columns orientation needs a unique index", frame.ErrKey)
		}
		if err := distinctKeys(ix); err != nil {
			return err
		}
		root := &node{children: make(map[string]*node)}
		for c, name := range names {
			col := &node{children: make(map[string]*node)}
			root.children[name] = col
			root.keys = append(root.keys, name)
			for r, row := range rows {
				label := ix.At(r)
				path := make([]string, label.Len())
				for i := range path {
					path[i] = label.Level(i).String()
				}
				if err := col.insert(path, marshalCell(row[c])); err != nil {
					return err
				}
			}
		}
		root.write(&buf)
	}

	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

// distinctKeys rejects an index level where labels of different kinds
// print the same, such as 1 and "1", since both would become one key.
func distinctKeys(ix frame.Index) error {
	for lvl := 0; lvl < ix.Levels(); lvl++ {
		kinds := make(map[string]frame.Kind)
		for _, v := range ix.Level(lvl) {
			key := v.String()
			k, ok := kinds[key]
			if ok && k != v.Kind() {
				return fmt.Errorf("%w: index level %d mixes %s and %s labels that both become the key %q",
					frame.ErrKey, lvl, k, v.Kind(), key)
			}
			kinds[key] = v.Kind()
		}
	}
	return nil
}

// SaveJSON writes the frame to a file.
func SaveJSON(path string, f *frame.Frame, orient Orient) error {
	var buf bytes.Buffer
	if err := ToJSON(&buf, f, orient); err != nil {
		return err
	}
	return writeFile(path, buf.Bytes())
}
