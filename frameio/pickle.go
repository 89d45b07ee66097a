package frameio

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"berkotech.co/datawrangling/frame"
)

// ToPickle writes a frame as a gob stream. ReadPickle restores it exactly:
// index labels and names, column names and labels, kinds and nulls.
func ToPickle(w io.Writer, f *frame.Frame) error {
	if err := gob.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	return nil
}

func ReadPickle(r io.Reader) (*frame.Frame, error) {
	f := new(frame.Frame)
	if err := gob.NewDecoder(r).Decode(f); err != nil {
		return nil, fmt.Errorf("failed to decode frame: %w", err)
	}
	return f, nil
}

func SeriesToPickle(w io.Writer, s *frame.Series) error {
	if err := gob.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("failed to encode series: %w", err)
	}
	return nil
}

func ReadSeriesPickle(r io.Reader) (*frame.Series, error) {
	s := new(frame.Series)
	if err := gob.NewDecoder(r).Decode(s); err != nil {
		return nil, fmt.Errorf("failed to decode series: %w", err)
	}
	return s, nil
}

// SavePickle writes the frame to a file.
func SavePickle(path string, f *frame.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := ToPickle(file, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// ReadPicklePath reads a frame saved with SavePickle.
func ReadPicklePath(path string) (*frame.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()
	return ReadPickle(file)
}
