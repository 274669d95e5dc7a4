package design

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/ramisn26/AI-Architect/pkg/errors"
)

// WriteDesign encodes a design as JSON and writes it to w.
// The output uses 2-space indentation and preserves non-ASCII characters
// unescaped. This format can be re-read with [ReadDesign] for round-trip
// processing.
func WriteDesign(d *ArchitecturalDesign, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(errors.ErrCodeSerialize, err, "encode design")
	}
	return nil
}

// ReadDesign decodes a JSON design from r.
//
// The decoded input record is re-normalized so that derived fields (the
// typed bedroom count) are consistent with their string encodings even for
// hand-written documents. Malformed JSON or inconsistent fields surface as
// SERIALIZE_ERROR / INVALID_* coded errors.
func ReadDesign(r io.Reader) (*ArchitecturalDesign, error) {
	var d ArchitecturalDesign
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSerialize, err, "decode design")
	}
	if err := d.Input.Normalize(); err != nil {
		return nil, err
	}
	return &d, nil
}

// MarshalDesign serializes a design to indented JSON bytes.
func MarshalDesign(d *ArchitecturalDesign) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteDesign(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalDesign deserializes JSON bytes to a design.
func UnmarshalDesign(data []byte) (*ArchitecturalDesign, error) {
	return ReadDesign(bytes.NewReader(data))
}

// WriteFloorPlan encodes a floor plan as JSON and writes it to w, using the
// same encoding conventions as [WriteDesign].
func WriteFloorPlan(fp *FloorPlan, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(fp); err != nil {
		return errors.Wrap(errors.ErrCodeSerialize, err, "encode floor plan")
	}
	return nil
}

// ReadFloorPlan decodes a JSON floor plan from r.
func ReadFloorPlan(r io.Reader) (*FloorPlan, error) {
	var fp FloorPlan
	if err := json.NewDecoder(r).Decode(&fp); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSerialize, err, "decode floor plan")
	}
	return &fp, nil
}

// MarshalFloorPlan serializes a floor plan to indented JSON bytes.
func MarshalFloorPlan(fp *FloorPlan) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteFloorPlan(fp, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalFloorPlan deserializes JSON bytes to a floor plan.
func UnmarshalFloorPlan(data []byte) (*FloorPlan, error) {
	return ReadFloorPlan(bytes.NewReader(data))
}
