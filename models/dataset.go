package models

import "bytes"

var emptyDataset = []byte("[]")

// Dataset is the raw observation array fetched from /energyData. Its contents
// are opaque to the viewer; it is only carried between requests.
type Dataset []byte

// ParseDataset wraps the text of the hidden data field. Blank input becomes an
// empty array.
func ParseDataset(s string) Dataset {
	trimmed := bytes.TrimSpace([]byte(s))
	if len(trimmed) == 0 {
		return Dataset(emptyDataset)
	}
	return Dataset(trimmed)
}

// String returns the JSON text sent in the data field.
func (d Dataset) String() string {
	if len(bytes.TrimSpace(d)) == 0 {
		return string(emptyDataset)
	}
	return string(d)
}

// IsEmpty reports whether the dataset holds no observations.
func (d Dataset) IsEmpty() bool {
	s := bytes.TrimSpace(d)
	return len(s) == 0 || bytes.Equal(s, emptyDataset) || bytes.Equal(s, []byte("null"))
}

// MarshalJSON emits the blob verbatim.
func (d Dataset) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalJSON keeps a copy of the raw bytes.
func (d *Dataset) UnmarshalJSON(b []byte) error {
	*d = append((*d)[:0], bytes.TrimSpace(b)...)
	return nil
}
