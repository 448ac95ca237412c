package models

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// XValue is an x coordinate as it arrived on the wire: either an epoch
// timestamp in seconds or a preformatted label such as "24.12".
type XValue struct {
	Label   string
	Epoch   float64
	Numeric bool
}

// String renders the value the way it would appear as a category label.
func (x XValue) String() string {
	if x.Numeric {
		return strconv.FormatFloat(x.Epoch, 'f', -1, 64)
	}
	return x.Label
}

func (x *XValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*x = XValue{Label: s}
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("x value must be a string or number: %w", err)
	}
	*x = XValue{Epoch: f, Numeric: true}
	return nil
}

func (x XValue) MarshalJSON() ([]byte, error) {
	if x.Numeric {
		return json.Marshal(x.Epoch)
	}
	return json.Marshal(x.Label)
}

// Point is one series entry. X is nil for value-only series and Y is nil for
// null entries.
type Point struct {
	X *XValue
	Y *float64
}

func (p *Point) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*p = Point{}
		return nil
	case len(b) > 0 && b[0] == '[':
		var row []json.RawMessage
		if err := json.Unmarshal(b, &row); err != nil {
			return err
		}
		if len(row) < 2 {
			return fmt.Errorf("series row needs [x, y], got %d items", len(row))
		}
		var x XValue
		if err := x.UnmarshalJSON(row[0]); err != nil {
			return err
		}
		var y *float64
		if err := json.Unmarshal(row[1], &y); err != nil {
			return fmt.Errorf("series row value: %w", err)
		}
		*p = Point{X: &x, Y: y}
		return nil
	default:
		var y float64
		if err := json.Unmarshal(b, &y); err != nil {
			return fmt.Errorf("series value: %w", err)
		}
		*p = Point{Y: &y}
		return nil
	}
}

func (p Point) MarshalJSON() ([]byte, error) {
	if p.X == nil {
		return json.Marshal(p.Y)
	}
	return json.Marshal([]interface{}{p.X, p.Y})
}

// Series accepts both row-oriented ([[x, y], ...]) and column-oriented
// ([y, ...] plus a separate x list) encodings.
type Series []Point

// Values returns the y values, with null entries reported as ok=false.
func (s Series) Values() (values []float64, ok []bool) {
	values = make([]float64, len(s))
	ok = make([]bool, len(s))
	for i, p := range s {
		if p.Y != nil {
			values[i] = *p.Y
			ok[i] = true
		}
	}
	return values, ok
}

// XValues returns the x coordinates of row-oriented points, in order.
func (s Series) XValues() []XValue {
	var xs []XValue
	for _, p := range s {
		if p.X != nil {
			xs = append(xs, *p.X)
		}
	}
	return xs
}
