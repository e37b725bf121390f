package board

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ParseLayout decodes and validates a JSON layout document:
//
//	{"rows": 6, "cols": 6, "symbols": [{"symbol": "星", "count": 4}, ...]}
func ParseLayout(raw string) (Layout, error) {
	var l Layout
	if err := json.UnmarshalFromString(raw, &l); err != nil {
		return Layout{}, fmt.Errorf("%w: %v", ErrBadLayout, err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// String encodes the layout back to its JSON document form.
func (l Layout) String() string {
	s, err := json.MarshalToString(l)
	if err != nil {
		return fmt.Sprintf("board.Layout{%dx%d}", l.Rows, l.Cols)
	}
	return s
}
