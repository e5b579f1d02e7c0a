package board

import (
	"encoding/json"
	"fmt"
)

// Encode serializes the board as a JSON array of column records, the layout
// stored under the board's durable key.
func Encode(b Board) (string, error) {
	data, err := json.Marshal(b.Columns)
	if err != nil {
		return "", fmt.Errorf("encode board: %w", err)
	}
	return string(data), nil
}

// Decode parses a serialized board. A payload that is not a non-empty column
// array is an error; callers fall back to the default board.
func Decode(raw string) (Board, error) {
	var cols []Column
	if err := json.Unmarshal([]byte(raw), &cols); err != nil {
		return Board{}, fmt.Errorf("decode board: %w", err)
	}
	if len(cols) == 0 {
		return Board{}, fmt.Errorf("decode board: no columns")
	}
	return Board{Columns: cols}, nil
}
