package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmunix/marquee/internal/movie"
)

// element is one decoded array entry with its original bytes.
type element struct {
	raw    json.RawMessage
	record movie.RawRecord
}

// Decode parses a JSON array of upstream movie payloads. Each element is
// decoded on its own; elements that are not JSON objects are skipped and
// counted. An empty array yields no records and no error.
func Decode(data []byte) ([]movie.RawRecord, int, error) {
	elems, skipped, err := decodeElements(data)
	if err != nil {
		return nil, skipped, err
	}
	records := make([]movie.RawRecord, len(elems))
	for i, e := range elems {
		records[i] = e.record
	}
	return records, skipped, nil
}

func decodeElements(data []byte) ([]element, int, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return nil, 0, ErrNotArray
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, 0, fmt.Errorf("decode dataset: %w", err)
	}

	out := make([]element, 0, len(items))
	skipped := 0
	for _, item := range items {
		if !bytes.HasPrefix(bytes.TrimSpace(item), []byte("{")) {
			skipped++
			continue
		}
		var rec movie.RawRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			skipped++
			continue
		}
		out = append(out, element{raw: item, record: rec})
	}

	if len(items) > 0 && len(out) == 0 {
		return nil, skipped, ErrNoUsableRecords
	}
	return out, skipped, nil
}
