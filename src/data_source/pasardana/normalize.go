package pasardana

import (
	"bytes"
	"encoding/json"
	"fmt"

	"stock-dashboard/src/helpers"
	"stock-dashboard/src/models"

	"github.com/PaesslerAG/jsonpath"
)

// -----------------------------------------------------------------------------

// NormalizeInstruments turns an upstream body into an instrument list.
// Two shapes are accepted: a bare JSON array of instruments, or an object
// holding that array at resultPath (a JSONPath such as "$.Result").
// Anything else is a ShapeError. An empty array in either shape is valid
// and yields an empty, non-nil slice.
func NormalizeInstruments(body []byte, resultPath string) ([]models.MInstrument, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, helpers.NewShapeError("empty upstream body", nil)
	}

	// 1. Bare array
	if trimmed[0] == '[' {
		var list []models.MInstrument
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, helpers.NewShapeError("malformed instrument array", err)
		}
		return nonNil(list), nil
	}

	// 2. Wrapped array
	if trimmed[0] != '{' {
		return nil, helpers.NewShapeError("upstream body is neither an array nor an object", nil)
	}

	var jobj any
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if err := dec.Decode(&jobj); err != nil {
		return nil, helpers.NewShapeError("malformed upstream object", err)
	}

	jval, err := jsonpath.Get(resultPath, jobj)
	if err != nil {
		return nil, helpers.NewShapeError(fmt.Sprintf("no instrument list at %s", resultPath), err)
	}

	jlist, ok := jval.([]any)
	if !ok {
		return nil, helpers.NewShapeError(fmt.Sprintf("value at %s is %T, not a list", resultPath, jval), nil)
	}

	// Round trip through JSON to reuse the struct tags
	raw, err := json.Marshal(jlist)
	if err != nil {
		return nil, helpers.NewShapeError("failed to re-encode instrument list", err)
	}

	var list []models.MInstrument
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, helpers.NewShapeError(fmt.Sprintf("malformed instruments at %s", resultPath), err)
	}
	return nonNil(list), nil
}

// -----------------------------------------------------------------------------

func nonNil(list []models.MInstrument) []models.MInstrument {
	if list == nil {
		return []models.MInstrument{}
	}
	return list
}
