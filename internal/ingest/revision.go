package ingest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/rEtSaMfF/ffrk-bottle/internal/adapter"
)

// Client revisions moved enemy stats from the child object into params, and
// later turned params into a list of blocks, one per stat variant. Both shapes
// are reduced to one flat enemyRecord per block here; params win over the child.
func mergeEnemyParams(codec adapter.JSON, child enemyChild, params map[string]json.RawMessage) (enemyRecord, error) {
	merged := make(map[string]json.RawMessage, len(child.Fields)+len(params))
	for key, value := range child.Fields {
		if key == "params" {
			continue
		}
		merged[key] = value
	}
	for key, value := range params {
		merged[key] = value
	}

	data, err := codec.Marshal(merged)
	if err != nil {
		return enemyRecord{}, fmt.Errorf("failed to merge enemy params: %w", err)
	}

	var record enemyRecord
	if err := codec.Unmarshal(data, &record); err != nil {
		return enemyRecord{}, fmt.Errorf("%w: enemy params: %w", ErrMalformedPayload, err)
	}
	return record, nil
}

// prizeCount reads the granted amount; legacy prize entries carry no num and grant one item
func (p prizeRecord) prizeCount() int {
	if p.Num == nil {
		return 1
	}
	return int(*p.Num)
}

// decodeEvent reads the battle event, which older clients send as an empty list
func decodeEvent(codec adapter.JSON, raw json.RawMessage) (battleEvent, error) {
	var event battleEvent
	if !gjson.ParseBytes(raw).IsObject() {
		return event, nil
	}
	if err := codec.Unmarshal(raw, &event); err != nil {
		return event, fmt.Errorf("%w: battle event: %w", ErrMalformedPayload, err)
	}
	return event, nil
}

// ActionOf extracts the action of a payload: its "action" key, else its captured "path"
// with any query string removed
func ActionOf(payload []byte) (string, error) {
	if !gjson.ValidBytes(payload) {
		return "", ErrMalformedPayload
	}
	result := gjson.ParseBytes(payload)
	if !result.IsObject() {
		return "", fmt.Errorf("%w: payload is not an object", ErrMalformedPayload)
	}
	if action := result.Get("action"); action.Exists() {
		return action.String(), nil
	}
	path := result.Get("path").String()
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	return path, nil
}
