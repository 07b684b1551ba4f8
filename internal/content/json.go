package content

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ParseJSON decodes a JSON roster document with left and right unit lists.
func ParseJSON(data []byte) (Roster, error) {
	doc := &structpb.Struct{}
	if err := protojson.Unmarshal(data, doc); err != nil {
		return Roster{}, fmt.Errorf("decode roster json: %w", err)
	}
	return rosterFromMap(doc.AsMap())
}

// MarshalUnit encodes one unit definition as JSON.
func MarshalUnit(def map[string]any) ([]byte, error) {
	msg, err := structpb.NewStruct(def)
	if err != nil {
		return nil, fmt.Errorf("encode unit: %w", err)
	}
	return protojson.Marshal(msg)
}

// UnmarshalUnit decodes one unit definition from JSON.
func UnmarshalUnit(data []byte) (map[string]any, error) {
	msg := &structpb.Struct{}
	if err := protojson.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("decode unit: %w", err)
	}
	return msg.AsMap(), nil
}
