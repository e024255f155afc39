package repositories

import (
	"fmt"
	"strconv"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Records are stored as protobuf Struct values.
// Timestamps are kept as decimal unix nanoseconds: Struct numbers are float64.
func encodeRecord(fields map[string]any) ([]byte, error) {
	record, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("build record: %w", err)
	}
	return proto.Marshal(record)
}

func decodeRecord(data []byte) (record, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return record{}, fmt.Errorf("unmarshal record: %w", err)
	}
	return record{fields: s.GetFields()}, nil
}

type record struct {
	fields map[string]*structpb.Value
}

func (r record) String(key string) string {
	return r.fields[key].GetStringValue()
}

func (r record) Time(key string) (time.Time, error) {
	t, err := parseTime(r.String(key))
	if err != nil {
		return time.Time{}, fmt.Errorf("field %s: %w", key, err)
	}
	return t, nil
}

func parseTime(s string) (time.Time, error) {
	nanos, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, nanos).UTC(), nil
}

func formatTime(t time.Time) string {
	return strconv.FormatInt(t.UnixNano(), 10)
}
