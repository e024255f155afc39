package repositories

import (
	"fmt"
	"strings"

	"github.com/mama165/sdk-go/database"
)

// InspectMapper renders a raw badger entry for the debug inspector.
// Password hashes never leave the store.
func InspectMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	switch {
	case strings.HasPrefix(key, "msg:"):
		r, err := decodeRecord(val)
		if err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Type = "MESSAGE"
		row.Detail = fmt.Sprintf("%s -> %s: %s", r.String("sender"), r.String("receiver"), r.String("content"))
	case strings.HasPrefix(key, userByNamePrefix):
		r, err := decodeRecord(val)
		if err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Type = "USER"
		row.Detail = fmt.Sprintf("%s (%s)", r.String("username"), r.String("id"))
	case strings.HasPrefix(key, userByIDPrefix):
		row.Type = "USER_ID"
		row.Detail = string(val)
	}
	return row
}
