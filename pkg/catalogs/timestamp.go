package catalogs

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/relvacode/iso8601"

	"github.com/etalab/sill-data/pkg/errors"
)

// Timestamp is an instant stored as epoch milliseconds. On input it also
// accepts an ISO-8601 string. It is always written back as milliseconds.
type Timestamp struct {
	time.Time
}

// NewTimestamp returns t truncated to millisecond precision, in UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: time.UnixMilli(t.UnixMilli()).UTC()}
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(t.UnixMilli(), 10)), nil
}

// MarshalYAML writes epoch milliseconds, like MarshalJSON.
func (t Timestamp) MarshalYAML() (any, error) {
	return t.UnixMilli(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			*t = Timestamp{Time: time.UnixMilli(ms).UTC()}
			return nil
		}
		parsed, err := iso8601.ParseString(s)
		if err != nil {
			return errors.NewValidationError("timestamp", s, err.Error())
		}
		*t = Timestamp{Time: parsed.UTC()}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.NewValidationError("timestamp", string(data), "expected epoch milliseconds or an ISO-8601 string")
	}
	ms, err := n.Int64()
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil {
			return errors.NewValidationError("timestamp", string(data), ferr.Error())
		}
		ms = int64(f)
	}
	*t = Timestamp{Time: time.UnixMilli(ms).UTC()}
	return nil
}
