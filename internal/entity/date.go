package entity

import (
	"fmt"
	"time"
)

// Date is a manifest publication date. It accepts the same layouts the rest
// of the tool does (RFC 3339, date-only, date plus time).
type Date struct {
	time.Time
}

func (d *Date) UnmarshalText(data []byte) error {
	t := parseTime(string(data))
	if t.IsZero() {
		return fmt.Errorf("unrecognized date %q", string(data))
	}
	d.Time = t
	return nil
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.Format(time.DateOnly)), nil
}
