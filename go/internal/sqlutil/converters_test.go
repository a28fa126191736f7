package sqlutil

import (
	"testing"
	"time"
)

func TestStringConverters(t *testing.T) {
	if got := ToSqlString(nil); got.Valid {
		t.Errorf("ToSqlString(nil).Valid = true, want false")
	}
	if got := FromSqlStringPtr(ToSqlString(nil)); got != nil {
		t.Errorf("nil string did not survive the round trip: %v", got)
	}

	venue := "Municipal Stadium"
	converted := ToSqlString(&venue)
	if !converted.Valid || converted.String != venue {
		t.Errorf("ToSqlString(%q) = %+v", venue, converted)
	}
	back := FromSqlStringPtr(converted)
	if back == nil || *back != venue {
		t.Errorf("FromSqlStringPtr(%+v) = %v, want %q", converted, back, venue)
	}
}

func TestTimeConverters(t *testing.T) {
	if got := ToSqlTime(nil); got.Valid {
		t.Errorf("ToSqlTime(nil).Valid = true, want false")
	}
	if got := FromSqlTimePtr(ToSqlTime(nil)); got != nil {
		t.Errorf("nil time did not survive the round trip: %v", got)
	}

	finishedAt := time.Date(2026, 3, 14, 17, 0, 0, 0, time.UTC)
	converted := ToSqlTime(&finishedAt)
	if !converted.Valid || !converted.Time.Equal(finishedAt) {
		t.Errorf("ToSqlTime(%v) = %+v", finishedAt, converted)
	}
	back := FromSqlTimePtr(converted)
	if back == nil || !back.Equal(finishedAt) {
		t.Errorf("FromSqlTimePtr(%+v) = %v, want %v", converted, back, finishedAt)
	}
}
