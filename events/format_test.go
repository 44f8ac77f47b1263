package events

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDateFormats(t *testing.T) {
	tests := []struct {
		date              string
		short, long, list string
	}{
		{"2025-08-15", "15 Aug 2025", "Friday, 15 August 2025", "15/08/2025"},
		{"2024-09-08", "08 Sep 2024", "Sunday, 8 September 2024", "08/09/2024"},
		{"", invalidDate, invalidDate, invalidDate},
		{"15/08/2025", invalidDate, invalidDate, invalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			if got := ShortDate(tt.date); got != tt.short {
				t.Errorf("ShortDate = %q, want %q", got, tt.short)
			}
			if got := LongDate(tt.date); got != tt.long {
				t.Errorf("LongDate = %q, want %q", got, tt.long)
			}
			if got := ListDate(tt.date); got != tt.list {
				t.Errorf("ListDate = %q, want %q", got, tt.list)
			}
		})
	}
}

func TestCardText(t *testing.T) {
	up := Record{Name: "Camp", Date: "2025-08-15", Time: "10:00 AM", Kind: KindUpcoming}
	past := Record{Name: "Drive", Date: "2025-01-26", Time: "11:00 AM", Kind: KindPast}

	if got := CardDate(up); got != "15 Aug 2025 at 10:00 AM" {
		t.Errorf("CardDate(upcoming) = %q", got)
	}
	if got := CardDate(past); got != "26 Jan 2025" {
		t.Errorf("CardDate(past) = %q", got)
	}
	if got := DetailDate(past); got != "Sunday, 26 January 2025 at 11:00 AM" {
		t.Errorf("DetailDate(past) = %q", got)
	}
	if got := CardTitle(past); got != "Drive Highlights" {
		t.Errorf("CardTitle(past) = %q", got)
	}
	if got := CardTitle(up); got != "Camp" {
		t.Errorf("CardTitle(upcoming) = %q", got)
	}
}

func TestSummary(t *testing.T) {
	long := strings.Repeat("a", 150)
	if got := Summary(long); got != strings.Repeat("a", 100)+"..." {
		t.Errorf("Summary(long) has length %d", len(got))
	}
	if got := Summary("short"); got != "short..." {
		t.Errorf("Summary(short) = %q", got)
	}
	// Multi-byte characters are not split
	accents := strings.Repeat("é", 120)
	if got := Summary(accents); got != strings.Repeat("é", 100)+"..." {
		t.Errorf("Summary split a rune: %q", got)
	}
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"upcoming", "past"} {
		if k, err := ParseKind(s); err != nil || string(k) != s {
			t.Errorf("ParseKind(%q) = %q, %v", s, k, err)
		}
	}
	if _, err := ParseKind("Upcoming"); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("ParseKind(Upcoming) err = %v, want ErrInvalidKind", err)
	}
	if KindPast.Label() != "Past" || KindUpcoming.Label() != "Upcoming" {
		t.Error("unexpected labels")
	}
}

func TestExportImportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, DefaultRecords()[:2]); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	header := strings.SplitN(buf.String(), "\n", 2)[0]
	if header != "id,name,date,time,venue,description,type" {
		t.Errorf("header = %q", header)
	}

	got, err := ImportCSV(&buf)
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if len(got) != 2 || got[1] != DefaultRecords()[1] {
		t.Errorf("ImportCSV() = %+v", got)
	}
}

func TestImportCSVRejectsBadKind(t *testing.T) {
	in := "id,name,date,time,venue,description,type\nx,X,2025-01-01,,V,D,later\n"
	if _, err := ImportCSV(strings.NewReader(in)); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("err = %v, want ErrInvalidKind", err)
	}
}
