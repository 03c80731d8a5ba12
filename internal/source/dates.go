package source

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Cyrillic weekday and month abbreviations as they appear in Russian
// feeds. Both "мая" and "май" occur in the wild, hence the double entry.
var ruWeekdays = map[string]string{
	"Пн": "Mon",
	"Вт": "Tue",
	"Ср": "Wed",
	"Чт": "Thu",
	"Пт": "Fri",
	"Сб": "Sat",
	"Вс": "Sun",
}

var ruMonths = map[string]string{
	"янв": "Jan",
	"фев": "Feb",
	"мар": "Mar",
	"апр": "Apr",
	"май": "May",
	"мая": "May",
	"июн": "Jun",
	"июл": "Jul",
	"авг": "Aug",
	"сен": "Sep",
	"окт": "Oct",
	"ноя": "Nov",
	"дек": "Dec",
}

func translateRussianDate(s string) string {
	for ru, en := range ruWeekdays {
		s = strings.ReplaceAll(s, ru, en)
	}
	for ru, en := range ruMonths {
		s = strings.ReplaceAll(s, ru, en)
	}
	return s
}

// parseFeedDate translates Cyrillic abbreviations and hands the result to
// a general-purpose parser. Dates with no zone information are taken as
// UTC.
func parseFeedDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(translateRussianDate(raw))
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if t, err := dateparse.ParseIn(s, time.UTC); err == nil {
		return t, nil
	}

	for _, layout := range []string{
		time.RFC1123Z,
		time.RFC1123,
		"Mon, 2 Jan 2006 15:04:05",
		"Mon, 2 Jan 2006",
		"2 Jan 2006",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unparsable date %q", raw)
}
