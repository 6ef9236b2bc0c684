package i18n

import (
	"fmt"
	"time"
)

var (
	weekdaysFR = [...]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"}
	monthsFR   = [...]string{"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre"}
)

// FormatDay renders a calendar day the way each language writes it:
// "mercredi 12 mai 2027" or "Wednesday, May 12, 2027".
func FormatDay(lang Lang, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if lang == EN {
		return t.Format("Monday, January 2, 2006")
	}
	day := fmt.Sprint(t.Day())
	if t.Day() == 1 {
		day = "1er"
	}
	return fmt.Sprintf("%s %s %s %d", weekdaysFR[t.Weekday()], day, monthsFR[t.Month()-1], t.Year())
}
