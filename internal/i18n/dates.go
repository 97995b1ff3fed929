package i18n

import (
	"fmt"
	"time"
)

var frMonths = [12]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var arMonths = [12]string{
	"يناير", "فبراير", "مارس", "أبريل", "ماي", "يونيو",
	"يوليوز", "غشت", "شتنبر", "أكتوبر", "نونبر", "دجنبر",
}

// FormatDate renders t as a long-form date in the given language,
// e.g. "31 août 2026" or "31 غشت 2026". Unknown language codes use French.
func FormatDate(t time.Time, langCode string) string {
	months := frMonths
	if langCode == "ar" {
		months = arMonths
	}
	return fmt.Sprintf("%d %s %d", t.Day(), months[t.Month()-1], t.Year())
}
