package web

import (
	"net/http"

	"golang.org/x/text/language"

	"colloque/internal/domain/i18n"
)

// langMatcher prefers the first supported language on ties.
var langMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(i18n.Supported))
	for i, l := range i18n.Supported {
		tags[i] = language.Make(l.String())
	}
	return language.NewMatcher(tags)
}()

// negotiateLanguage picks the starting language of a new view: an explicit
// ?lang= wins, then the browser's Accept-Language, then the default.
func negotiateLanguage(r *http.Request) i18n.Lang {
	if l, err := i18n.Parse(r.URL.Query().Get("lang")); err == nil {
		return l
	}
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return i18n.Default
	}
	_, idx, conf := langMatcher.Match(tags...)
	if conf == language.No {
		return i18n.Default
	}
	return i18n.Supported[idx]
}
