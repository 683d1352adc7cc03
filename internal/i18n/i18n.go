// Package i18n resolves the interface language and translates UI strings.
package i18n

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// EnvLang forces the interface language when set.
const EnvLang = "POMO_LANG"

// Supported lists the languages with a catalog.
var Supported = []language.Tag{language.English, language.Chinese}

// Localizer translates message ids for one language.
type Localizer struct {
	lang string
	loc  *goi18n.Localizer
}

// Detect picks the language: POMO_LANG, then the configured language, then
// the system locale, then English.
func Detect(configured string) string {
	if forced := strings.TrimSpace(os.Getenv(EnvLang)); forced != "" {
		log.Printf("%s is set to: '%s'", EnvLang, forced)
		return match(forced)
	}
	if configured = strings.TrimSpace(configured); configured != "" {
		return match(configured)
	}
	userLocales, err := locale.GetLocales()
	if err != nil || len(userLocales) == 0 {
		log.Println("Could not get user locale, defaulting to english")
		return language.English.String()
	}
	return match(userLocales...)
}

func match(prefs ...string) string {
	matcher := language.NewMatcher(Supported)
	tag, _ := language.MatchStrings(matcher, prefs...)
	base, _ := tag.Base()
	if base.String() == "zh" {
		return language.Chinese.String()
	}
	return language.English.String()
}

// New builds a Localizer for lang with the embedded catalogs.
func New(lang string) *Localizer {
	bundle := goi18n.NewBundle(language.English)
	if err := bundle.AddMessages(language.English, english...); err != nil {
		log.Printf("load english catalog: %v", err)
	}
	if err := bundle.AddMessages(language.Chinese, chinese...); err != nil {
		log.Printf("load chinese catalog: %v", err)
	}
	return &Localizer{lang: lang, loc: goi18n.NewLocalizer(bundle, lang, language.English.String())}
}

func (l *Localizer) Lang() string {
	if l == nil {
		return language.English.String()
	}
	return l.lang
}

// T translates id, returning id itself when no catalog has it.
func (l *Localizer) T(id string) string {
	return l.Tf(id, nil)
}

// Tf translates id with template data.
func (l *Localizer) Tf(id string, data map[string]interface{}) string {
	if l == nil || l.loc == nil {
		return id
	}
	out, err := l.loc.Localize(&goi18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil || out == "" {
		return id
	}
	return out
}
