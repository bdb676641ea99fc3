package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/ru"
)

const (
	FormatFull   = "full"
	FormatMedium = "medium"
)

var translators = map[string]func() locales.Translator{
	"en": en.New,
	"fr": fr.New,
	"de": de.New,
	"es": es.New,
	"ru": ru.New,
}

// SupportedLocales коды локалей, для которых есть названия дней и месяцев.
func SupportedLocales() []string {
	return []string{"en", "fr", "de", "es", "ru"}
}

// Formatter переводит время концерта в строку для страниц.
type Formatter struct {
	tr  locales.Translator
	loc *time.Location
}

// NewFormatter создаёт форматтер для локали; неизвестная локаль заменяется на en.
func NewFormatter(locale string) *Formatter {
	newTr, ok := translators[strings.ToLower(locale)]
	if !ok {
		newTr = en.New
	}
	return &Formatter{tr: newTr(), loc: time.UTC}
}

var defaultFormatter = NewFormatter("en")

// Locale возвращает код локали форматтера.
func (f *Formatter) Locale() string {
	return f.tr.Locale()
}

// FormatDatetime разбирает строку с датой и форматирует её английским форматтером.
func FormatDatetime(value, format string) (string, error) {
	return defaultFormatter.FormatDatetime(value, format)
}

// FormatDatetime разбирает ISO-подобную строку и применяет пресет format.
// Неизвестное имя пресета означает medium.
func (f *Formatter) FormatDatetime(value, format string) (string, error) {
	t, err := dateparse.ParseIn(strings.TrimSpace(value), f.loc)
	if err != nil {
		return "", fmt.Errorf("parse datetime %q: %w", value, err)
	}
	return f.Format(t, format), nil
}

// Format:
//
//	full   -> Monday January, 15, 2024 at 10:00AM
//	medium -> Mon 01, 15, 2024 10:00AM
func (f *Formatter) Format(t time.Time, format string) string {
	t = t.In(f.loc)
	clock := t.Format("3:04PM")
	if format == FormatFull {
		return fmt.Sprintf("%s %s, %d, %d at %s",
			f.tr.WeekdayWide(t.Weekday()), f.tr.MonthWide(t.Month()), t.Day(), t.Year(), clock)
	}
	return fmt.Sprintf("%s %02d, %02d, %d %s",
		f.tr.WeekdayAbbreviated(t.Weekday()), int(t.Month()), t.Day(), t.Year(), clock)
}

// FuncMap функции для шаблонов. datetime принимает строку или time.Time
// и необязательное имя пресета; неразборчивая строка выводится как есть.
func (f *Formatter) FuncMap() map[string]interface{} {
	return map[string]interface{}{
		"datetime": f.templateDatetime,
	}
}

func (f *Formatter) templateDatetime(value interface{}, format ...string) string {
	name := FormatMedium
	if len(format) > 0 {
		name = format[0]
	}
	switch v := value.(type) {
	case time.Time:
		return f.Format(v, name)
	case *time.Time:
		if v == nil {
			return ""
		}
		return f.Format(*v, name)
	case string:
		out, err := f.FormatDatetime(v, name)
		if err != nil {
			return v
		}
		return out
	default:
		return fmt.Sprint(value)
	}
}
