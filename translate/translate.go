// Package translate formats user-facing messages in the caller's language.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	lock    sync.RWMutex
	tag     language.Tag
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("wirenet: locale: %v", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the message printer for the best match of the
// given BCP 47 tags. With no tags, en-US is used.
func SetLanguage(tags ...string) {
	if len(tags) == 0 {
		tags = []string{"en-US"}
	}

	matched := message.MatchLanguage(tags...)

	lock.Lock()
	defer lock.Unlock()

	tag = matched
	printer = message.NewPrinter(matched)
}

// Language returns the language currently used by From.
func Language() language.Tag {
	lock.RLock()
	defer lock.RUnlock()

	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	lock.RLock()
	defer lock.RUnlock()

	return printer.Sprintf(key, args...)
}
