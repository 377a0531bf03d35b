package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Count-dependent messages. Keys without an entry here render the English
// source string as-is.
func init() {
	set := func(tag language.Tag, key string, one, other string) {
		if err := message.Set(tag, key, plural.Selectf(1, "%d", "=1", one, "other", other)); err != nil {
			panic(err)
		}
	}

	set(language.English, "%d active PCs", "%d active PC", "%d active PCs")
	set(language.English, "You have %d campaigns on hold that you could resume",
		"You have %d campaign on hold that you could resume",
		"You have %d campaigns on hold that you could resume")
	set(language.English, "You have %d campaigns in planning ready to begin",
		"You have %d campaign in planning ready to begin",
		"You have %d campaigns in planning ready to begin")

	set(language.Italian, "%d active PCs", "%d PG attivo", "%d PG attivi")
	set(language.Italian, "You have %d campaigns on hold that you could resume",
		"Hai %d campagna in pausa che potresti riprendere",
		"Hai %d campagne in pausa che potresti riprendere")
	set(language.Italian, "You have %d campaigns in planning ready to begin",
		"Hai %d campagna in pianificazione pronta per iniziare",
		"Hai %d campagne in pianificazione pronte per iniziare")
}
