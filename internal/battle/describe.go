package battle

import (
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. Arguments are always actor name, target name, then a
// number or a name depending on the key.
const (
	msgDamage         = "damage"
	msgDamageCritical = "damage_critical"
	msgDamageDodged   = "damage_dodged"
	msgDamageBlocked  = "damage_blocked"
	msgHeal           = "heal"
	msgBuff           = "buff"
	msgBuffRollback   = "buff_rollback"
	msgEffect         = "effect"
	msgEffectRefresh  = "effect_refresh"
	msgSummon         = "summon"
	msgResurrection   = "resurrection"
	msgParalysis      = "paralysis"
	msgWait           = "wait"
	msgManaRestore    = "mana_restore"
)

var baseMessages = map[string]string{
	msgDamage:         "%[1]s hits %[2]s for %[3]d damage",
	msgDamageCritical: "%[1]s critically hits %[2]s for %[3]d damage",
	msgDamageDodged:   "%[2]s dodges the attack of %[1]s",
	msgDamageBlocked:  "%[2]s blocks the attack of %[1]s",
	msgHeal:           "%[1]s heals %[2]s for %[3]d life",
	msgBuff:           "%[1]s uses %[3]s on %[2]s",
	msgBuffRollback:   "%[3]s wears off %[2]s",
	msgEffect:         "%[1]s applies %[3]s to %[2]s",
	msgEffectRefresh:  "%[1]s renews %[3]s on %[2]s",
	msgSummon:         "%[1]s summons %[2]s",
	msgResurrection:   "%[1]s resurrects %[2]s with %[3]d life",
	msgParalysis:      "%[1]s is paralyzed and skips the turn",
	msgWait:           "%[1]s waits",
	msgManaRestore:    "%[1]s restores %[3]d mana",
}

// BaseLanguage is the only language combat descriptions are written in.
var BaseLanguage = language.English

var describer = newDescriber()

type descriptionPrinter struct {
	printer *message.Printer
	keys    map[string]bool
}

func newDescriber() *descriptionPrinter {
	builder := catalog.NewBuilder(catalog.Fallback(BaseLanguage))
	keys := make([]string, 0, len(baseMessages))
	for key := range baseMessages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	registered := map[string]bool{}
	for _, key := range keys {
		if err := builder.SetString(BaseLanguage, key, baseMessages[key]); err != nil {
			// Catalog entries are constants; a failure is a programming error.
			panic(err)
		}
		registered[key] = true
	}
	return &descriptionPrinter{
		printer: message.NewPrinter(BaseLanguage, message.Catalog(builder)),
		keys:    registered,
	}
}

// describe formats key, falling back to fallback when an action carries a
// message method the catalog does not know.
func describe(key, fallback string, args ...any) string {
	if !describer.keys[key] {
		key = fallback
	}
	return describer.printer.Sprintf(key, args...)
}
