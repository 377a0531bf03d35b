package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// italian maps English catalog keys to Italian text.
var italian = [][2]string{
	// Campaign validation
	{"Campaign name is required", "Il nome della campagna è obbligatorio"},
	{"Campaign name cannot be empty", "Il nome della campagna non può essere vuoto"},
	{"Campaign name cannot exceed %d characters", "Il nome della campagna non può superare %d caratteri"},
	{"Description is required", "La descrizione è obbligatoria"},
	{"Description cannot exceed %d characters", "La descrizione non può superare %d caratteri"},
	{"Setting is required", "L'ambientazione è obbligatoria"},
	{"Player count must be between %d and %d", "Il numero di giocatori deve essere tra %d e %d"},
	{"Total characters cannot be less than active characters", "Il totale dei personaggi non può essere inferiore ai personaggi attivi"},
	{"Average level must be between %d and %d", "Il livello medio deve essere tra %d e %d"},
	{"Completed quests must be between 0 and the total quests", "Le quest completate devono essere tra 0 e il totale delle quest"},
	{"Backup frequency must be greater than zero when auto backup is enabled", "La frequenza di backup deve essere maggiore di zero quando il backup automatico è attivo"},

	// Status labels
	{"Planning", "In Pianificazione"},
	{"Active", "Attiva"},
	{"On Hold", "In Pausa"},
	{"Completed", "Completata"},
	{"Archived", "Archiviata"},

	// Difficulty labels
	{"Casual", "Casual"},
	{"Normal", "Normale"},
	{"Hard", "Difficile"},
	{"Deadly", "Letale"},

	// Campaign display
	{"Session %d of %d", "Sessione %d di %d"},
	{"Last session: %s", "Ultima sessione: %s"},
	{"No sessions", "Nessuna sessione"},

	// Health notes
	{"No active characters", "Nessun personaggio attivo"},
	{"Add characters to start the campaign", "Aggiungi personaggi per iniziare la campagna"},
	{"No quests defined", "Nessuna quest definita"},
	{"Create some quests to guide the story", "Crea alcune quest per guidare la storia"},
	{"No NPCs created", "Nessun NPC creato"},
	{"Add NPCs to enrich the world", "Aggiungi NPCs per arricchire il mondo"},
	{"Last session was over %d days ago", "Ultima sessione oltre %d giorni fa"},
	{"Consider scheduling a new session", "Considera di programmare una nuova sessione"},

	// Suggestions
	{"Create your first campaign", "Crea la tua prima campagna"},
	{"Start by creating a new campaign to organize your sessions", "Inizia creando una nuova campagna per organizzare le tue sessioni D&D"},
	{"Too many active campaigns", "Troppe campagne attive"},
	{"Consider archiving some campaigns to stay organized", "Considera di archiviare alcune campagne per migliorare l'organizzazione"},
	{"Campaigns on hold to resume", "Campagne in pausa da riprendere"},
	{"Campaigns to start", "Campagne da avviare"},
	{"No active campaigns", "Nessuna campagna attiva"},
	{"Create a new campaign or reactivate an existing one", "Crea una nuova campagna o riattiva una esistente"},

	// Health tiers
	{"Healthy", "In salute"},
	{"Warning", "Attenzione"},
	{"Needs attention", "Richiede attenzione"},

	// Command line output
	{"Created campaign %s (%s)", "Campagna %s creata (%s)"},
	{"Updated campaign %s", "Campagna %s aggiornata"},
	{"%s is now %s", "%s ora è %s"},
	{"Started session %d of %s", "Iniziata la sessione %d di %s"},
	{"Deleted campaign %s", "Campagna %s eliminata"},
	{"Duplicated %s as %s (%s)", "%s duplicata come %s (%s)"},
	{"Imported campaign %s (%s)", "Campagna %s importata (%s)"},
	{"Current campaign: %s", "Campagna corrente: %s"},
	{"No current campaign", "Nessuna campagna corrente"},
	{"Current campaign cleared", "Campagna corrente deselezionata"},
	{"Recent campaigns:", "Campagne recenti:"},
	{"No campaigns", "Nessuna campagna"},
	{"Next page token: %s", "Token pagina successiva: %s"},
	{"Name", "Nome"},
	{"Status", "Stato"},
	{"Difficulty", "Difficoltà"},
	{"Characters", "Personaggi"},
	{"Last session", "Ultima sessione"},
	{"Setting: %s", "Ambientazione: %s"},
	{"Difficulty: %s", "Difficoltà: %s"},
	{"Players: %d", "Giocatori: %d"},
	{"Quest completion: %d%%", "Quest completate: %d%%"},
	{"Session progress: %d%%", "Avanzamento sessioni: %d%%"},
	{"Character growth: %d%%", "Crescita personaggi: %d%%"},
	{"Pace: %.2f sessions per week over %d weeks", "Ritmo: %.2f sessioni a settimana in %d settimane"},
	{"Projected end: %s", "Fine prevista: %s"},
	{"Health: %s", "Salute: %s"},
	{"Campaigns: %d (%d active, %d completed)", "Campagne: %d (%d attive, %d completate)"},
	{"Characters: %d, sessions: %d", "Personaggi: %d, sessioni: %d"},
	{"Most popular setting: %s", "Ambientazione più popolare: %s"},
	{"Average level: %d", "Livello medio: %d"},
	{"Suggestions:", "Suggerimenti:"},
	{"Needing attention:", "Da seguire:"},
	{"Recently updated:", "Aggiornate di recente:"},
	{"Theme: %s", "Tema: %s"},
	{"Auto backup: every %d hours", "Backup automatico: ogni %d ore"},
	{"Auto backup: off", "Backup automatico: disattivato"},
	{"Last backup: %s", "Ultimo backup: %s"},
	{"Campaigns backed up to %s", "Campagne salvate in %s"},
}

func init() {
	lang := language.Italian
	for _, entry := range italian {
		message.SetString(lang, entry[0], entry[1])
	}
}
