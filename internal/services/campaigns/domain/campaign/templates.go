package campaign

// commonSettings are the published settings offered as suggestions.
var commonSettings = []string{
	"Forgotten Realms",
	"Eberron",
	"Ravenloft",
	"Spelljammer",
	"Planescape",
	"Dark Sun",
	"Dragonlance",
	"Homebrew",
	"Critical Role",
	"Custom",
}

// CommonSettings returns the suggested settings for new campaigns.
func CommonSettings() []string {
	out := make([]string, len(commonSettings))
	copy(out, commonSettings)
	return out
}

// Template is a starter preset for the creation form.
type Template struct {
	Key         string
	Name        string
	Description string
	Setting     string
	Difficulty  Difficulty
	PlayerCount int
}

// Request converts the template into a creation request.
func (t Template) Request() CreateRequest {
	count := t.PlayerCount
	return CreateRequest{
		Name:        t.Name,
		Description: t.Description,
		Setting:     t.Setting,
		Difficulty:  t.Difficulty,
		PlayerCount: &count,
	}
}

var creationTemplates = []Template{
	{
		Key:         "strahd",
		Name:        "Curse of Strahd",
		Description: "A gothic horror campaign set in Barovia",
		Setting:     "Ravenloft",
		Difficulty:  DifficultyHard,
		PlayerCount: DefaultPlayerCount,
	},
	{
		Key:         "homebrew",
		Name:        "Homebrew Campaign",
		Description: "A custom campaign in your own fantasy world",
		Setting:     "Homebrew",
		Difficulty:  DifficultyNormal,
		PlayerCount: DefaultPlayerCount,
	},
	{
		Key:         "waterdeep",
		Name:        "Heroes of Waterdeep",
		Description: "Adventures in the most famous city of the Forgotten Realms",
		Setting:     "Forgotten Realms",
		Difficulty:  DifficultyNormal,
		PlayerCount: DefaultPlayerCount,
	},
	{
		Key:         "eberron",
		Name:        "Exploring Eberron",
		Description: "Industrial magic and intrigue in a world scarred by war",
		Setting:     "Eberron",
		Difficulty:  DifficultyHard,
		PlayerCount: DefaultPlayerCount,
	},
	{
		Key:         "beginners",
		Name:        "Beginner Campaign",
		Description: "A simple campaign to introduce new players",
		Setting:     "Forgotten Realms",
		Difficulty:  DifficultyCasual,
		PlayerCount: DefaultPlayerCount,
	},
}

// CreationTemplates returns the starter presets offered on creation.
func CreationTemplates() []Template {
	out := make([]Template, len(creationTemplates))
	copy(out, creationTemplates)
	return out
}

// TemplateByKey looks up a preset by key.
func TemplateByKey(key string) (Template, bool) {
	for _, t := range creationTemplates {
		if t.Key == key {
			return t, true
		}
	}
	return Template{}, false
}
