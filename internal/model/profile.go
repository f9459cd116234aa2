package model

// Category names a profile section
type Category string

const (
	CategoryWorkStyle          Category = "work_style"
	CategoryEnvironment        Category = "environment"
	CategoryInteractionLevel   Category = "interaction_level"
	CategoryTaskPreference     Category = "task_preference"
	CategoryAdditionalInsights Category = "additional_insights"
)

// Categories lists every profile category in display order
var Categories = []Category{
	CategoryWorkStyle,
	CategoryEnvironment,
	CategoryInteractionLevel,
	CategoryTaskPreference,
	CategoryAdditionalInsights,
}

// Trait is a matching tag derived from a fixed-choice answer
type Trait string

const (
	TraitNeutral       Trait = "neutral"
	TraitStructured    Trait = "structured"
	TraitFlexible      Trait = "flexible"
	TraitQuiet         Trait = "quiet"
	TraitCollaborative Trait = "collaborative"
	TraitIndependent   Trait = "independent"
	TraitTeamwork      Trait = "teamwork"
	TraitLeadership    Trait = "leadership"
	TraitDetailed      Trait = "detailed"
	TraitCreative      Trait = "creative"
	TraitBalanced      Trait = "balanced"
)

// ProfileEntry is one category of the derived profile
type ProfileEntry struct {
	Description string `json:"description" bson:"description" dynamodbav:"description"`
	Explanation string `json:"explanation" bson:"explanation" dynamodbav:"explanation"`
	Trait       Trait  `json:"trait,omitempty" bson:"trait,omitempty" dynamodbav:"trait,omitempty"`
}

// Profile is the structured work-preference summary. All five categories are always present.
type Profile struct {
	WorkStyle          ProfileEntry `json:"work_style" bson:"work_style" dynamodbav:"work_style"`
	Environment        ProfileEntry `json:"environment" bson:"environment" dynamodbav:"environment"`
	InteractionLevel   ProfileEntry `json:"interaction_level" bson:"interaction_level" dynamodbav:"interaction_level"`
	TaskPreference     ProfileEntry `json:"task_preference" bson:"task_preference" dynamodbav:"task_preference"`
	AdditionalInsights ProfileEntry `json:"additional_insights" bson:"additional_insights" dynamodbav:"additional_insights"`
}

// NoAdditionalInsights is used whenever the free-text path is skipped or fails
var NoAdditionalInsights = ProfileEntry{Description: "No additional insights", Explanation: ""}

// Entry returns the entry for a category
func (p *Profile) Entry(c Category) ProfileEntry {
	switch c {
	case CategoryWorkStyle:
		return p.WorkStyle
	case CategoryEnvironment:
		return p.Environment
	case CategoryInteractionLevel:
		return p.InteractionLevel
	case CategoryTaskPreference:
		return p.TaskPreference
	case CategoryAdditionalInsights:
		return p.AdditionalInsights
	}
	return ProfileEntry{}
}

// SetEntry replaces the entry for a category
func (p *Profile) SetEntry(c Category, e ProfileEntry) {
	switch c {
	case CategoryWorkStyle:
		p.WorkStyle = e
	case CategoryEnvironment:
		p.Environment = e
	case CategoryInteractionLevel:
		p.InteractionLevel = e
	case CategoryTaskPreference:
		p.TaskPreference = e
	case CategoryAdditionalInsights:
		p.AdditionalInsights = e
	}
}

// Public returns a copy without the internal matching traits
func (p Profile) Public() Profile {
	for _, c := range Categories {
		e := p.Entry(c)
		e.Trait = ""
		p.SetEntry(c, e)
	}
	return p
}
