package catalog

import "jobquest/internal/model"

// Job is a catalog entry tagged with the traits it suits per profile category
type Job struct {
	Title          string
	Description    string
	Environment    string
	URL            string
	Affinities     map[model.Category][]model.Trait
	Considerations []string
}

// Suits reports whether trait is listed for category
func (j Job) Suits(c model.Category, t model.Trait) bool {
	for _, a := range j.Affinities[c] {
		if a == t {
			return true
		}
	}
	return false
}

const careersURL = "https://careers.oracle.com/jobs"

var defaultJobs = []Job{
	{
		Title:       "Data Quality Analyst",
		Description: "Validates and monitors data sets against defined quality rules.",
		Environment: "Austin, TX (Remote Available)",
		URL:         careersURL,
		Affinities: map[model.Category][]model.Trait{
			model.CategoryWorkStyle:        {model.TraitStructured},
			model.CategoryEnvironment:      {model.TraitQuiet},
			model.CategoryInteractionLevel: {model.TraitIndependent},
			model.CategoryTaskPreference:   {model.TraitDetailed},
		},
	},
	{
		Title:       "Software Developer - Backend",
		Description: "Builds and maintains server-side services with long stretches of focused work.",
		Environment: "Seattle, WA (Hybrid)",
		URL:         careersURL,
		Affinities: map[model.Category][]model.Trait{
			model.CategoryWorkStyle:        {model.TraitFlexible},
			model.CategoryEnvironment:      {model.TraitQuiet},
			model.CategoryInteractionLevel: {model.TraitIndependent, model.TraitTeamwork},
			model.CategoryTaskPreference:   {model.TraitDetailed, model.TraitBalanced},
		},
		Considerations: []string{"Code review and on-call rotations involve some team coordination"},
	},
	{
		Title:       "QA Engineer",
		Description: "Designs and runs systematic test plans to catch defects before release.",
		Environment: "Reston, VA",
		URL:         careersURL,
		Affinities: map[model.Category][]model.Trait{
			model.CategoryWorkStyle:        {model.TraitStructured},
			model.CategoryEnvironment:      {model.TraitQuiet},
			model.CategoryInteractionLevel: {model.TraitIndependent, model.TraitTeamwork},
			model.CategoryTaskPreference:   {model.TraitDetailed},
		},
	},
	{
		Title:       "Technical Documentation Specialist",
		Description: "Writes precise guides and reference material for technical products.",
		Environment: "Remote",
		URL:         careersURL,
		Affinities: map[model.Category][]model.Trait{
			model.CategoryWorkStyle:        {model.TraitFlexible, model.TraitStructured},
			model.CategoryEnvironment:      {model.TraitQuiet},
			model.CategoryInteractionLevel: {model.TraitIndependent},
			model.CategoryTaskPreference:   {model.TraitDetailed, model.TraitBalanced},
		},
	},
	{
		Title:       "Database Administrator",
		Description: "Keeps databases healthy through well-defined procedures and monitoring.",
		Environment: "Denver, CO",
		URL:         careersURL,
		Affinities: map[model.Category][]model.Trait{
			model.CategoryWorkStyle:        {model.TraitStructured},
			model.CategoryEnvironment:      {model.TraitQuiet},
			model.CategoryInteractionLevel: {model.TraitIndependent},
			model.CategoryTaskPreference:   {model.TraitDetailed},
		},
		Considerations: []string{"Maintenance windows can fall outside regular hours"},
	},
	{
		Title:       "UI/UX Developer",
		Description: "Designs and implements user interfaces with a focus on usability.",
		Environment: "San Francisco, CA",
		URL:         careersURL,
		Affinities: map[model.Category][]model.Trait{
			model.CategoryWorkStyle:        {model.TraitFlexible},
			model.CategoryEnvironment:      {model.TraitCollaborative},
			model.CategoryInteractionLevel: {model.TraitTeamwork},
			model.CategoryTaskPreference:   {model.TraitCreative, model.TraitBalanced},
		},
		Considerations: []string{"Frequent design reviews with product and research teams"},
	},
	{
		Title:       "Systems Analyst",
		Description: "Translates business needs into structured system requirements.",
		Environment: "Chicago, IL (Hybrid)",
		URL:         careersURL,
		Affinities: map[model.Category][]model.Trait{
			model.CategoryWorkStyle:        {model.TraitStructured},
			model.CategoryEnvironment:      {model.TraitCollaborative, model.TraitQuiet},
			model.CategoryInteractionLevel: {model.TraitTeamwork},
			model.CategoryTaskPreference:   {model.TraitBalanced, model.TraitDetailed},
		},
		Considerations: []string{"Requires regular stakeholder interviews"},
	},
	{
		Title:       "Cloud Infrastructure Engineer",
		Description: "Automates and operates cloud platforms for engineering teams.",
		Environment: "Boston, MA",
		URL:         careersURL,
		Affinities: map[model.Category][]model.Trait{
			model.CategoryWorkStyle:        {model.TraitFlexible, model.TraitStructured},
			model.CategoryEnvironment:      {model.TraitCollaborative},
			model.CategoryInteractionLevel: {model.TraitTeamwork},
			model.CategoryTaskPreference:   {model.TraitDetailed, model.TraitBalanced},
		},
		Considerations: []string{"Incident response involves cross-team coordination"},
	},
	{
		Title:       "Product Support Engineer",
		Description: "Resolves technical issues reported by customers.",
		Environment: "Remote",
		URL:         careersURL,
		Affinities: map[model.Category][]model.Trait{
			model.CategoryWorkStyle:        {model.TraitFlexible},
			model.CategoryEnvironment:      {model.TraitQuiet},
			model.CategoryInteractionLevel: {model.TraitTeamwork},
			model.CategoryTaskPreference:   {model.TraitBalanced},
		},
		Considerations: []string{"Direct customer interaction is a daily part of the role"},
	},
	{
		Title:       "Agile Project Coordinator",
		Description: "Runs sprint ceremonies and keeps delivery teams aligned.",
		Environment: "Miami, FL",
		URL:         careersURL,
		Affinities: map[model.Category][]model.Trait{
			model.CategoryWorkStyle:        {model.TraitStructured},
			model.CategoryEnvironment:      {model.TraitCollaborative},
			model.CategoryInteractionLevel: {model.TraitLeadership},
			model.CategoryTaskPreference:   {model.TraitBalanced, model.TraitCreative},
		},
		Considerations: []string{"High volume of meetings and social interaction"},
	},
}

// Default returns the built-in job catalog in its canonical order
func Default() []Job {
	out := make([]Job, len(defaultJobs))
	copy(out, defaultJobs)
	return out
}
