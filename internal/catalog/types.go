package catalog

// TechRequirement describes how demanding a career is on hardware and tooling.
type TechRequirement string

const (
	TechLow      TechRequirement = "low"
	TechModerate TechRequirement = "moderate"
	TechHigh     TechRequirement = "high"
)

// CareerAttributes holds the weighted descriptive attributes of one career path.
// All trait values are in [0, 1]. Attribute values are design constants: changing
// them changes ranking order, never engine behavior.
type CareerAttributes struct {
	Title              string          `yaml:"title"`
	RequiredSkills     []string        `yaml:"required_skills"`
	VisualOrientation  float64         `yaml:"visual_orientation"`
	LogicalOrientation float64         `yaml:"logical_orientation"`
	Creativity         float64         `yaml:"creativity"`
	DetailOrientation  float64         `yaml:"detail_orientation"`
	Collaboration      float64         `yaml:"collaboration"`
	IndependentWork    float64         `yaml:"independent_work"`
	LearningCurve      float64         `yaml:"learning_curve"`
	RemoteFriendly     float64         `yaml:"remote_friendly"`
	TechRequirements   TechRequirement `yaml:"tech_requirements"`
	ProjectTypes       []string        `yaml:"project_types"`
	Technologies       []string        `yaml:"technologies"`
}

// DefaultAttributes returns the neutral attribute set used for career titles the
// catalog does not know: every trait sits at 0.5 so unknown careers are neither
// penalized nor favored by any scoring rule.
func DefaultAttributes(title string) CareerAttributes {
	return CareerAttributes{
		Title:              title,
		VisualOrientation:  0.5,
		LogicalOrientation: 0.5,
		Creativity:         0.5,
		DetailOrientation:  0.5,
		Collaboration:      0.5,
		IndependentWork:    0.5,
		LearningCurve:      0.5,
		RemoteFriendly:     0.5,
		TechRequirements:   TechModerate,
	}
}
