package model

// Big Five personality dimensions, each scored 0-100.
const (
	TraitOpenness          = "openness"
	TraitConscientiousness = "conscientiousness"
	TraitExtraversion      = "extraversion"
	TraitAgreeableness     = "agreeableness"
	TraitNeuroticism       = "neuroticism"
)

// Question is one generated multiple-choice item. Questions live inside the
// session that produced them and are never persisted on their own.
// swagger:model Question
type Question struct {
	ID       int            `json:"id"`
	Question string         `json:"question"`
	Options  []string       `json:"options"`
	Category string         `json:"category"`
	Trait    string         `json:"trait"`
	Scoring  map[string]int `json:"scoring"`
}

// TraitScores holds the five Big Five dimensions of an evaluation.
type TraitScores struct {
	Openness          int `json:"openness"`
	Conscientiousness int `json:"conscientiousness"`
	Extraversion      int `json:"extraversion"`
	Agreeableness     int `json:"agreeableness"`
	Neuroticism       int `json:"neuroticism"`
}
