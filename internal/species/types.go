package species

// Temperament buckets used for compatibility filtering.
const (
	TemperamentPeaceful       = "peaceful"
	TemperamentSemiAggressive = "semi-aggressive"
	TemperamentAggressive     = "aggressive"
)

// Care levels, from easiest to hardest.
const (
	CareBeginner     = "beginner"
	CareIntermediate = "intermediate"
	CareAdvanced     = "advanced"
)

// Breeding methods.
const (
	MethodEggLayer     = "egg-layer"
	MethodLiveBearer   = "live-bearer"
	MethodBubbleNest   = "bubble-nest"
	MethodMouthBrooder = "mouth-brooder"
)

// Breeding difficulties.
const (
	BreedingEasy      = "easy"
	BreedingModerate  = "moderate"
	BreedingDifficult = "difficult"
	BreedingExpert    = "expert"
)

// WaterParameters is the tolerated water chemistry range for a species.
type WaterParameters struct {
	TempMinC float64 `json:"temp_min_c"`
	TempMaxC float64 `json:"temp_max_c"`
	PHMin    float64 `json:"ph_min"`
	PHMax    float64 `json:"ph_max"`
	Hardness string  `json:"hardness"`
}

// BreedingInfo describes how a species reproduces in captivity.
type BreedingInfo struct {
	Difficulty string   `json:"difficulty"`
	Method     string   `json:"method"`
	Triggers   []string `json:"triggers,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// Compatibility lists tank mates by common name.
type Compatibility struct {
	GoodWith  []string `json:"good_with"`
	AvoidWith []string `json:"avoid_with"`
}

// Species is one entry in the static freshwater reference table.
type Species struct {
	ID             string          `json:"id"`
	CommonName     string          `json:"common_name"`
	ArabicName     string          `json:"arabic_name"`
	ScientificName string          `json:"scientific_name"`
	Family         string          `json:"family"`
	Origin         string          `json:"origin"`
	MinSizeCM      float64         `json:"min_size_cm"`
	MaxSizeCM      float64         `json:"max_size_cm"`
	LifespanYears  int             `json:"lifespan_years"`
	Temperament    string          `json:"temperament"`
	CareLevel      string          `json:"care_level"`
	MinTankLiters  int             `json:"min_tank_liters"`
	Water          WaterParameters `json:"water_parameters"`
	Diet           []string        `json:"diet"`
	Breeding       BreedingInfo    `json:"breeding"`
	Schooling      bool            `json:"schooling"`
	MinimumGroup   int             `json:"minimum_group"`
	Compatibility  Compatibility   `json:"compatibility"`
	Category       string          `json:"category"`
}

// ListInput filters the species list.
type ListInput struct {
	Category    string
	Temperament string
	CareLevel   string
	Search      string
}

// SetupSuggestion is one stocking option for a given tank.
type SetupSuggestion struct {
	Species        Species `json:"species"`
	SuggestedGroup int     `json:"suggested_group"`
}

// SetupRecommendation is the output of the tank setup wizard.
type SetupRecommendation struct {
	TankLiters  int               `json:"tank_liters"`
	Temperament string            `json:"temperament"`
	Suggestions []SetupSuggestion `json:"suggestions"`
}
