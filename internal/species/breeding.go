package species

import (
	"time"
)

// Timeline stage names, in order.
const (
	StageConditioning = "conditioning"
	StageSpawning     = "spawning_window"
	StageHatch        = "hatch"
	StageFreeSwimming = "free_swimming"
	StageAdulthood    = "adulthood"
)

// TimelineStage is one window in a breeding schedule.
type TimelineStage struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Notes string    `json:"notes,omitempty"`
}

// BreedingTimeline is a staged schedule for one pairing attempt.
type BreedingTimeline struct {
	SpeciesID string          `json:"species_id"`
	Method    string          `json:"method"`
	PairDate  time.Time       `json:"pair_date"`
	Stages    []TimelineStage `json:"stages"`
}

// Timeline builds a breeding schedule for a species starting from pairDate.
// Stage lengths come from the reproduction method; the adulthood estimate
// stretches with breeding difficulty.
func (s *Service) Timeline(speciesID string, pairDate time.Time) (*BreedingTimeline, error) {
	sp, err := s.Get(speciesID)
	if err != nil {
		return nil, err
	}

	pairDate = pairDate.UTC().Truncate(24 * time.Hour)
	tl := &BreedingTimeline{
		SpeciesID: sp.ID,
		Method:    sp.Breeding.Method,
		PairDate:  pairDate,
	}

	conditioning := conditioningDays(sp.Breeding.Difficulty)
	spawnStart := pairDate.AddDate(0, 0, conditioning)
	tl.Stages = append(tl.Stages, TimelineStage{
		Name:  StageConditioning,
		Start: pairDate,
		End:   spawnStart,
		Notes: "Feed the pair high-protein foods and keep parameters stable.",
	})

	switch sp.Breeding.Method {
	case MethodLiveBearer:
		// No external eggs: gestation runs about four weeks, then the fry
		// are born free-swimming.
		birth := spawnStart.AddDate(0, 0, 28)
		tl.Stages = append(tl.Stages,
			TimelineStage{
				Name:  StageSpawning,
				Start: spawnStart,
				End:   birth,
				Notes: "Gestation; the gravid spot darkens as birth approaches.",
			},
			TimelineStage{
				Name:  StageFreeSwimming,
				Start: birth,
				End:   birth.AddDate(0, 0, 7),
				Notes: "Fry swim at birth. Provide cover or move them to a grow-out tank.",
			},
		)
		tl.Stages = append(tl.Stages, adulthoodStage(birth, sp.Breeding.Difficulty))
	case MethodMouthBrooder:
		spawnEnd := spawnStart.AddDate(0, 0, 7)
		release := spawnEnd.AddDate(0, 0, 21)
		tl.Stages = append(tl.Stages,
			TimelineStage{
				Name:  StageSpawning,
				Start: spawnStart,
				End:   spawnEnd,
			},
			TimelineStage{
				Name:  StageHatch,
				Start: spawnEnd,
				End:   release,
				Notes: "The holding parent carries the brood and will not eat.",
			},
			TimelineStage{
				Name:  StageFreeSwimming,
				Start: release,
				End:   release.AddDate(0, 0, 7),
			},
		)
		tl.Stages = append(tl.Stages, adulthoodStage(release, sp.Breeding.Difficulty))
	default:
		// Egg layers and bubble nesters hatch externally; nest builders
		// hatch faster than scattered eggs.
		spawnEnd := spawnStart.AddDate(0, 0, spawnWindowDays(sp.Breeding.Method))
		hatchEnd := spawnEnd.AddDate(0, 0, hatchDays(sp.Breeding.Method))
		free := hatchEnd.AddDate(0, 0, freeSwimmingDays(sp.Breeding.Method))
		tl.Stages = append(tl.Stages,
			TimelineStage{
				Name:  StageSpawning,
				Start: spawnStart,
				End:   spawnEnd,
			},
			TimelineStage{
				Name:  StageHatch,
				Start: spawnEnd,
				End:   hatchEnd,
			},
			TimelineStage{
				Name:  StageFreeSwimming,
				Start: hatchEnd,
				End:   free,
				Notes: "Start first foods once the yolk sacs are absorbed.",
			},
		)
		tl.Stages = append(tl.Stages, adulthoodStage(hatchEnd, sp.Breeding.Difficulty))
	}

	return tl, nil
}

func conditioningDays(difficulty string) int {
	switch difficulty {
	case BreedingEasy:
		return 7
	case BreedingModerate:
		return 14
	default:
		return 21
	}
}

func spawnWindowDays(method string) int {
	if method == MethodBubbleNest {
		return 3
	}
	return 7
}

func hatchDays(method string) int {
	if method == MethodBubbleNest {
		return 2
	}
	return 3
}

func freeSwimmingDays(method string) int {
	if method == MethodBubbleNest {
		return 3
	}
	return 5
}

func adulthoodStage(from time.Time, difficulty string) TimelineStage {
	months := map[string]int{
		BreedingEasy:      4,
		BreedingModerate:  6,
		BreedingDifficult: 8,
		BreedingExpert:    12,
	}[difficulty]
	if months == 0 {
		months = 6
	}
	return TimelineStage{
		Name:  StageAdulthood,
		Start: from,
		End:   from.AddDate(0, months, 0),
		Notes: "Estimated time for the fry to reach adult size.",
	}
}
