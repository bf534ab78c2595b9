package domain

// The patch types mirror the activity blocks with pointer fields so a save
// can tell "not sent" apart from "sent as zero". A nil block leaves the stored
// block untouched; inside a block only non-nil fields overwrite.

type LeetCodePatch struct {
	ContestParticipated *bool       `json:"contestParticipated"`
	ProblemsSolved      *int        `json:"problemsSolved"`
	ProblemDifficulty   *Difficulty `json:"problemDifficulty"`
}

type CodeChefPatch struct {
	DailyProblem        *bool `json:"dailyProblem"`
	ContestParticipated *bool `json:"contestParticipated"`
	ProblemsSolved      *int  `json:"problemsSolved"`
}

type CodeforcesPatch struct {
	ProblemsSolved      *int  `json:"problemsSolved"`
	ContestParticipated *bool `json:"contestParticipated"`
	Rating              *int  `json:"rating"`
}

type GymPatch struct {
	Completed   *bool        `json:"completed"`
	WorkoutType *WorkoutType `json:"workoutType"`
	Duration    *int         `json:"duration"`
}

type DietPatch struct {
	CleanDiet *bool    `json:"cleanDiet"`
	Calories  *float64 `json:"calories"`
	Protein   *float64 `json:"protein"`
	Notes     *string  `json:"notes"`
}

type InternshipPrepPatch struct {
	Completed  *bool    `json:"completed"`
	HoursSpent *float64 `json:"hoursSpent"`
	Topics     []string `json:"topics"`
}

// DailyLogPatch is a partial daily log as sent by the client.
type DailyLogPatch struct {
	LeetCode       *LeetCodePatch       `json:"leetcode"`
	CodeChef       *CodeChefPatch       `json:"codechef"`
	Codeforces     *CodeforcesPatch     `json:"codeforces"`
	Gym            *GymPatch            `json:"gym"`
	Diet           *DietPatch           `json:"diet"`
	InternshipPrep *InternshipPrepPatch `json:"internshipPrep"`
	Notes          *string              `json:"notes"`
}

// Apply overlays the patch onto l field by field.
func (p *DailyLogPatch) Apply(l *DailyLog) {
	if p == nil {
		return
	}
	if lc := p.LeetCode; lc != nil {
		setBool(&l.LeetCode.ContestParticipated, lc.ContestParticipated)
		setInt(&l.LeetCode.ProblemsSolved, lc.ProblemsSolved)
		if lc.ProblemDifficulty != nil {
			l.LeetCode.ProblemDifficulty = *lc.ProblemDifficulty
		}
	}
	if cc := p.CodeChef; cc != nil {
		setBool(&l.CodeChef.DailyProblem, cc.DailyProblem)
		setBool(&l.CodeChef.ContestParticipated, cc.ContestParticipated)
		setInt(&l.CodeChef.ProblemsSolved, cc.ProblemsSolved)
	}
	if cf := p.Codeforces; cf != nil {
		setInt(&l.Codeforces.ProblemsSolved, cf.ProblemsSolved)
		setBool(&l.Codeforces.ContestParticipated, cf.ContestParticipated)
		if cf.Rating != nil {
			r := *cf.Rating
			l.Codeforces.Rating = &r
		}
	}
	if g := p.Gym; g != nil {
		setBool(&l.Gym.Completed, g.Completed)
		if g.WorkoutType != nil {
			l.Gym.WorkoutType = *g.WorkoutType
		}
		setInt(&l.Gym.Duration, g.Duration)
	}
	if d := p.Diet; d != nil {
		setBool(&l.Diet.CleanDiet, d.CleanDiet)
		setFloatPtr(&l.Diet.Calories, d.Calories)
		setFloatPtr(&l.Diet.Protein, d.Protein)
		if d.Notes != nil {
			l.Diet.Notes = *d.Notes
		}
	}
	if ip := p.InternshipPrep; ip != nil {
		setBool(&l.InternshipPrep.Completed, ip.Completed)
		if ip.HoursSpent != nil {
			l.InternshipPrep.HoursSpent = *ip.HoursSpent
		}
		if ip.Topics != nil {
			l.InternshipPrep.Topics = append([]string(nil), ip.Topics...)
		}
	}
	if p.Notes != nil {
		l.Notes = *p.Notes
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloatPtr(dst **float64, v *float64) {
	if v != nil {
		f := *v
		*dst = &f
	}
}
