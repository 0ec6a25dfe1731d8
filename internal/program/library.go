package program

// library is the built-in exercise library. Program slots reference these ids;
// the rest serve as replacements.
var library = []Exercise{
	{
		ID:        "barbell-bench-press",
		Name:      "Barbell Bench Press",
		Category:  CategoryCompound,
		Primary:   []Muscle{"chest"},
		Secondary: []Muscle{"front-delts", "triceps"},
		Equipment: []string{"barbell"},
		Replacements: []Replacement{
			{ExerciseID: "db-bench-press", Reason: "Use if: shoulder pain > 3/10 or no spotter"},
			{ExerciseID: "incline-db-press", Reason: "Use if: AC joint pain or want upper-chest focus"},
		},
		SafetyNote: "Pain > 3/10 during pressing → switch to DB Bench Press immediately.",
	},
	{
		ID:        "overhead-press",
		Name:      "Barbell Overhead Press",
		Category:  CategoryCompound,
		Primary:   []Muscle{"front-delts", "side-delts"},
		Secondary: []Muscle{"triceps", "traps"},
		Equipment: []string{"barbell"},
		Replacements: []Replacement{
			{ExerciseID: "db-bench-press", Reason: "Use if: shoulder impingement (seated press is gentler)"},
			{ExerciseID: "lateral-raise", Reason: "Use if: pressing causes pain - isolate delts only"},
		},
		SafetyNote: "Seated DB press is safer if standing OHP causes lower-back pain.",
	},
	{
		ID:        "incline-db-press",
		Name:      "Incline Dumbbell Press",
		Category:  CategoryCompound,
		Primary:   []Muscle{"chest"},
		Secondary: []Muscle{"front-delts", "triceps"},
		Equipment: []string{"dumbbell"},
		Replacements: []Replacement{
			{ExerciseID: "db-bench-press", Reason: "Use if: upper chest is painful - flat press"},
			{ExerciseID: "barbell-bench-press", Reason: "Use if: no dumbbells available"},
		},
	},
	{
		ID:        "db-bench-press",
		Name:      "Dumbbell Bench Press",
		Category:  CategoryCompound,
		Primary:   []Muscle{"chest"},
		Secondary: []Muscle{"front-delts", "triceps"},
		Equipment: []string{"dumbbell"},
		Replacements: []Replacement{
			{ExerciseID: "barbell-bench-press", Reason: "Use if: no dumbbells available"},
			{ExerciseID: "incline-db-press", Reason: "Use if: want more upper chest focus"},
		},
	},
	{
		ID:        "lateral-raise",
		Name:      "Dumbbell Lateral Raise",
		Category:  CategoryIsolation,
		Primary:   []Muscle{"side-delts"},
		Secondary: []Muscle{"traps"},
		Equipment: []string{"dumbbell"},
		Replacements: []Replacement{
			{ExerciseID: "face-pull", Reason: "Use if: lateral raise aggravates shoulder - face pull is safer"},
		},
	},
	{
		ID:        "tricep-pushdown",
		Name:      "Cable Tricep Pushdown",
		Category:  CategoryIsolation,
		Primary:   []Muscle{"triceps"},
		Secondary: nil,
		Equipment: []string{"cable"},
		Replacements: []Replacement{
			{ExerciseID: "skull-crushers", Reason: "Use if: no cable machine"},
			{ExerciseID: "overhead-tricep-extension", Reason: "Use if: want more long-head emphasis"},
		},
	},
	{
		ID:        "skull-crushers",
		Name:      "EZ-Bar Skull Crushers",
		Category:  CategoryIsolation,
		Primary:   []Muscle{"triceps"},
		Secondary: nil,
		Equipment: []string{"ez-bar"},
		Replacements: []Replacement{
			{ExerciseID: "tricep-pushdown", Reason: "Use if: elbow pain on skull crushers"},
			{ExerciseID: "overhead-tricep-extension", Reason: "Use if: want long-head focus with less elbow stress"},
		},
		SafetyNote: "Elbow pain > 3/10? Switch to pushdown immediately - skull crushers have high elbow torque.",
	},
	{
		ID:        "overhead-tricep-extension",
		Name:      "Overhead Tricep Extension",
		Category:  CategoryIsolation,
		Primary:   []Muscle{"triceps"},
		Secondary: nil,
		Equipment: []string{"dumbbell", "cable"},
		Replacements: []Replacement{
			{ExerciseID: "tricep-pushdown", Reason: "Use if: shoulder can't tolerate overhead position"},
			{ExerciseID: "skull-crushers", Reason: "Use if: no cable or comfortable with lying position"},
		},
	},
	{
		ID:        "weighted-pullup",
		Name:      "Weighted Pull-Up",
		Category:  CategoryCompound,
		Primary:   []Muscle{"lats", "upper-back"},
		Secondary: []Muscle{"biceps", "rear-delts"},
		Equipment: []string{"bodyweight"},
		Replacements: []Replacement{
			{ExerciseID: "lat-pulldown", Reason: "Use if: can't do 5+ bodyweight pull-ups yet"},
			{ExerciseID: "cable-row", Reason: "Use if: shoulder pain on overhead pulling"},
		},
	},
	{
		ID:        "lat-pulldown",
		Name:      "Lat Pulldown",
		Category:  CategoryCompound,
		Primary:   []Muscle{"lats"},
		Secondary: []Muscle{"upper-back", "biceps"},
		Equipment: []string{"cable"},
		Replacements: []Replacement{
			{ExerciseID: "weighted-pullup", Reason: "Use if: stronger alternative, no cable needed"},
			{ExerciseID: "cable-row", Reason: "Use if: shoulder pain on overhead pulling"},
		},
	},
	{
		ID:        "barbell-row",
		Name:      "Barbell Bent-Over Row",
		Category:  CategoryCompound,
		Primary:   []Muscle{"upper-back", "lats"},
		Secondary: []Muscle{"biceps", "rear-delts", "erectors"},
		Equipment: []string{"barbell"},
		Replacements: []Replacement{
			{ExerciseID: "cable-row", Reason: "Use if: lower back pain > 3/10 during hinge"},
			{ExerciseID: "lat-pulldown", Reason: "Use if: no barbell / lumbar strain"},
		},
		SafetyNote: "Lower back pain > 3/10? Sit down and use cable or machine row instead.",
	},
	{
		ID:        "cable-row",
		Name:      "Seated Cable Row",
		Category:  CategoryCompound,
		Primary:   []Muscle{"upper-back", "lats"},
		Secondary: []Muscle{"biceps", "rear-delts"},
		Equipment: []string{"cable"},
		Replacements: []Replacement{
			{ExerciseID: "barbell-row", Reason: "Use if: no cable machine"},
			{ExerciseID: "lat-pulldown", Reason: "Use if: prefer vertical pull"},
		},
	},
	{
		ID:        "face-pull",
		Name:      "Cable Face Pull",
		Category:  CategoryIsolation,
		Primary:   []Muscle{"rear-delts", "traps"},
		Secondary: []Muscle{"biceps"},
		Equipment: []string{"cable"},
		Replacements: []Replacement{
			{ExerciseID: "lateral-raise", Reason: "Use if: no cable - target side delts instead"},
		},
	},
	{
		ID:        "db-curl",
		Name:      "Dumbbell Bicep Curl",
		Category:  CategoryIsolation,
		Primary:   []Muscle{"biceps"},
		Secondary: nil,
		Equipment: []string{"dumbbell"},
		Replacements: []Replacement{
			{ExerciseID: "hammer-curl", Reason: "Use if: wrist pain - neutral grip is more comfortable"},
			{ExerciseID: "cable-curl", Reason: "Use if: want constant tension through full ROM"},
		},
	},
	{
		ID:        "hammer-curl",
		Name:      "Hammer Curl",
		Category:  CategoryIsolation,
		Primary:   []Muscle{"biceps"},
		Secondary: []Muscle{"brachialis"},
		Equipment: []string{"dumbbell"},
		Replacements: []Replacement{
			{ExerciseID: "db-curl", Reason: "Use if: want more bicep peak focus"},
			{ExerciseID: "cable-curl", Reason: "Use if: want constant tension"},
		},
	},
	{
		ID:        "cable-curl",
		Name:      "Cable Curl",
		Category:  CategoryIsolation,
		Primary:   []Muscle{"biceps"},
		Secondary: nil,
		Equipment: []string{"cable"},
		Replacements: []Replacement{
			{ExerciseID: "db-curl", Reason: "Use if: no cable machine"},
			{ExerciseID: "hammer-curl", Reason: "Use if: prefer neutral grip"},
		},
	},
	{
		ID:        "barbell-squat",
		Name:      "Barbell Back Squat",
		Category:  CategoryCompound,
		Primary:   []Muscle{"quads"},
		Secondary: []Muscle{"hamstrings", "glutes", "erectors"},
		Equipment: []string{"barbell"},
		Replacements: []Replacement{
			{ExerciseID: "leg-press", Reason: "Use if: knee pain > 3/10 or lower back pain"},
			{ExerciseID: "goblet-squat", Reason: "Use if: form breakdown / need to reduce load significantly"},
		},
		SafetyNote: "Knee or back pain > 3/10? Move to leg press immediately - reduce ego, protect joints.",
	},
	{
		ID:        "goblet-squat",
		Name:      "Goblet Squat",
		Category:  CategoryCompound,
		Primary:   []Muscle{"quads"},
		Secondary: []Muscle{"glutes", "abs"},
		Equipment: []string{"dumbbell"},
		Replacements: []Replacement{
			{ExerciseID: "barbell-squat", Reason: "Use if: ready to progress to barbell"},
			{ExerciseID: "leg-press", Reason: "Use if: want more quad isolation"},
		},
	},
	{
		ID:        "romanian-deadlift",
		Name:      "Romanian Deadlift (RDL)",
		Category:  CategoryCompound,
		Primary:   []Muscle{"hamstrings"},
		Secondary: []Muscle{"glutes", "erectors"},
		Equipment: []string{"barbell"},
		Replacements: []Replacement{
			{ExerciseID: "leg-curl", Reason: "Use if: hamstring strain - isolate without loading spine"},
			{ExerciseID: "hip-thrust", Reason: "Use if: lower back pain - glute dominant, low back stress"},
		},
		SafetyNote: "Sharp lower back pain? Stop immediately. Use leg curl instead until evaluated.",
	},
	{
		ID:        "leg-press",
		Name:      "Leg Press",
		Category:  CategoryCompound,
		Primary:   []Muscle{"quads"},
		Secondary: []Muscle{"glutes", "hamstrings"},
		Equipment: []string{"machine"},
		Replacements: []Replacement{
			{ExerciseID: "barbell-squat", Reason: "Use if: no leg press machine"},
			{ExerciseID: "goblet-squat", Reason: "Use if: no equipment available"},
		},
	},
	{
		ID:        "leg-curl",
		Name:      "Lying Leg Curl",
		Category:  CategoryIsolation,
		Primary:   []Muscle{"hamstrings"},
		Secondary: nil,
		Equipment: []string{"machine"},
		Replacements: []Replacement{
			{ExerciseID: "romanian-deadlift", Reason: "Use if: no leg curl machine"},
			{ExerciseID: "hip-thrust", Reason: "Use if: hamstring is strained - hip thrust is safer"},
		},
	},
	{
		ID:        "leg-extension",
		Name:      "Leg Extension",
		Category:  CategoryIsolation,
		Primary:   []Muscle{"quads"},
		Secondary: nil,
		Equipment: []string{"machine"},
		Replacements: []Replacement{
			{ExerciseID: "leg-press", Reason: "Use if: knee pain on leg extension"},
			{ExerciseID: "goblet-squat", Reason: "Use if: no machine - full quad via squat pattern"},
		},
		SafetyNote: "Knee pain > 3/10? Switch to leg press - lower shear force on patella.",
	},
	{
		ID:        "hip-thrust",
		Name:      "Barbell Hip Thrust",
		Category:  CategoryCompound,
		Primary:   []Muscle{"glutes"},
		Secondary: []Muscle{"hamstrings"},
		Equipment: []string{"barbell"},
		Replacements: []Replacement{
			{ExerciseID: "romanian-deadlift", Reason: "Use if: no barbell/bench setup"},
			{ExerciseID: "leg-curl", Reason: "Use if: hip thrust setup unavailable"},
		},
	},
	{
		ID:        "calf-raise",
		Name:      "Standing Calf Raise",
		Category:  CategoryIsolation,
		Primary:   []Muscle{"calves"},
		Secondary: nil,
		Equipment: []string{"machine", "bodyweight"},
	},
	{
		ID:        "chest-press-machine",
		Name:      "Chest Press Machine",
		Category:  CategoryCompound,
		Primary:   []Muscle{"chest"},
		Secondary: []Muscle{"front-delts", "triceps"},
		Equipment: []string{"machine"},
		Replacements: []Replacement{
			{ExerciseID: "incline-chest-press-machine", Reason: "Use if: flat press aggravates shoulder - incline reduces impingement risk"},
			{ExerciseID: "db-bench-press", Reason: "Use if: no machine - dumbbell allows natural path"},
		},
		SafetyNote: "Shoulder pain > 3/10? Widen grip, reduce weight, or switch to incline machine immediately.",
	},
	{
		ID:        "incline-chest-press-machine",
		Name:      "Incline Chest Press Machine",
		Category:  CategoryCompound,
		Primary:   []Muscle{"chest"},
		Secondary: []Muscle{"front-delts", "triceps"},
		Equipment: []string{"machine"},
		Replacements: []Replacement{
			{ExerciseID: "chest-press-machine", Reason: "Use if: incline angle aggravates shoulder - use flat machine"},
			{ExerciseID: "incline-db-press", Reason: "Use if: no incline machine - dumbbells allow ROM adjustment"},
		},
		SafetyNote: "Upper shoulder pain? Lower incline angle or switch to flat chest press machine.",
	},
	{
		ID:        "shoulder-press-machine",
		Name:      "Shoulder Press Machine",
		Category:  CategoryCompound,
		Primary:   []Muscle{"front-delts", "side-delts"},
		Secondary: []Muscle{"triceps", "traps"},
		Equipment: []string{"machine"},
		Replacements: []Replacement{
			{ExerciseID: "cable-lateral-raise", Reason: "Use if: pressing causes shoulder pain - isolation only, no impingement"},
			{ExerciseID: "face-pull", Reason: "Use if: all pressing is painful - external rotation health work"},
		},
		SafetyNote: "Any shoulder pain > 3/10? Drop to cable lateral raises + face pulls only. No overhead pressing.",
	},
	{
		ID:        "cable-lateral-raise",
		Name:      "Cable Lateral Raise",
		Category:  CategoryIsolation,
		Primary:   []Muscle{"side-delts"},
		Secondary: []Muscle{"traps"},
		Equipment: []string{"cable"},
		Replacements: []Replacement{
			{ExerciseID: "lateral-raise", Reason: "Use if: no single-cable station - dumbbell version"},
			{ExerciseID: "face-pull", Reason: "Use if: lateral raise aggravates shoulder - rear delt + health focus"},
		},
	},
	{
		ID:        "chest-supported-row",
		Name:      "Chest-Supported Row",
		Category:  CategoryCompound,
		Primary:   []Muscle{"upper-back", "lats"},
		Secondary: []Muscle{"biceps", "rear-delts"},
		Equipment: []string{"machine"},
		Replacements: []Replacement{
			{ExerciseID: "cable-row", Reason: "Use if: no chest-supported machine - seated cable row"},
			{ExerciseID: "lat-pulldown", Reason: "Use if: prefer vertical pull - lat pulldown"},
		},
		SafetyNote: "Chest-supported = ZERO lower back load. This is the safest row for anyone with back history.",
	},
	{
		ID:        "seated-leg-curl",
		Name:      "Seated Leg Curl",
		Category:  CategoryIsolation,
		Primary:   []Muscle{"hamstrings"},
		Secondary: nil,
		Equipment: []string{"machine"},
		Replacements: []Replacement{
			{ExerciseID: "leg-curl", Reason: "Use if: only lying leg curl available"},
			{ExerciseID: "romanian-deadlift", Reason: "Use if: no leg curl machine - loaded hamstring stretch"},
		},
		SafetyNote: "Hamstring pull or cramping? Reduce ROM and weight. Sharp pain → stop immediately.",
	},
	{
		ID:        "hip-abduction",
		Name:      "Hip Abduction Machine",
		Category:  CategoryIsolation,
		Primary:   []Muscle{"glutes"},
		Secondary: nil,
		Equipment: []string{"machine"},
		Replacements: []Replacement{
			{ExerciseID: "hip-thrust", Reason: "Use if: no machine - barbell hip thrust for glute activation"},
			{ExerciseID: "calf-raise", Reason: "Use if: substituting - add calf volume instead"},
		},
	},
	{
		ID:        "pallof-press",
		Name:      "Pallof Press",
		Category:  CategoryCompound,
		Primary:   []Muscle{"abs", "erectors"},
		Secondary: []Muscle{"glutes"},
		Equipment: []string{"cable"},
		Replacements: []Replacement{
			{ExerciseID: "side-plank", Reason: "Use if: no cable - side plank builds same lateral anti-rotation strength"},
			{ExerciseID: "dead-bug", Reason: "Use if: want supine core work - anti-extension pattern"},
		},
	},
	{
		ID:        "side-plank",
		Name:      "Side Plank",
		Category:  CategoryBodyweight,
		Primary:   []Muscle{"abs", "erectors"},
		Secondary: []Muscle{"glutes"},
		Equipment: []string{"bodyweight"},
		Replacements: []Replacement{
			{ExerciseID: "pallof-press", Reason: "Use if: shoulder can't support bodyweight - cable anti-rotation instead"},
			{ExerciseID: "dead-bug", Reason: "Use if: shoulder pain - supine anti-extension core work"},
		},
	},
	{
		ID:        "bird-dog",
		Name:      "Bird Dog",
		Category:  CategoryBodyweight,
		Primary:   []Muscle{"erectors", "abs"},
		Secondary: []Muscle{"glutes"},
		Equipment: []string{"bodyweight"},
		Replacements: []Replacement{
			{ExerciseID: "dead-bug", Reason: "Use if: wrist pain on the floor - supine version same movement pattern"},
			{ExerciseID: "pallof-press", Reason: "Use if: floor work unavailable - standing anti-rotation"},
		},
	},
	{
		ID:        "dead-bug",
		Name:      "Dead Bug",
		Category:  CategoryBodyweight,
		Primary:   []Muscle{"abs", "hip-flexors"},
		Secondary: []Muscle{"erectors"},
		Equipment: []string{"bodyweight"},
		Replacements: []Replacement{
			{ExerciseID: "bird-dog", Reason: "Use if: prefer quadruped position - same anti-extension pattern"},
			{ExerciseID: "pallof-press", Reason: "Use if: standing core work preferred"},
		},
		SafetyNote: "If lower back lifts off floor → you've gone too far. Reduce range of motion.",
	},
}
