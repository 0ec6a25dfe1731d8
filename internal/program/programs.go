package program

// Built-in program templates. Exercises are fixed per session; switching
// between normal and ramadan mode is the only runtime change.

var normalPush = SessionTemplate{
	ID:               "normal-push",
	Name:             "Push - Chest · Shoulders · Triceps",
	Type:             SessionPush,
	GymDay:           true,
	Description:      "Machine pressing + cable isolation · Progressive overload focus",
	EstimatedMinutes: 55,
	WarmupProtocol:   "5 min incline treadmill walk (grade 5%) · 15 band pull-aparts · Shoulder circles × 10 each way · 1 warm-up set each compound @ 50%",
	Exercises: []Slot{
		{ExerciseID: "chest-press-machine", SetScheme: SetScheme{Sets: 4, RepsMin: 8, RepsMax: 12, RIRTarget: 2, RestSeconds: 120}, Notes: "Scapula retracted before every rep. Full control on return."},
		{ExerciseID: "incline-chest-press-machine", SetScheme: SetScheme{Sets: 3, RepsMin: 10, RepsMax: 12, RIRTarget: 2, RestSeconds: 90}, Notes: "Seat height: handles at clavicle level. Feel upper-chest stretch at bottom."},
		{ExerciseID: "shoulder-press-machine", SetScheme: SetScheme{Sets: 3, RepsMin: 10, RepsMax: 12, RIRTarget: 2, RestSeconds: 90}, Notes: "Back flat against pad. No lower-back hyperextension."},
		{ExerciseID: "cable-lateral-raise", SetScheme: SetScheme{Sets: 4, RepsMin: 15, RepsMax: 20, RIRTarget: 1, RestSeconds: 60}, Notes: "Lead with elbow. Stop at shoulder height. 2-3s down."},
		{ExerciseID: "face-pull", SetScheme: SetScheme{Sets: 3, RepsMin: 15, RepsMax: 20, RIRTarget: 1, RestSeconds: 60}, Notes: "Elbows high. External rotate at peak. Shoulder health priority."},
		{ExerciseID: "tricep-pushdown", SetScheme: SetScheme{Sets: 3, RepsMin: 12, RepsMax: 15, RIRTarget: 2, RestSeconds: 60}, Notes: "Elbows locked at sides. Full extension. Slow 3s eccentric."},
		{ExerciseID: "overhead-tricep-extension", SetScheme: SetScheme{Sets: 2, RepsMin: 12, RepsMax: 15, RIRTarget: 2, RestSeconds: 60}, Notes: "Elbows forward. Full stretch at bottom. Long-head emphasis."},
	},
}

var normalPull = SessionTemplate{
	ID:               "normal-pull",
	Name:             "Pull - Back · Biceps",
	Type:             SessionPull,
	GymDay:           true,
	Description:      "Vertical + horizontal machine pulls · Zero lower-back stress",
	EstimatedMinutes: 55,
	WarmupProtocol:   "5 min bike · Band dislocates × 10 · Dead hang × 20s · 1 warm-up lat pulldown set @ 50%",
	Exercises: []Slot{
		{ExerciseID: "lat-pulldown", SetScheme: SetScheme{Sets: 4, RepsMin: 8, RepsMax: 12, RIRTarget: 2, RestSeconds: 120}, Notes: "Slight lean back. Pull to upper chest. Full stretch at top."},
		{ExerciseID: "chest-supported-row", SetScheme: SetScheme{Sets: 4, RepsMin: 8, RepsMax: 12, RIRTarget: 2, RestSeconds: 120}, Notes: "Chest pinned to pad at all times. Squeeze scapulae at peak - hold 1s."},
		{ExerciseID: "cable-row", SetScheme: SetScheme{Sets: 3, RepsMin: 10, RepsMax: 12, RIRTarget: 2, RestSeconds: 90}, Notes: "Sit tall. Pull to lower ribs. Full stretch forward between reps."},
		{ExerciseID: "face-pull", SetScheme: SetScheme{Sets: 2, RepsMin: 15, RepsMax: 20, RIRTarget: 1, RestSeconds: 60}, Notes: "Always include - rear-delt and rotator cuff health."},
		{ExerciseID: "cable-curl", SetScheme: SetScheme{Sets: 3, RepsMin: 12, RepsMax: 15, RIRTarget: 2, RestSeconds: 60}, Notes: "Elbows stay forward for peak contraction. Slow 3s eccentric."},
		{ExerciseID: "hammer-curl", SetScheme: SetScheme{Sets: 3, RepsMin: 12, RepsMax: 15, RIRTarget: 2, RestSeconds: 60}, Notes: "Neutral grip throughout. Brachialis focus. No swinging."},
	},
}

var normalLegs = SessionTemplate{
	ID:               "normal-legs",
	Name:             "Legs - Quads · Hamstrings · Glutes · Calves",
	Type:             SessionLegs,
	GymDay:           true,
	Description:      "Full machine lower body - quad + hamstring + hip abductor + calf isolation",
	EstimatedMinutes: 60,
	WarmupProtocol:   "8 min stationary bike · Leg swings × 15 each direction · Hip circles × 10 each way · 1 warm-up leg press set @ 50%",
	Exercises: []Slot{
		{ExerciseID: "leg-press", SetScheme: SetScheme{Sets: 4, RepsMin: 10, RepsMax: 15, RIRTarget: 2, RestSeconds: 120}, Notes: "Feet mid-plate hip-width. Do NOT lock knees at top. Full ROM."},
		{ExerciseID: "leg-extension", SetScheme: SetScheme{Sets: 3, RepsMin: 12, RepsMax: 15, RIRTarget: 2, RestSeconds: 60}, Notes: "Controlled movement only. Squeeze quad 1s at top. 3s eccentric."},
		{ExerciseID: "seated-leg-curl", SetScheme: SetScheme{Sets: 3, RepsMin: 12, RepsMax: 15, RIRTarget: 2, RestSeconds: 60}, Notes: "Curl until heel nearly under seat. Full stretch at extension. 3s eccentric."},
		{ExerciseID: "hip-abduction", SetScheme: SetScheme{Sets: 3, RepsMin: 15, RepsMax: 20, RIRTarget: 1, RestSeconds: 60}, Notes: "Sit upright. Push outward against pads. Squeeze glute med at peak."},
		{ExerciseID: "calf-raise", SetScheme: SetScheme{Sets: 4, RepsMin: 12, RepsMax: 20, RIRTarget: 1, RestSeconds: 45}, Notes: "FULL range - complete stretch at bottom, full contraction at top. Pause 1s."},
	},
}

var normalCardioCore = SessionTemplate{
	ID:               "normal-cardio-core",
	Name:             "Cardio + Core",
	Type:             SessionCardio,
	GymDay:           true,
	Description:      "30 min Zone 2 cardio then anti-rotation + stability core work",
	EstimatedMinutes: 50,
	WarmupProtocol:   "30 MIN ZONE 2 CARDIO - choose one option:\n• Incline treadmill walk: 12% grade · 4.5–5 km/h · hands OFF the rails\n• Stationary bike: moderate resistance · can hold a conversation\n• Elliptical: upright posture · push with legs, not just arms\nTarget: breathing elevated but still able to speak in full sentences (Zone 2).",
	Exercises: []Slot{
		{ExerciseID: "pallof-press", SetScheme: SetScheme{Sets: 3, RepsMin: 10, RepsMax: 12, RIRTarget: 0, RestSeconds: 60}, Notes: "Each \"rep\" = press out + return to chest. Complete all reps one side, then switch."},
		{ExerciseID: "side-plank", SetScheme: SetScheme{Sets: 3, RepsMin: 30, RepsMax: 45, RIRTarget: 0, RestSeconds: 60}, Notes: "Reps = SECONDS held. Body straight head to heels. Do each side."},
		{ExerciseID: "bird-dog", SetScheme: SetScheme{Sets: 3, RepsMin: 10, RepsMax: 12, RIRTarget: 0, RestSeconds: 45}, Notes: "Each rep = opposite arm + leg. Hold 2s at extension. Alternate sides."},
		{ExerciseID: "dead-bug", SetScheme: SetScheme{Sets: 3, RepsMin: 8, RepsMax: 10, RIRTarget: 0, RestSeconds: 45}, Notes: "Each rep = opposite arm + leg. Lower back stays on floor at ALL times."},
	},
}

var normalUpperB = SessionTemplate{
	ID:               "normal-upper-b",
	Name:             "Upper B - Push · Pull Combination",
	Type:             SessionUpper,
	GymDay:           true,
	Description:      "Full upper body · Lower volume than dedicated push/pull days · Saturday finisher",
	EstimatedMinutes: 50,
	WarmupProtocol:   "5 min incline walk · Band pull-aparts × 15 · Dead hang × 20s · 1 warm-up set per compound @ 50%",
	Exercises: []Slot{
		{ExerciseID: "chest-press-machine", SetScheme: SetScheme{Sets: 3, RepsMin: 10, RepsMax: 12, RIRTarget: 2, RestSeconds: 90}, Notes: "Match or beat Monday's working weight."},
		{ExerciseID: "lat-pulldown", SetScheme: SetScheme{Sets: 3, RepsMin: 10, RepsMax: 12, RIRTarget: 2, RestSeconds: 90}, Notes: "Full stretch at top. Pull to upper chest."},
		{ExerciseID: "shoulder-press-machine", SetScheme: SetScheme{Sets: 3, RepsMin: 10, RepsMax: 12, RIRTarget: 2, RestSeconds: 90}, Notes: "Back flat. No lower-back extension."},
		{ExerciseID: "chest-supported-row", SetScheme: SetScheme{Sets: 3, RepsMin: 10, RepsMax: 12, RIRTarget: 2, RestSeconds: 90}, Notes: "Chest firmly on pad. Full scapular retraction at peak."},
		{ExerciseID: "cable-lateral-raise", SetScheme: SetScheme{Sets: 3, RepsMin: 15, RepsMax: 20, RIRTarget: 1, RestSeconds: 60}, Notes: "Light. Strict form. Lead with elbow."},
		{ExerciseID: "overhead-tricep-extension", SetScheme: SetScheme{Sets: 2, RepsMin: 12, RepsMax: 15, RIRTarget: 2, RestSeconds: 60}, Notes: "Elbows forward. Full stretch at bottom."},
		{ExerciseID: "cable-curl", SetScheme: SetScheme{Sets: 2, RepsMin: 12, RepsMax: 15, RIRTarget: 2, RestSeconds: 60}, Notes: "Constant tension. Slow eccentric."},
	},
}

var normalSteps = SessionTemplate{
	ID:               "normal-steps",
	Name:             "Active Recovery - Steps",
	Type:             SessionSteps,
	GymDay:           false,
	Description:      "Hit your daily step goal. Walk, hike, or light movement.",
	EstimatedMinutes: 45,
}

var normalRest = SessionTemplate{
	ID:               "normal-rest",
	Name:             "Rest Day",
	Type:             SessionRest,
	GymDay:           false,
	Description:      "Full rest or gentle mobility. No gym required.",
	EstimatedMinutes: 0,
}

var ramadanUpperA = SessionTemplate{
	ID:               "ramadan-upper-a",
	Name:             "Upper A - Chest · Back · Arms",
	Type:             SessionUpper,
	GymDay:           true,
	Description:      "Machine push + pull superset approach · ~40 min · Conservative RIR",
	EstimatedMinutes: 40,
	WarmupProtocol:   "3 min easy walk or bike · Band pull-aparts × 10 · Shoulder circles × 10 each way · 1 warm-up set per compound @ 40%",
	Exercises: []Slot{
		{ExerciseID: "chest-press-machine", SetScheme: SetScheme{Sets: 3, RepsMin: 10, RepsMax: 12, RIRTarget: 3, RestSeconds: 90}, Notes: "Reduce load 20-30% vs Normal mode. Stop well short of failure."},
		{ExerciseID: "chest-supported-row", SetScheme: SetScheme{Sets: 3, RepsMin: 10, RepsMax: 12, RIRTarget: 3, RestSeconds: 90}, Notes: "Chest on pad. Full retraction. No momentum."},
		{ExerciseID: "shoulder-press-machine", SetScheme: SetScheme{Sets: 3, RepsMin: 10, RepsMax: 12, RIRTarget: 3, RestSeconds: 90}, Notes: "Lighter than Normal. Back supported. Controlled press."},
		{ExerciseID: "cable-lateral-raise", SetScheme: SetScheme{Sets: 2, RepsMin: 15, RepsMax: 20, RIRTarget: 2, RestSeconds: 60}, Notes: "Light pump work. Strict form."},
		{ExerciseID: "face-pull", SetScheme: SetScheme{Sets: 2, RepsMin: 15, RepsMax: 20, RIRTarget: 2, RestSeconds: 60}, Notes: "Always include - shoulder health regardless of fatigue."},
		{ExerciseID: "tricep-pushdown", SetScheme: SetScheme{Sets: 2, RepsMin: 12, RepsMax: 15, RIRTarget: 3, RestSeconds: 60}, Notes: "Light. No strain. Full lockout."},
		{ExerciseID: "cable-curl", SetScheme: SetScheme{Sets: 2, RepsMin: 12, RepsMax: 15, RIRTarget: 3, RestSeconds: 60}, Notes: "Constant tension. No swinging. Stop well short of failure."},
	},
}

var ramadanLowerA = SessionTemplate{
	ID:               "ramadan-lower-a",
	Name:             "Lower A - Quads · Hamstrings · Calves",
	Type:             SessionLower,
	GymDay:           true,
	Description:      "Machine lower body - full quad + hamstring + calf coverage in 40 min",
	EstimatedMinutes: 40,
	WarmupProtocol:   "5 min easy bike · Leg swings × 10 each direction · Hip circles × 10 each way · 1 warm-up leg press set @ 40%",
	Exercises: []Slot{
		{ExerciseID: "leg-press", SetScheme: SetScheme{Sets: 3, RepsMin: 12, RepsMax: 15, RIRTarget: 3, RestSeconds: 90}, Notes: "Moderate load. Full ROM. Don't lock knees at top."},
		{ExerciseID: "leg-extension", SetScheme: SetScheme{Sets: 3, RepsMin: 12, RepsMax: 15, RIRTarget: 3, RestSeconds: 60}, Notes: "Controlled. Squeeze quad at top. 3s eccentric."},
		{ExerciseID: "seated-leg-curl", SetScheme: SetScheme{Sets: 3, RepsMin: 12, RepsMax: 15, RIRTarget: 3, RestSeconds: 60}, Notes: "Full hamstring stretch. Control the negative."},
		{ExerciseID: "hip-abduction", SetScheme: SetScheme{Sets: 3, RepsMin: 15, RepsMax: 20, RIRTarget: 2, RestSeconds: 60}, Notes: "Sit tall. No momentum. Squeeze glute med."},
		{ExerciseID: "calf-raise", SetScheme: SetScheme{Sets: 3, RepsMin: 15, RepsMax: 20, RIRTarget: 1, RestSeconds: 45}, Notes: "Full ROM. Pause at top."},
	},
}

var ramadanUpperB = SessionTemplate{
	ID:               "ramadan-upper-b",
	Name:             "Upper B - Shoulders · Back · Arms",
	Type:             SessionUpper,
	GymDay:           true,
	Description:      "Upper B variation - incline press + lat pulldown + arm isolation",
	EstimatedMinutes: 40,
	WarmupProtocol:   "3 min walk · Band dislocates × 10 · Dead hang × 15s · 1 warm-up lat pulldown set @ 40%",
	Exercises: []Slot{
		{ExerciseID: "incline-chest-press-machine", SetScheme: SetScheme{Sets: 3, RepsMin: 10, RepsMax: 12, RIRTarget: 3, RestSeconds: 90}, Notes: "Upper chest focus. Feel stretch at bottom. Conservative load."},
		{ExerciseID: "lat-pulldown", SetScheme: SetScheme{Sets: 3, RepsMin: 10, RepsMax: 12, RIRTarget: 3, RestSeconds: 90}, Notes: "Wide or neutral grip. Pull to upper chest. Full stretch at top."},
		{ExerciseID: "shoulder-press-machine", SetScheme: SetScheme{Sets: 2, RepsMin: 10, RepsMax: 12, RIRTarget: 3, RestSeconds: 90}, Notes: "Lighter second shoulder session of the week."},
		{ExerciseID: "cable-row", SetScheme: SetScheme{Sets: 3, RepsMin: 10, RepsMax: 12, RIRTarget: 3, RestSeconds: 90}, Notes: "Sit tall. No rounding. Full retraction."},
		{ExerciseID: "face-pull", SetScheme: SetScheme{Sets: 2, RepsMin: 15, RepsMax: 20, RIRTarget: 2, RestSeconds: 60}, Notes: "Always in every session. Shoulder health."},
		{ExerciseID: "overhead-tricep-extension", SetScheme: SetScheme{Sets: 2, RepsMin: 12, RepsMax: 15, RIRTarget: 3, RestSeconds: 60}, Notes: "Long-head focus. Elbows forward. Stretch at bottom."},
		{ExerciseID: "hammer-curl", SetScheme: SetScheme{Sets: 2, RepsMin: 12, RepsMax: 15, RIRTarget: 3, RestSeconds: 60}, Notes: "Neutral grip. No swinging. Brachialis + brachioradialis."},
	},
}

var ramadanLowerB = SessionTemplate{
	ID:               "ramadan-lower-b",
	Name:             "Lower B - Glutes · Hamstrings · Core",
	Type:             SessionLower,
	GymDay:           true,
	Description:      "Hip-dominant lower session + core finisher - posterior chain focus",
	EstimatedMinutes: 40,
	WarmupProtocol:   "5 min easy bike · Glute bridges × 15 bodyweight · Leg swings × 10 each side",
	Exercises: []Slot{
		{ExerciseID: "leg-press", SetScheme: SetScheme{Sets: 3, RepsMin: 12, RepsMax: 15, RIRTarget: 3, RestSeconds: 90}, Notes: "Feet slightly higher on plate vs Lower A - shifts load to glutes/hamstrings."},
		{ExerciseID: "seated-leg-curl", SetScheme: SetScheme{Sets: 3, RepsMin: 12, RepsMax: 15, RIRTarget: 3, RestSeconds: 60}, Notes: "Full hamstring ROM. Resist on the way back up."},
		{ExerciseID: "hip-abduction", SetScheme: SetScheme{Sets: 3, RepsMin: 15, RepsMax: 20, RIRTarget: 2, RestSeconds: 60}, Notes: "Slow and controlled. Glute med focus."},
		{ExerciseID: "calf-raise", SetScheme: SetScheme{Sets: 3, RepsMin: 15, RepsMax: 20, RIRTarget: 1, RestSeconds: 45}, Notes: "Full ROM. Pause at top."},
		{ExerciseID: "pallof-press", SetScheme: SetScheme{Sets: 2, RepsMin: 10, RepsMax: 12, RIRTarget: 0, RestSeconds: 60}, Notes: "Anti-rotation core finisher. Both sides. Resist rotation."},
		{ExerciseID: "dead-bug", SetScheme: SetScheme{Sets: 2, RepsMin: 8, RepsMax: 10, RIRTarget: 0, RestSeconds: 45}, Notes: "Lower back stays on floor. Slow. Safe core finisher."},
	},
}

var ramadanSteps = SessionTemplate{
	ID:               "ramadan-steps",
	Name:             "Light Walk - Steps",
	Type:             SessionSteps,
	GymDay:           false,
	Description:      "Post-Iftar walk only. Keep it gentle - 6,000–8,000 steps. No intense cardio.",
	EstimatedMinutes: 30,
}

var ramadanRest = SessionTemplate{
	ID:               "ramadan-rest",
	Name:             "Rest Day",
	Type:             SessionRest,
	GymDay:           false,
	Description:      "Full rest. Prioritise sleep and hydration between Iftar and Suhoor.",
	EstimatedMinutes: 0,
}

var normal5Day = Program{
	ID:          "normal-5day",
	Name:        "Normal - 5-Day Machine Program",
	Mode:        ModeNormal,
	Description: "5 gym days · Push · Pull · Legs · Cardio+Core · Upper B · Machine-first · Progressive overload",
	Schedule: WeeklySchedule{
		"normal-push",        // MON
		"normal-pull",        // TUE
		"normal-legs",        // WED
		"normal-steps",       // THU
		"normal-cardio-core", // FRI
		"normal-upper-b",     // SAT
		"normal-rest",        // SUN
	},
	Sessions: []SessionTemplate{
		normalPush,
		normalPull,
		normalLegs,
		normalCardioCore,
		normalUpperB,
		normalSteps,
		normalRest,
	},
	Notes: "Progress rule: add weight when you hit the top of the rep range at RIR ≥ 2 for 2 consecutive sessions.\n" +
		"Pain rule: pain > 3/10 → use replacement. Pain > 6/10 → skip the movement.",
}

var ramadan4Day = Program{
	ID:          "ramadan-4day",
	Name:        "Ramadan - 4-Day Machine Program",
	Mode:        ModeRamadan,
	Description: "4 gym days · Upper A · Lower A · Upper B · Lower B · Maintenance · Train post-Iftar",
	Schedule: WeeklySchedule{
		"ramadan-upper-a", // MON
		"ramadan-lower-a", // TUE
		"ramadan-steps",   // WED
		"ramadan-upper-b", // THU
		"ramadan-lower-b", // FRI
		"ramadan-steps",   // SAT
		"ramadan-rest",    // SUN
	},
	Sessions: []SessionTemplate{
		ramadanUpperA,
		ramadanLowerA,
		ramadanUpperB,
		ramadanLowerB,
		ramadanSteps,
		ramadanRest,
	},
	Notes: "Goal is MAINTENANCE: preserve muscle, expect no new gains during Ramadan.\n" +
		"Keep RIR ≥ 3. Train 2-3 h after Iftar when glycogen and hydration are restored.\n" +
		"Pain rule: pain > 3/10 → switch to replacement. Pain > 6/10 → skip movement.",
}
