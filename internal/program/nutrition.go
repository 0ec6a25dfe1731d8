package program

import (
	"slices"
)

// MealTemplate is a suggested meal within a day's nutrition plan.
type MealTemplate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	CaloriesMin int      `json:"caloriesMin"`
	CaloriesMax int      `json:"caloriesMax"`
	ProteinG    int      `json:"proteinG"`
	Timing      string   `json:"timing"`
	Suggestions []string `json:"suggestions"`
	Note        string   `json:"note,omitempty"`
}

// NutritionTarget is the prescribed daily intake for a mode. It is guidance
// shown to the user, not something they edit.
type NutritionTarget struct {
	Mode        Mode           `json:"mode"`
	CaloriesMin int            `json:"caloriesMin"`
	CaloriesMax int            `json:"caloriesMax"`
	ProteinG    int            `json:"proteinG"`
	CarbsGMin   int            `json:"carbsGMin"`
	CarbsGMax   int            `json:"carbsGMax"`
	FatGMin     int            `json:"fatGMin"`
	FatGMax     int            `json:"fatGMax"`
	WaterMlMin  int            `json:"waterMlMin"`
	TopRule     string         `json:"topRule"`
	Meals       []MealTemplate `json:"meals"`
}

func (t NutritionTarget) clone() NutritionTarget {
	t.Meals = slices.Clone(t.Meals)
	for i := range t.Meals {
		t.Meals[i].Suggestions = slices.Clone(t.Meals[i].Suggestions)
	}
	return t
}

var normalNutrition = NutritionTarget{
	Mode:        ModeNormal,
	CaloriesMin: 2400,
	CaloriesMax: 2700,
	ProteinG:    200,
	CarbsGMin:   220,
	CarbsGMax:   280,
	FatGMin:     65,
	FatGMax:     85,
	WaterMlMin:  3000,
	TopRule:     "Hit 200 g protein every day - everything else is secondary.",
	Meals: []MealTemplate{
		{
			ID:          "normal-breakfast",
			Name:        "Breakfast",
			CaloriesMin: 500,
			CaloriesMax: 650,
			ProteinG:    45,
			Timing:      "30-60 min after waking",
			Suggestions: []string{
				"4 whole eggs + 2 egg whites scrambled + 2 slices wholegrain toast",
				"200 g Greek yoghurt (2%) + 40 g oats + 1 banana",
				"200 g cottage cheese + 50 g granola + mixed berries",
			},
			Note: "Prioritise protein and complex carbs. Avoid high-fat + high-carb combos at this meal.",
		},
		{
			ID:          "normal-preworkout",
			Name:        "Pre-Workout Meal",
			CaloriesMin: 350,
			CaloriesMax: 450,
			ProteinG:    35,
			Timing:      "60-90 min before training",
			Suggestions: []string{
				"150 g chicken breast + 120 g cooked white rice + salad",
				"200 g tuna + 1 medium potato + cucumber",
				"150 g lean mince (5% fat) + 80 g pasta + tomato sauce",
			},
			Note: "Moderate carbs, moderate protein, LOW fat (fat slows gastric emptying).",
		},
		{
			ID:          "normal-postworkout",
			Name:        "Post-Workout Meal",
			CaloriesMin: 500,
			CaloriesMax: 650,
			ProteinG:    50,
			Timing:      "Within 60 min of finishing training",
			Suggestions: []string{
				"200 g chicken breast + 150 g cooked white rice + vegetables",
				"200 g salmon + large sweet potato + broccoli",
				"30 g whey protein shake + 150 g cooked pasta + bolognese",
			},
			Note: "Biggest protein hit of the day. White rice or potato is preferred, fast carbs replenish glycogen.",
		},
		{
			ID:          "normal-lunch",
			Name:        "Lunch",
			CaloriesMin: 500,
			CaloriesMax: 650,
			ProteinG:    40,
			Timing:      "Midday (if not your pre- or post-workout slot)",
			Suggestions: []string{
				"200 g grilled chicken + large mixed salad + olive oil dressing",
				"200 g canned tuna + 100 g quinoa + roasted veggies",
				"3 turkey + avocado wraps (wholegrain tortillas)",
			},
		},
		{
			ID:          "normal-dinner",
			Name:        "Dinner",
			CaloriesMin: 500,
			CaloriesMax: 650,
			ProteinG:    40,
			Timing:      "Evening, 2-3 h before bed",
			Suggestions: []string{
				"200 g beef steak (sirloin) + large salad + sweet potato",
				"200 g white fish (cod/tilapia) + roasted vegetables + brown rice",
				"200 g shrimp stir-fry + 100 g cooked noodles + broccoli",
			},
			Note: "Aim for complex carbs + veg. Avoid large desserts, saves calories without sacrificing muscle.",
		},
		{
			ID:          "normal-snack",
			Name:        "Snack / Shake",
			CaloriesMin: 150,
			CaloriesMax: 300,
			ProteinG:    25,
			Timing:      "Mid-morning or mid-afternoon if needed",
			Suggestions: []string{
				"30 g whey protein + 250 ml semi-skimmed milk",
				"200 g cottage cheese + handful of almonds",
				"2 rice cakes + 2 tbsp peanut butter + 1 scoop protein powder in water",
			},
		},
	},
}

var ramadanNutrition = NutritionTarget{
	Mode:        ModeRamadan,
	CaloriesMin: 2000,
	CaloriesMax: 2400,
	ProteinG:    200,
	CarbsGMin:   180,
	CarbsGMax:   240,
	FatGMin:     55,
	FatGMax:     75,
	// higher, daytime fasting dehydrates
	WaterMlMin: 3500,
	TopRule:    "Protein is the priority. Distribute 200 g across Suhoor, Iftar, and post-workout.",
	Meals: []MealTemplate{
		{
			ID:          "ramadan-suhoor",
			Name:        "Suhoor (Pre-Dawn)",
			CaloriesMin: 600,
			CaloriesMax: 750,
			ProteinG:    55,
			Timing:      "30-60 min before Fajr",
			Suggestions: []string{
				"4 whole eggs scrambled + 2 slices wholegrain toast + 200 g Greek yoghurt",
				"200 g cottage cheese + 60 g oats + 1 banana + handful of almonds",
				"150 g chicken breast + 100 g brown rice + salad + 30 g peanut butter",
			},
			Note: "This is your most important meal. Load up on:\n" +
				"• Slow-digesting carbs (oats, brown rice, wholegrain bread), sustains energy longer\n" +
				"• Casein-rich proteins (cottage cheese, Greek yoghurt), slow release over the fast\n" +
				"• Healthy fats (nut butter, nuts), further slows digestion\n" +
				"• 750-1 000 ml water",
		},
		{
			ID:          "ramadan-iftar-break",
			Name:        "Iftar - Break Fast",
			CaloriesMin: 200,
			CaloriesMax: 350,
			ProteinG:    15,
			Timing:      "Immediately at Maghrib (sunset)",
			Suggestions: []string{
				"3-5 dates + 500 ml water + small bowl of soup or broth",
				"3 dates + 250 ml laban (buttermilk) + handful of mixed nuts",
				"3-5 dates + 500 ml water + 1 small banana",
			},
			Note: "Do NOT eat a large meal immediately. Dates replenish glycogen fast. " +
				"Drink 500 ml water right away. Wait 15-20 min before the main Iftar meal.",
		},
		{
			ID:          "ramadan-iftar-main",
			Name:        "Iftar - Main Meal",
			CaloriesMin: 700,
			CaloriesMax: 900,
			ProteinG:    60,
			Timing:      "15-30 min after breaking fast",
			Suggestions: []string{
				"250 g grilled chicken + large portion of roasted veg + 150 g cooked white rice",
				"250 g salmon + sweet potato + salad with olive oil",
				"250 g lean beef/lamb + 120 g couscous + grilled vegetables",
			},
			Note: "Biggest meal of the day. Prioritise lean protein + complex carbs. Keep fried foods minimal.",
		},
		{
			ID:          "ramadan-postworkout",
			Name:        "Post-Workout Meal",
			CaloriesMin: 400,
			CaloriesMax: 500,
			ProteinG:    45,
			Timing:      "Within 45 min of finishing training (post-Iftar session)",
			Suggestions: []string{
				"30 g whey protein shake + 150 g cooked white rice + vegetables",
				"200 g chicken breast + 1 medium potato + 500 ml water",
				"200 g tuna + 100 g pasta + tomato-based sauce",
			},
			Note: "Train 2-3 h after Iftar. Fast carbs (white rice, potato) are ideal for glycogen reload.",
		},
		{
			ID:          "ramadan-late-dinner",
			Name:        "Late Dinner / Pre-Sleep Snack",
			CaloriesMin: 350,
			CaloriesMax: 450,
			ProteinG:    35,
			Timing:      "1-2 h before Suhoor, or before sleep",
			Suggestions: []string{
				"200 g cottage cheese + 1 tbsp honey + 250 ml milk",
				"4 boiled eggs + 1 slice wholegrain bread + 250 ml milk",
				"200 g Greek yoghurt + 30 g almonds + small handful of berries",
			},
			Note: "Casein-rich foods (cottage cheese, Greek yoghurt) digest slowly, ideal before the long overnight fast. " +
				"Drink another 500-750 ml water at this meal.",
		},
	},
}
