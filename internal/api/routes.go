package api

import (
	"github.com/gorilla/mux"
)

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/plan/today", handler.HandlePlanToday).Methods("GET", "OPTIONS")
	r.HandleFunc("/plan/day/{date}", handler.HandlePlanDay).Methods("GET", "OPTIONS")
	r.HandleFunc("/plan/week/{date}", handler.HandlePlanWeek).Methods("GET", "OPTIONS")

	r.HandleFunc("/programs", handler.HandlePrograms).Methods("GET", "OPTIONS")
	r.HandleFunc("/exercises", handler.HandleExercises).Methods("GET", "OPTIONS")
	r.HandleFunc("/exercises/{id}", handler.HandleExercise).Methods("GET", "OPTIONS")
	r.HandleFunc("/targets/nutrition", handler.HandleNutritionTarget).Methods("GET", "OPTIONS")

	r.HandleFunc("/settings", handler.HandleGetSettings).Methods("GET", "OPTIONS")
	r.HandleFunc("/settings", handler.HandleUpdateSettings).Methods("PUT", "OPTIONS")
	r.HandleFunc("/onboarding", handler.HandleOnboarding).Methods("POST", "OPTIONS")

	r.HandleFunc("/steps", handler.HandleListSteps).Methods("GET", "OPTIONS")
	r.HandleFunc("/steps/{date}", handler.HandleGetSteps).Methods("GET", "OPTIONS")
	r.HandleFunc("/steps/{date}", handler.HandleLogSteps).Methods("PUT", "OPTIONS")
	r.HandleFunc("/body", handler.HandleListBody).Methods("GET", "OPTIONS")
	r.HandleFunc("/body/{date}", handler.HandleGetBody).Methods("GET", "OPTIONS")
	r.HandleFunc("/body/{date}", handler.HandleLogBody).Methods("PUT", "OPTIONS")
	r.HandleFunc("/nutrition/{date}", handler.HandleGetNutrition).Methods("GET", "OPTIONS")
	r.HandleFunc("/nutrition/{date}", handler.HandleLogNutrition).Methods("PUT", "OPTIONS")
	r.HandleFunc("/rows/{date}", handler.HandleGetRows).Methods("GET", "OPTIONS")
	r.HandleFunc("/rows/{date}/{key}", handler.HandleLogRow).Methods("PUT", "OPTIONS")
	r.HandleFunc("/meals/{date}", handler.HandleGetMeals).Methods("GET", "OPTIONS")
	r.HandleFunc("/meals/{date}/{index}", handler.HandleLogMeal).Methods("PUT", "OPTIONS")

	r.HandleFunc("/workouts/{date}", handler.HandleGetWorkout).Methods("GET", "OPTIONS")
	r.HandleFunc("/workouts/{date}/start", handler.HandleStartWorkout).Methods("POST", "OPTIONS")
	r.HandleFunc("/workouts/{date}/finish", handler.HandleFinishWorkout).Methods("POST", "OPTIONS")
	r.HandleFunc("/workouts/{date}/skip", handler.HandleSkipWorkout).Methods("POST", "OPTIONS")
	r.HandleFunc("/workouts/{date}/exercises/{exerciseId}/sets", handler.HandleLogSet).Methods("POST", "OPTIONS")

	r.HandleFunc("/stats/streak", handler.HandleStreak).Methods("GET", "OPTIONS")
	r.HandleFunc("/stats/adherence", handler.HandleAdherence).Methods("GET", "OPTIONS")
	r.HandleFunc("/stats/trends", handler.HandleTrends).Methods("GET", "OPTIONS")
	r.HandleFunc("/reminders", handler.HandleReminders).Methods("GET", "OPTIONS")

	r.HandleFunc("/backup", handler.HandleExport).Methods("GET", "OPTIONS")
	r.HandleFunc("/backup", handler.HandleRestore).Methods("POST", "OPTIONS")

	r.HandleFunc("/events", handler.HandleEvents).Methods("GET")
}
