package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/lawrencedcodes/pathways/internal/assessment"
	"github.com/lawrencedcodes/pathways/internal/catalog"
	"github.com/lawrencedcodes/pathways/internal/events"
	"github.com/lawrencedcodes/pathways/internal/plan"
	"github.com/lawrencedcodes/pathways/internal/platform/cache"
	"github.com/lawrencedcodes/pathways/internal/platform/database"
	"github.com/lawrencedcodes/pathways/internal/realtime"
	"github.com/lawrencedcodes/pathways/internal/recommend"
	"github.com/lawrencedcodes/pathways/internal/report"
)

// app bundles the service dependencies behind the HTTP handlers.
type app struct {
	catalog   *catalog.Catalog
	engine    *recommend.Engine
	generator *plan.Generator
	careers   []recommend.Career

	recs   recommend.Store
	plans  plan.Store
	events events.EventLogger
	hub    *realtime.Hub

	db       *database.DB // nil when running on in-memory stores
	cache    *cache.Cache // nil when the recommendation cache is disabled
	cacheTTL time.Duration
}

// careersFromCatalog derives the career list from the attribute catalog.
// IDs are positional over the sorted titles and stable for a given catalog.
func careersFromCatalog(cat *catalog.Catalog) []recommend.Career {
	titles := cat.Titles()
	careers := make([]recommend.Career, 0, len(titles))
	for i, title := range titles {
		careers = append(careers, recommend.Career{ID: int64(i + 1), Title: title})
	}
	return careers
}

func (a *app) careerByID(id int64) (recommend.Career, bool) {
	for _, c := range a.careers {
		if c.ID == id {
			return c, true
		}
	}
	return recommend.Career{}, false
}

// newMux creates the HTTP router.
func (a *app) newMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", a.handleHealthz)
	mux.HandleFunc("GET /readyz", a.handleReadyz)

	mux.HandleFunc("GET /api/careers", a.handleListCareers)

	mux.HandleFunc("POST /api/users/{userID}/recommendations", a.handleGenerateRecommendations)
	mux.HandleFunc("GET /api/users/{userID}/recommendations", a.handleListRecommendations)
	mux.HandleFunc("POST /api/users/{userID}/skill-match", a.handleSkillMatch)

	mux.HandleFunc("POST /api/users/{userID}/plans", a.handleGeneratePlan)
	mux.HandleFunc("GET /api/users/{userID}/plans", a.handleListPlans)
	mux.HandleFunc("GET /api/plans/{planID}", a.handleGetPlan)
	mux.HandleFunc("POST /api/plans/{planID}/tasks/{taskID}/complete", a.handleCompleteTask)

	mux.HandleFunc("GET /api/users/{userID}/report.xlsx", a.handleReport)
	mux.HandleFunc("GET /api/users/{userID}/updates", a.handleUpdates)

	return mux
}

func (a *app) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *app) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if a.db != nil {
		if err := a.db.HealthCheck(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "database unavailable"})
			return
		}
	}
	if a.cache != nil {
		if err := a.cache.HealthCheck(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "cache unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (a *app) handleListCareers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.careers)
}

type generateRecommendationsRequest struct {
	Answers []assessment.AnswerRecord `json:"answers"`
}

func (a *app) handleGenerateRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	var req generateRecommendationsRequest
	if !readJSON(w, r, &req) {
		return
	}

	recs := a.engine.Recommend(userID, req.Answers, a.careers)

	stored, err := a.recs.ReplaceForUser(userID, recs)
	if err != nil {
		serverError(w, "store recommendations", err)
		return
	}

	a.invalidateRecommendations(r, userID)
	a.logEvent(events.Event{
		UserID:    userID,
		EventType: events.TypeRecommendationsGenerated,
		Data:      map[string]any{"count": len(stored)},
	})
	a.hub.Publish(userID, realtime.Message{
		Type: realtime.TypeRecommendationsUpdated,
		Data: map[string]any{"count": len(stored)},
	})

	writeJSON(w, http.StatusOK, stored)
}

func (a *app) handleListRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	key := recommendationsKey(userID)
	if a.cache != nil {
		var cached []recommend.Recommendation
		err := a.cache.GetJSON(r.Context(), key, &cached)
		if err == nil {
			writeJSON(w, http.StatusOK, cached)
			return
		}
		if !errors.Is(err, cache.ErrMiss) {
			slog.Warn("recommendation cache read failed", "error", err, "user_id", userID)
		}
	}

	recs, err := a.recs.ListForUser(userID)
	if err != nil {
		serverError(w, "list recommendations", err)
		return
	}

	if a.cache != nil {
		if err := a.cache.SetJSON(r.Context(), key, recs, a.cacheTTL); err != nil {
			slog.Warn("recommendation cache write failed", "error", err, "user_id", userID)
		}
	}
	writeJSON(w, http.StatusOK, recs)
}

type skillMatchRequest struct {
	CareerTitle string                `json:"career_title"`
	Skills      []recommend.UserSkill `json:"skills"`
}

func (a *app) handleSkillMatch(w http.ResponseWriter, r *http.Request) {
	if _, ok := pathID(w, r, "userID"); !ok {
		return
	}

	var req skillMatchRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.CareerTitle == "" {
		http.Error(w, "career_title is required", http.StatusBadRequest)
		return
	}

	attrs := a.catalog.AttributesFor(req.CareerTitle)
	score := recommend.SkillMatch(req.Skills, attrs)

	writeJSON(w, http.StatusOK, map[string]any{
		"career_title": req.CareerTitle,
		"skill_match":  score,
	})
}

type generatePlanRequest struct {
	CareerID    int64  `json:"career_id"`
	CareerTitle string `json:"career_title"`
}

func (a *app) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	var req generatePlanRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.CareerTitle == "" {
		career, found := a.careerByID(req.CareerID)
		if !found {
			http.Error(w, "unknown career_id", http.StatusBadRequest)
			return
		}
		req.CareerTitle = career.Title
	}

	generated := a.generator.Generate(userID, req.CareerID, req.CareerTitle)
	created, err := a.plans.CreatePlan(generated)
	if err != nil {
		serverError(w, "create plan", err)
		return
	}

	a.logEvent(events.Event{
		UserID:    userID,
		EventType: events.TypePlanGenerated,
		Data:      map[string]any{"plan_id": created.ID, "career_title": created.CareerTitle},
	})

	writeJSON(w, http.StatusCreated, created)
}

func (a *app) handleListPlans(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	plans, err := a.plans.ListForUser(userID)
	if err != nil {
		serverError(w, "list plans", err)
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

func (a *app) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	planID, ok := pathID(w, r, "planID")
	if !ok {
		return
	}

	p, err := a.plans.GetPlan(planID)
	if err != nil {
		if errors.Is(err, plan.ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		serverError(w, "get plan", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a *app) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	planID, ok := pathID(w, r, "planID")
	if !ok {
		return
	}
	taskID, ok := pathID(w, r, "taskID")
	if !ok {
		return
	}

	p, err := a.plans.CompleteTask(planID, taskID)
	if err != nil {
		switch {
		case errors.Is(err, plan.ErrPlanNotFound):
			http.Error(w, "plan not found", http.StatusNotFound)
		case errors.Is(err, plan.ErrTaskNotFound):
			http.Error(w, "task not found", http.StatusNotFound)
		default:
			serverError(w, "complete task", err)
		}
		return
	}

	a.logEvent(events.Event{
		UserID:    p.UserID,
		EventType: events.TypePlanProgress,
		Data:      map[string]any{"plan_id": p.ID, "progress": p.ProgressPercentage},
	})
	a.hub.Publish(p.UserID, realtime.Message{
		Type: realtime.TypePlanProgress,
		Data: map[string]any{"plan_id": p.ID, "progress": p.ProgressPercentage},
	})

	writeJSON(w, http.StatusOK, p)
}

func (a *app) handleReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	recs, err := a.recs.ListForUser(userID)
	if err != nil {
		serverError(w, "list recommendations", err)
		return
	}
	plans, err := a.plans.ListForUser(userID)
	if err != nil {
		serverError(w, "list plans", err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="pathways-user-%d.xlsx"`, userID))
	if err := report.WriteWorkbook(w, recs, plans); err != nil {
		slog.Error("report export failed", "error", err, "user_id", userID)
	}
}

func (a *app) handleUpdates(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}

	if err := a.hub.Subscribe(r.Context(), w, r, userID); err != nil {
		slog.Debug("realtime subscriber closed", "error", err, "user_id", userID)
	}
}

func recommendationsKey(userID int64) string {
	return fmt.Sprintf("recs:user:%d", userID)
}

func (a *app) invalidateRecommendations(r *http.Request, userID int64) {
	if a.cache == nil {
		return
	}
	if err := a.cache.Delete(r.Context(), recommendationsKey(userID)); err != nil {
		slog.Warn("recommendation cache invalidation failed", "error", err, "user_id", userID)
	}
}

func (a *app) logEvent(event events.Event) {
	if err := a.events.LogEvent(event); err != nil {
		slog.Warn("event logging failed", "error", err, "type", event.EventType)
	}
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, fmt.Sprintf("invalid %s", name), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func readJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encoding failed", "error", err)
	}
}

func serverError(w http.ResponseWriter, op string, err error) {
	slog.Error(op+" failed", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
