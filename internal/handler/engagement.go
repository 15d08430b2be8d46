package handler

import (
	"net/http"

	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/dangerclosesec/adoptionhub/internal/serializer"
	"github.com/dangerclosesec/adoptionhub/internal/service"
)

type DirectoryHandler struct {
	base
	directory *service.DirectoryService
}

func NewDirectoryHandler(directory *service.DirectoryService, opts Options) *DirectoryHandler {
	return &DirectoryHandler{base: newBase(opts), directory: directory}
}

// Me handles GET /me.
func (h *DirectoryHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	profile, err := h.directory.Profile(r.Context(), identity.EmployeeID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.NewProfile(profile))
}

type CatalogHandler struct {
	base
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService, opts Options) *CatalogHandler {
	return &CatalogHandler{base: newBase(opts), catalog: catalog}
}

// Catalog handles GET /tools/catalog.
func (h *CatalogHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	tools, err := h.catalog.Catalog(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.NewTools(tools))
}

// Categories handles GET /tools/categories.
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.Categories{Categories: categories})
}

// LogAccess handles POST /tools/{id}/access.
func (h *CatalogHandler) LogAccess(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	toolID, err := idParam(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.catalog.LogAccess(r.Context(), identity.EmployeeID, toolID, h.now()); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.Status{Status: "logged"})
}

type LearningHandler struct {
	base
	learning *service.LearningService
}

func NewLearningHandler(learning *service.LearningService, opts Options) *LearningHandler {
	return &LearningHandler{base: newBase(opts), learning: learning}
}

// Resources handles GET /learning/resources.
func (h *LearningHandler) Resources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.learning.Resources(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.NewResources(resources))
}

// Progress handles GET /learning/progress.
func (h *LearningHandler) Progress(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	progress, err := h.learning.Progress(r.Context(), identity.EmployeeID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.NewProgressList(progress))
}

// UpdateProgress handles POST /learning/{id}/progress.
func (h *LearningHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	resourceID, err := idParam(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var input service.ProgressInput
	if err := decode(r, &input); err != nil {
		h.handleError(w, r, err)
		return
	}
	defer r.Body.Close()

	if _, err := h.learning.UpdateProgress(r.Context(), identity.EmployeeID, resourceID, h.now(), input); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.Status{Status: "updated"})
}

type GamificationHandler struct {
	base
	gamification *service.GamificationService
}

func NewGamificationHandler(gamification *service.GamificationService, opts Options) *GamificationHandler {
	return &GamificationHandler{base: newBase(opts), gamification: gamification}
}

// Badges handles GET /badges.
func (h *GamificationHandler) Badges(w http.ResponseWriter, r *http.Request) {
	badges, err := h.gamification.Badges(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.NewBadges(badges))
}

// Leaderboard handles GET /leaderboard?limit=N.
func (h *GamificationHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, err := positiveQuery(r, "limit")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	rows, err := h.gamification.Leaderboard(r.Context(), limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.NewLeaderboard(rows))
}

// Points handles GET /points.
func (h *GamificationHandler) Points(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	points, err := h.gamification.Points(r.Context(), identity.EmployeeID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.NewPoints(points))
}

// Challenges handles GET /challenges.
func (h *GamificationHandler) Challenges(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	statuses, err := h.gamification.Challenges(r.Context(), identity.EmployeeID, domain.PeriodOf(h.now()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.NewChallenges(statuses))
}

type NotificationHandler struct {
	base
	notifications *service.NotificationService
}

func NewNotificationHandler(notifications *service.NotificationService, opts Options) *NotificationHandler {
	return &NotificationHandler{base: newBase(opts), notifications: notifications}
}

// List handles GET /notifications.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	list, err := h.notifications.List(r.Context(), identity.EmployeeID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.NewNotifications(list))
}

// MarkRead handles POST /notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.notifications.MarkRead(r.Context(), identity.EmployeeID, id, h.now()); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, http.StatusOK, serializer.Status{Status: "marked"})
}

