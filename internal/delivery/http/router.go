package http

import (
	"net/http"

	"doctor-slot-sync/internal/delivery/http/handler"
	"doctor-slot-sync/internal/delivery/http/middleware"
	"doctor-slot-sync/pkg/jwt"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router         *mux.Router
	log            *logrus.Logger
	doctorHandler  *handler.DoctorHandler
	syncHandler    *handler.SyncHandler
	metricsHandler http.Handler
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(
	log *logrus.Logger,
	doctorHandler *handler.DoctorHandler,
	syncHandler *handler.SyncHandler,
	metricsHandler http.Handler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		log:            log,
		doctorHandler:  doctorHandler,
		syncHandler:    syncHandler,
		metricsHandler: metricsHandler,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Synchronized roster (public, read only)
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id:[0-9]+}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	// Synchronization state (public, read only)
	api.HandleFunc("/sync/status", r.syncHandler.GetStatus).Methods(http.MethodGet)
	api.HandleFunc("/sync/failures", r.syncHandler.GetFailures).Methods(http.MethodGet)

	// Synchronization trigger (operator token with sync:trigger scope)
	trigger := api.PathPrefix("/sync").Subrouter()
	trigger.Use(r.authMiddleware.Authenticate)
	trigger.Use(middleware.RequireScope(jwt.ScopeSyncTrigger))
	trigger.HandleFunc("", r.syncHandler.TriggerSync).Methods(http.MethodPost)

	if r.metricsHandler != nil {
		api.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)
	}

	r.router.Use(middleware.RequestLogger(r.log))
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
