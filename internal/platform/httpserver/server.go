package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	intakeservice "clawdrop/contexts/claims/intake-service"
	intakequeries "clawdrop/contexts/claims/intake-service/application/queries"
	intakeerrors "clawdrop/contexts/claims/intake-service/domain/errors"
	intakehttp "clawdrop/contexts/claims/intake-service/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "clawdrop/internal/platform/httpserver/docs"
)

type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
	addr   string
	intake intakeservice.Module
}

func New(intake intakeservice.Module, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
		addr:   addr,
		intake: intake,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.Handler())
}

// Handler returns the routed handler with CORS applied. Exposed so tests
// can drive the server without binding a socket.
func (s *Server) Handler() http.Handler {
	return withCORS(s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/airdrop", s.handleSubmit)
	s.mux.HandleFunc("GET /verify", s.handleVerify)
	s.mux.HandleFunc("GET /api/submissions", s.handleList)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req intakehttp.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeIntakeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	resp, err := s.intake.Handler.SubmitHandler(r.Context(), req)
	if err != nil {
		writeIntakeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	resp, err := s.intake.Handler.VerifyHandler(r.Context(), token)
	if err != nil {
		writeIntakeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	filter, err := intakequeries.ParseFilter(r.URL.Query().Get("filter"))
	if err != nil {
		writeIntakeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.intake.Handler.ListHandler(r.Context(), filter)
	if err != nil {
		writeIntakeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeIntakeDomainError(w http.ResponseWriter, err error) {
	var validation *intakeerrors.ValidationError
	switch {
	case errors.As(err, &validation):
		writeIntakeError(w, http.StatusBadRequest, validation.Error())
	case errors.Is(err, intakeerrors.ErrInvalidToken),
		errors.Is(err, intakeerrors.ErrTokenExpired),
		errors.Is(err, intakeerrors.ErrAlreadyVerified):
		writeIntakeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, intakeerrors.ErrSubmissionNotFound):
		writeIntakeError(w, http.StatusNotFound, err.Error())
	default:
		writeIntakeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeIntakeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, intakehttp.ErrorResponse{
		Success: false,
		Error:   message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
