package devstub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/gorilla/schema"

	"github.com/introapp/freshintro/internal/client/models"
	"github.com/introapp/freshintro/internal/common"
	"github.com/introapp/freshintro/internal/logging"
)

// Server is a self-contained stand-in for the Freshers Intro backend, enough
// for developing the editor against: dev login, profile read/write and upload
// presigning against a local MinIO.
type Server struct {
	config  *Config
	store   *Store
	log     logging.Logger
	decoder *schema.Decoder
}

func NewServer(cfg *Config, log logging.Logger) *Server {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return &Server{config: cfg, store: NewStore(), log: log, decoder: decoder}
}

func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/dev-login", s.handleDevLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Get("/profile/get-my-profile", s.handleGetMyProfile)
		r.Post("/profile/create-or-update-profile", s.handleWriteProfile)
		r.Get("/s3/presign", s.handlePresign)
	})

	return r
}

func (s *Server) ListenAndServe() error {
	s.log.Info(context.Background(), "devstub listening", "addr", s.config.Addr)
	return http.ListenAndServe(s.config.Addr, s.Router())
}

type devLoginRequest struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}

// handleDevLogin issues a signed session token for an arbitrary user. There
// is no password: this endpoint exists only in the stub.
func (s *Server) handleDevLogin(w http.ResponseWriter, r *http.Request) {
	var req devLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, map[string]string{"detail": "invalid request body"})
		return
	}
	if req.UserID == 0 {
		req.UserID = 1
	}
	if req.Username == "" {
		req.Username = fmt.Sprintf("student%d", req.UserID)
	}

	token, err := generateToken(req.UserID, req.Username, s.config.JWTSecret, s.config.TokenTTL)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]string{"detail": "token generation failed"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:  common.AccessTokenCookieName,
		Value: token,
		Path:  "/",
	})
	render.JSON(w, r, map[string]string{"access_token": token})
}

func (s *Server) handleGetMyProfile(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	profile, ok := s.store.Get(claims.UserID)
	if !ok {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, map[string]string{"detail": "Profile not found"})
		return
	}
	render.JSON(w, r, profile)
}

func (s *Server) handleWriteProfile(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	var req models.WriteProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, map[string]string{"detail": "invalid request body"})
		return
	}
	if req.Bio == "" {
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, map[string]string{"detail": "bio is required"})
		return
	}

	imageBase := fmt.Sprintf("%s/%s", s.config.S3BaseEndpoint, s.config.S3Bucket)
	profile := s.store.Put(claims.UserID, claims.Username, &req, imageBase)
	render.JSON(w, r, profile)
}

type presignQuery struct {
	Filename string `schema:"filename,required"`
	Type     string `schema:"type"`
}

func (s *Server) handlePresign(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	var q presignQuery
	if err := s.decoder.Decode(&q, r.URL.Query()); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, map[string]string{"detail": "filename is required"})
		return
	}

	key := storageKey(claims.UserID, q.Filename)
	uploadURL, fields, err := s.presignPost(r.Context(), key)
	if err != nil {
		s.log.Error(r.Context(), "presign failed", "error", err)
		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, map[string]string{"detail": "storage unavailable"})
		return
	}

	render.JSON(w, r, models.PresignedUpload{
		UploadURL: uploadURL,
		Fields:    fields,
		Key:       key,
	})
}
