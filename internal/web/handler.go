package web

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"github.com/sophearak/movievault/internal/movies"
	"github.com/sophearak/movievault/internal/tmdb"
)

// MovieStore is the slice of the record store the handlers use.
type MovieStore interface {
	EnsureSchema(ctx context.Context) error
	ListByRatingDesc(ctx context.Context) ([]movies.Movie, error)
	GetByID(ctx context.Context, id uint) (movies.Movie, error)
	Insert(ctx context.Context, m *movies.Movie) error
	UpdateRatingAndReview(ctx context.Context, id uint, rating float64, review string) error
	Delete(ctx context.Context, id uint) error
}

// MetadataClient is the slice of the external metadata client the handlers use.
type MetadataClient interface {
	Search(ctx context.Context, title string) ([]tmdb.Candidate, error)
	GetDetails(ctx context.Context, externalID int) (tmdb.Details, error)
}

// CandidateCache holds a session's search results between /add and /select.
type CandidateCache interface {
	SetCandidates(ctx context.Context, sessionID string, candidates []tmdb.Candidate) error
	GetCandidates(ctx context.Context, sessionID string) ([]tmdb.Candidate, error)
}

type Handler struct {
	store MovieStore
	meta  MetadataClient
	cache CandidateCache
}

func NewHandler(store MovieStore, meta MetadataClient, cache CandidateCache) *Handler {
	return &Handler{store: store, meta: meta, cache: cache}
}

// Home lists the collection ordered by rating descending.
func (h *Handler) Home(c *gin.Context) {
	list, err := h.store.ListByRatingDesc(c.Request.Context())
	if err != nil {
		errorPage(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"movies": list})
}

// AddForm renders the search form.
func (h *Handler) AddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add.html", gin.H{})
}

// SearchMovies queries the metadata service for the submitted title and
// stashes the candidates in the session cache. An empty title is rejected
// before any external call is made.
func (h *Handler) SearchMovies(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		c.HTML(http.StatusBadRequest, "add.html", gin.H{"error": "movie title is required"})
		return
	}

	candidates, err := h.meta.Search(c.Request.Context(), title)
	if err != nil {
		errorPage(c, http.StatusBadGateway, err.Error())
		return
	}

	sessionID := h.sessionID(c)
	if err := h.cache.SetCandidates(c.Request.Context(), sessionID, candidates); err != nil {
		errorPage(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/select")
}

// SelectList renders the candidates from the last search. A session with no
// stored candidates gets an empty list.
func (h *Handler) SelectList(c *gin.Context) {
	sessionID, _ := c.Cookie(sessionCookie)
	candidates, err := h.cache.GetCandidates(c.Request.Context(), sessionID)
	if err != nil {
		errorPage(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.HTML(http.StatusOK, "select.html", gin.H{"candidates": candidates})
}

// MovieDetails fetches the full record for the chosen candidate, inserts it
// with zeroed rating/ranking and an empty review, then redirects to the edit
// form for the new entry. A duplicate title surfaces as a conflict page.
func (h *Handler) MovieDetails(c *gin.Context) {
	externalID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorPage(c, http.StatusBadRequest, "invalid id")
		return
	}

	details, err := h.meta.GetDetails(c.Request.Context(), externalID)
	if err != nil {
		errorPage(c, http.StatusBadGateway, err.Error())
		return
	}

	movie := movies.Movie{
		Title:       details.Title,
		Slug:        slug.Make(details.Title),
		Year:        details.Year,
		Description: details.Description,
		ImgURL:      details.ImgURL,
		Rating:      0,
		Ranking:     0,
		Review:      "",
	}
	if err := h.store.Insert(c.Request.Context(), &movie); err != nil {
		if errors.Is(err, movies.ErrConflict) {
			errorPage(c, http.StatusConflict, details.Title+" is already in your collection")
			return
		}
		errorPage(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/edit/"+strconv.FormatUint(uint64(movie.ID), 10))
}

// EditForm renders the rating/review form for an existing entry.
func (h *Handler) EditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	movie, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, movies.ErrNotFound) {
			errorPage(c, http.StatusNotFound, "movie not found")
			return
		}
		errorPage(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.HTML(http.StatusOK, "edit.html", gin.H{"movie": movie})
}

// EditSubmit updates rating and review. The rating must parse as a finite
// number; no range is enforced.
func (h *Handler) EditSubmit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rating, err := strconv.ParseFloat(c.PostForm("rating"), 64)
	if err != nil || math.IsNaN(rating) || math.IsInf(rating, 0) {
		errorPage(c, http.StatusBadRequest, "rating must be a number")
		return
	}
	review := c.PostForm("review")

	if err := h.store.UpdateRatingAndReview(c.Request.Context(), id, rating, review); err != nil {
		if errors.Is(err, movies.ErrNotFound) {
			errorPage(c, http.StatusNotFound, "movie not found")
			return
		}
		errorPage(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// DeleteMovie removes an entry. Deleting an unknown id is a visible 404,
// never a silent success.
func (h *Handler) DeleteMovie(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, movies.ErrNotFound) {
			errorPage(c, http.StatusNotFound, "movie not found")
			return
		}
		errorPage(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// CreateDB initializes the schema. Safe to call repeatedly.
func (h *Handler) CreateDB(c *gin.Context) {
	if err := h.store.EnsureSchema(c.Request.Context()); err != nil {
		errorPage(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.String(http.StatusOK, "Database created successfully!")
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		errorPage(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func errorPage(c *gin.Context, status int, msg string) {
	c.HTML(status, "error.html", gin.H{"error": msg})
}
