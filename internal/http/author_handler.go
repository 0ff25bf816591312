package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"catalogapi/internal/entity"
	"catalogapi/internal/usecase"
)

type AuthorHandler struct {
	repo usecase.AuthorRepository
}

func NewAuthorHandler(repo usecase.AuthorRepository) *AuthorHandler {
	return &AuthorHandler{repo: repo}
}

type authorCreateRequest struct {
	Name      string       `json:"name" validate:"required,max=255"`
	BirthDate *entity.Date `json:"birth_date"`
	Country   string       `json:"country" validate:"max=100"`
}

// authorUpdateRequest validates only the supplied fields; nil means the
// field was omitted and keeps its prior value. BirthDate is raw JSON so
// an explicit null (clears the date) stays distinguishable from an
// omitted field.
type authorUpdateRequest struct {
	Name      *string         `json:"name" validate:"omitempty,min=1,max=255"`
	BirthDate json.RawMessage `json:"birth_date"`
	Country   *string         `json:"country" validate:"omitempty,max=100"`
}

// parseNullableDate reads a raw birth_date value. set is false when the
// field was absent from the body.
func parseNullableDate(raw json.RawMessage) (d *entity.Date, set bool, err error) {
	if len(raw) == 0 {
		return nil, false, nil
	}
	if string(raw) == "null" {
		return nil, true, nil
	}
	var v entity.Date
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, true, err
	}
	return &v, true, nil
}

func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, ok := parsePage(q.Get("page"))
	if !ok {
		writeInvalidPage(w)
		return
	}

	params := usecase.ListParams{
		Search:   q.Get("search"),
		Ordering: q.Get("ordering"),
		Limit:    PageSize,
		Offset:   (page - 1) * PageSize,
	}

	authors, total, err := h.repo.List(r.Context(), params)
	if err != nil {
		writeServerError(w, r, err)
		return
	}
	if page > maxPage(total) {
		writeInvalidPage(w)
		return
	}
	if authors == nil {
		authors = []entity.Author{}
	}
	writeJSON(w, http.StatusOK, paginate(r, total, page, authors))
}

func (h *AuthorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		writeNotFound(w)
		return
	}

	author, err := h.repo.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			writeNotFound(w)
		default:
			writeServerError(w, r, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, author)
}

func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req authorCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONParseError(w)
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		writeFieldErrors(w, errs)
		return
	}

	author := entity.Author{
		Name:      req.Name,
		BirthDate: req.BirthDate,
		Country:   req.Country,
	}
	if err := h.repo.Create(r.Context(), &author); err != nil {
		writeServerError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, author)
}

// Update handles both PUT and PATCH. Fields absent from the body keep
// their stored values either way; PUT additionally requires the
// required fields to be present. An explicit birth_date null clears it.
func (h *AuthorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		writeNotFound(w)
		return
	}

	author, err := h.repo.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			writeNotFound(w)
		default:
			writeServerError(w, r, err)
		}
		return
	}

	var req authorUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONParseError(w)
		return
	}

	errs := ValidateStruct(req)
	if r.Method == http.MethodPut && req.Name == nil {
		if errs == nil {
			errs = FieldErrors{}
		}
		errs.Add("name", "This field is required.")
	}
	birthDate, birthDateSet, err := parseNullableDate(req.BirthDate)
	if err != nil {
		if errs == nil {
			errs = FieldErrors{}
		}
		errs.Add("birth_date", "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")
	}
	if errs != nil {
		writeFieldErrors(w, errs)
		return
	}

	if req.Name != nil {
		author.Name = *req.Name
	}
	if birthDateSet {
		author.BirthDate = birthDate
	}
	if req.Country != nil {
		author.Country = *req.Country
	}

	if err := h.repo.Update(r.Context(), &author); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			writeNotFound(w)
		default:
			writeServerError(w, r, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, author)
}

func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		writeNotFound(w)
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			writeNotFound(w)
		default:
			writeServerError(w, r, err)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
