package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel_server/internal/app"
	"hotel_server/internal/domain"
)

type Handlers struct {
	Bookings  *app.BookingService
	Directory *app.DirectoryService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Hotel booking server. Ask for /bookings, etc."))
	})
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/bookings", h.listBookings)
	s.mux.Get("/bookings/search", h.searchBookings)
	s.mux.Get("/bookings/{id}", h.getBooking)
	s.mux.Post("/bookings", h.createBooking)
	s.mux.Delete("/bookings/{id}", h.deleteBooking)

	s.mux.Get("/customers", h.listCustomers)
	s.mux.Get("/customers/{id}", h.getCustomer)
	s.mux.Get("/customers/{id}/bookings", h.customerBookings)
	s.mux.Put("/customers/{id}", h.updateCustomerEmail)
	s.mux.Delete("/customers/{id}", h.deleteCustomer)

	s.mux.Get("/hotels", h.listHotels)
	s.mux.Get("/hotels/{id}", h.getHotel)
	s.mux.Post("/hotels", h.createHotel)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps domain error kinds to their user-visible statuses.
// Anything unrecognized is a storage or programming fault and surfaces as a
// generic 500 instead of being swallowed.
func writeError(w http.ResponseWriter, err error) {
	var lookupNF *domain.LookupNotFoundError
	var deleteNF *domain.DeleteNotFoundError
	switch {
	case errors.As(err, &lookupNF):
		writeProblem(w, http.StatusBadRequest, "Not Found", err.Error())
	case errors.As(err, &deleteNF):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrMissingQuery):
		writeProblem(w, http.StatusNotFound, "Missing Query Parameter", err.Error())
	case errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidDateOrder),
		errors.Is(err, domain.ErrMissingEmail),
		errors.Is(err, domain.ErrInvalidRoomCount),
		errors.Is(err, domain.ErrDuplicateHotel):
		writeProblem(w, http.StatusBadRequest, "Invalid Request", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "unexpected error")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// ---- bookings ----

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	out, err := h.Bookings.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, out)
}

func (h *Handlers) searchBookings(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")
	date := r.URL.Query().Get("date")
	out, err := h.Bookings.Search(r.Context(), term, date)
	if err != nil {
		writeError(w, err)
		return
	}
	// An empty date search is still a success, just with an explanation.
	if term == "" && len(out) == 0 {
		writeJSON(w, r, map[string]string{"message": "no bookings on this date"})
		return
	}
	writeJSON(w, r, out)
}

func (h *Handlers) getBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	b, err := h.Bookings.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, b)
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var in domain.Booking
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be a JSON booking")
		return
	}
	_, msg, err := h.Bookings.Admit(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeText(w, http.StatusCreated, msg)
}

func (h *Handlers) deleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	msg, err := h.Bookings.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeText(w, http.StatusOK, msg)
}

// ---- customers ----

func (h *Handlers) listCustomers(w http.ResponseWriter, r *http.Request) {
	out, err := h.Directory.ListCustomers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, out)
}

func (h *Handlers) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	c, err := h.Directory.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, c)
}

func (h *Handlers) customerBookings(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	out, err := h.Directory.CustomerBookings(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, out)
}

func (h *Handlers) updateCustomerEmail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	var in struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be JSON with an email field")
		return
	}
	if err := h.Directory.UpdateCustomerEmail(r.Context(), id, in.Email); err != nil {
		writeError(w, err)
		return
	}
	writeText(w, http.StatusOK, "Customer #"+strconv.FormatInt(id, 10)+" email updated")
}

func (h *Handlers) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	if err := h.Directory.DeleteCustomer(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeText(w, http.StatusOK, "Customer #"+strconv.FormatInt(id, 10)+" deleted")
}

// ---- hotels ----

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	out, err := h.Directory.ListHotels(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, out)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	hot, err := h.Directory.GetHotel(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, hot)
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var in domain.Hotel
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be a JSON hotel")
		return
	}
	created, err := h.Directory.CreateHotel(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeText(w, http.StatusCreated, "Hotel #"+strconv.FormatInt(created.ID, 10)+" created")
}
