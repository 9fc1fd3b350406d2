package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/evcraddock/rent-finder/internal/auth"
	"github.com/evcraddock/rent-finder/internal/catalog"
	"github.com/evcraddock/rent-finder/internal/listing"
	"github.com/evcraddock/rent-finder/internal/property"
)

// propertyView is a listing as the API returns it.
type propertyView struct {
	property.Property
	PriceLabel string `json:"price_label"`
	Saved      bool   `json:"saved"`
}

type cityView struct {
	Name     property.City `json:"name"`
	Currency string        `json:"currency"`
	Count    int           `json:"count"`
}

// view marks p saved when it is in owner's saved set. Anonymous callers
// have an empty owner and see nothing saved.
func (s *Server) view(owner string, p property.Property) propertyView {
	return propertyView{
		Property:   p,
		PriceLabel: p.PriceLabel(),
		Saved:      owner != "" && s.store.IsSaved(owner, p.ID),
	}
}

func (s *Server) views(owner string, props []property.Property) []propertyView {
	out := make([]propertyView, 0, len(props))
	for _, p := range props {
		out = append(out, s.view(owner, p))
	}
	return out
}

// owner returns the signed-in user's email, or "" for anonymous requests.
func owner(r *http.Request) string {
	email, _ := auth.UserEmailFromContext(r.Context())
	return email
}

func pathID(w http.ResponseWriter, r *http.Request, what string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		apiError(w, "invalid "+what+" ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// apiListCities returns the known cities and any other city with listings.
func (s *Server) apiListCities(w http.ResponseWriter, r *http.Request) {
	cities := append([]property.City{}, property.Cities...)
	for _, c := range s.store.Cities() {
		if !c.IsValid() {
			cities = append(cities, c)
		}
	}

	out := make([]cityView, 0, len(cities))
	for _, c := range cities {
		out = append(out, cityView{
			Name:     c,
			Currency: property.CurrencyCode(c),
			Count:    len(s.store.PropertiesByCity(c)),
		})
	}
	apiJSON(w, out, http.StatusOK)
}

// apiListProperties searches the catalog by city, type and free text.
func (s *Server) apiListProperties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := catalog.Filter{Query: q.Get("q")}

	if c := q.Get("city"); c != "" {
		f.City, _ = property.ParseCity(c)
	}
	if t := q.Get("type"); t != "" && t != catalog.AllTypes {
		typ, ok := property.ParseType(t)
		if !ok {
			apiError(w, "unknown property type: "+t, http.StatusBadRequest)
			return
		}
		f.Type = typ
	}

	apiJSON(w, s.views(owner(r), s.store.Search(f)), http.StatusOK)
}

// apiGetProperty returns one listing.
func (s *Server) apiGetProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "property")
	if !ok {
		return
	}

	p, found := s.store.PropertyByID(id)
	if !found {
		apiError(w, "property not found", http.StatusNotFound)
		return
	}
	apiJSON(w, s.view(owner(r), p), http.StatusOK)
}

// apiFormatCurrency formats an amount for a city.
func (s *Server) apiFormatCurrency(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	apiJSON(w, map[string]string{
		"formatted": property.FormatCurrency(q.Get("amount"), q.Get("city")),
	}, http.StatusOK)
}

// publishRequest is a draft whose price may also be given as display text,
// e.g. "ETB 20,000".
type publishRequest struct {
	property.Draft
	PriceText string `json:"price_text,omitempty"`
}

// apiPublishProperty submits a draft to the upload service and adds it to
// the catalog when accepted.
func (s *Server) apiPublishProperty(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	d := req.Draft
	if d.Price == 0 && req.PriceText != "" {
		// unparseable text leaves the price at zero for validation to reject
		if price, err := property.ParsePrice(req.PriceText); err == nil {
			d.Price = price
		}
	}
	if city, ok := property.ParseCity(string(d.City)); ok {
		d.City = city
	} else {
		apiError(w, "unknown city: "+string(d.City), http.StatusBadRequest)
		return
	}
	if typ, ok := property.ParseType(string(d.Type)); ok {
		d.Type = typ
	} else {
		apiError(w, "unknown property type: "+string(d.Type), http.StatusBadRequest)
		return
	}

	out, err := s.publisher.Publish(r.Context(), d)
	if err != nil {
		var ve *listing.ValidationError
		switch {
		case errors.As(err, &ve):
			apiError(w, ve.Message, http.StatusUnprocessableEntity)
		case errors.Is(err, listing.ErrTransient):
			apiJSON(w, map[string]interface{}{
				"error":     err.Error(),
				"retryable": true,
			}, http.StatusServiceUnavailable)
		default:
			slog.Error("publishing property", "error", err)
			apiError(w, "publishing property failed", http.StatusInternalServerError)
		}
		return
	}

	apiJSON(w, out, http.StatusCreated)
}

// apiToggleSaved flips a listing's saved state for the signed-in user.
func (s *Server) apiToggleSaved(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "property")
	if !ok {
		return
	}
	if _, found := s.store.PropertyByID(id); !found {
		apiError(w, "property not found", http.StatusNotFound)
		return
	}

	saved := s.store.ToggleSaved(owner(r), id)
	apiJSON(w, map[string]interface{}{"id": id, "saved": saved}, http.StatusOK)
}

// apiListSaved returns the signed-in user's saved listings.
func (s *Server) apiListSaved(w http.ResponseWriter, r *http.Request) {
	email := owner(r)
	apiJSON(w, s.views(email, s.store.SavedProperties(email)), http.StatusOK)
}
