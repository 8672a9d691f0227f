package quote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"PriceDesk/internal/pricing"
	"PriceDesk/pkg/kit"
)

type Server struct {
	Store   Store
	Catalog *CatalogClient
	Chain   *pricing.Chain
	Metrics *Metrics
	Log     *zap.Logger
}

type createReq struct {
	Items []Item `json:"items"`
}

const (
	maxCreateBody = 1 << 20
	maxQtyPerItem = 10000
)

func (s *Server) CreateHandler() http.HandlerFunc { return s.create }
func (s *Server) GetHandler() http.HandlerFunc    { return s.get }

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	req, err := decodeCreateRequest(w, r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if len(req.Items) == 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "items required", nil)
		return
	}

	cart, subtotalCents, err := s.buildCart(r.Context(), req.Items)
	if err != nil {
		s.writeCreateError(w, r, err)
		return
	}

	rate, err := s.Chain.Rate(cart)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("discount chain rejected cart", zap.Error(err))
		}
		s.writeCreateError(w, r, err)
		return
	}

	discountCents := int64(math.Round(float64(subtotalCents) * rate))

	q := Quote{
		ID:            "q_" + uuid.NewString(),
		UserID:        u.ID,
		Items:         req.Items,
		SubtotalCents: subtotalCents,
		DiscountRate:  rate,
		DiscountCents: discountCents,
		TotalCents:    subtotalCents - discountCents,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.Store.Create(r.Context(), q); err != nil {
		if isTimeoutErr(err) {
			kit.WriteError(w, r, http.StatusGatewayTimeout, "timeout", nil)
			return
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	if s.Metrics != nil {
		s.Metrics.QuotesTotal.Inc()
		s.Metrics.DiscountRate.Observe(rate)
	}

	kit.WriteJSON(w, http.StatusCreated, q)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	id := chi.URLParam(r, "id")
	q, found, err := s.Store.Get(r.Context(), id)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("store get quote failed", zap.Error(err), zap.String("quote_id", id))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	if q.UserID != u.ID {
		kit.WriteError(w, r, http.StatusForbidden, "forbidden", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, q)
}

func decodeCreateRequest(w http.ResponseWriter, r *http.Request) (createReq, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCreateBody)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req createReq
	if err := dec.Decode(&req); err != nil {
		return createReq{}, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return createReq{}, errors.New("extra data after json object")
	}

	return req, nil
}

var (
	errBadItem         = errors.New("bad item")
	errDuplicateItem   = errors.New("duplicate product_id")
	errInvalidProduct  = errors.New("invalid product_id")
	errCatalogDown     = errors.New("catalog unavailable")
	errCatalogUpstream = errors.New("catalog error")
	errTotalOverflow   = errors.New("subtotal overflow")
)

// buildCart resolves each item against the catalog and expands it into
// one pricing product per unit, so the chain's item-count rule sees units
// rather than lines. Returns the cart plus the integer cent subtotal.
func (s *Server) buildCart(ctx context.Context, items []Item) (pricing.Cart, int64, error) {
	seen := make(map[string]struct{}, len(items))

	var cart pricing.Cart
	var subtotal int64

	for _, it := range items {
		pid := strings.TrimSpace(it.ProductID)
		if it.Qty <= 0 || it.Qty > maxQtyPerItem || pid == "" {
			return pricing.Cart{}, 0, errBadItem
		}
		if _, dup := seen[pid]; dup {
			return pricing.Cart{}, 0, errDuplicateItem
		}
		seen[pid] = struct{}{}

		p, err := s.Catalog.GetProduct(ctx, pid)
		if err != nil {
			switch err {
			case ErrCatalogNotFound:
				return pricing.Cart{}, 0, errInvalidProduct
			case ErrCatalogUnavailable:
				return pricing.Cart{}, 0, errCatalogDown
			default:
				if s.Log != nil {
					s.Log.Warn("catalog error", zap.Error(err), zap.String("product_id", pid))
				}
				return pricing.Cart{}, 0, errCatalogUpstream
			}
		}

		line := p.PriceCents * int64(it.Qty)
		if line < 0 || subtotal > math.MaxInt64-line {
			return pricing.Cart{}, 0, errTotalOverflow
		}
		subtotal += line

		for i := 0; i < it.Qty; i++ {
			cart.Add(float64(p.PriceCents))
		}
	}

	return cart, subtotal, nil
}

func (s *Server) writeCreateError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errBadItem):
		kit.WriteError(w, r, http.StatusBadRequest, "bad item", nil)
	case errors.Is(err, errDuplicateItem):
		kit.WriteError(w, r, http.StatusBadRequest, "duplicate product_id", nil)
	case errors.Is(err, errInvalidProduct):
		kit.WriteError(w, r, http.StatusBadRequest, "invalid product_id", nil)
	case errors.Is(err, errCatalogDown):
		kit.WriteError(w, r, http.StatusServiceUnavailable, "catalog unavailable", nil)
	case errors.Is(err, errCatalogUpstream):
		kit.WriteError(w, r, http.StatusBadGateway, "catalog error", nil)
	case errors.Is(err, errTotalOverflow):
		kit.WriteError(w, r, http.StatusBadRequest, "subtotal overflow", nil)
	case errors.Is(err, pricing.ErrInvalidAmount):
		kit.WriteError(w, r, http.StatusBadGateway, "bad catalog price", nil)
	default:
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}

func isTimeoutErr(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
