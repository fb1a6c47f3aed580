package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/internal/service/user"
	"github.com/werdnakof/ask-parents-25-questions/pkg/ctxutil"
)

const tierWriteTimeout = 5 * time.Second

type userService interface {
	Me(ctx context.Context) (*domain.User, error)
	Tier(ctx context.Context) (domain.TierState, error)
	UpdateMe(ctx context.Context, input user.UpdateMeInput) (*domain.User, error)
}

type tierSubscriber interface {
	Subscribe(ctx context.Context, userID uuid.UUID) (<-chan domain.TierState, func(), error)
}

// MeHandler serves the signed-in user's account and tier.
type MeHandler struct {
	users          userService
	tiers          tierSubscriber
	originPatterns []string
	log            *slog.Logger
}

// NewMeHandler creates a MeHandler. originPatterns are the hosts allowed to
// open the tier stream from a browser.
func NewMeHandler(users userService, tiers tierSubscriber, originPatterns []string, logger *slog.Logger) *MeHandler {
	return &MeHandler{
		users:          users,
		tiers:          tiers,
		originPatterns: originPatterns,
		log:            logger.With("handler", "me"),
	}
}

type updateMeRequest struct {
	DisplayName     *string `json:"displayName"`
	PreferredLocale *string `json:"preferredLocale"`
}

// Get handles GET /v1/me.
func (h *MeHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.Me(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Update handles PATCH /v1/me.
func (h *MeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateMeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.users.UpdateMe(r.Context(), user.UpdateMeInput{
		DisplayName:     req.DisplayName,
		PreferredLocale: req.PreferredLocale,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Tier handles GET /v1/me/tier.
func (h *MeHandler) Tier(w http.ResponseWriter, r *http.Request) {
	t, err := h.users.Tier(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTierResponse(t))
}

// TierStream handles GET /v1/me/tier/stream. It upgrades to a websocket and
// pushes the current tier followed by every change until either side
// closes.
func (h *MeHandler) TierStream(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	states, cancel, err := h.tiers.Subscribe(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	defer cancel()

	// Server read and write timeouts would otherwise end the stream.
	rc := http.NewResponseController(w)
	_ = rc.SetReadDeadline(time.Time{})
	_ = rc.SetWriteDeadline(time.Time{})

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: h.originPatterns})
	if err != nil {
		// Accept has already written the error response.
		h.log.WarnContext(r.Context(), "tier stream upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.CloseNow() //nolint:errcheck

	// The client never sends anything; CloseRead handles its close frame.
	ctx := conn.CloseRead(r.Context())

	for {
		select {
		case <-ctx.Done():
			return
		case st, ok := <-states:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "server shutting down") //nolint:errcheck
				return
			}
			if err := h.writeTier(ctx, conn, st); err != nil {
				h.log.DebugContext(ctx, "tier stream write failed",
					slog.String("user_id", userID.String()),
					slog.String("error", err.Error()),
				)
				return
			}
		}
	}
}

func (h *MeHandler) writeTier(ctx context.Context, conn *websocket.Conn, st domain.TierState) error {
	ctx, cancel := context.WithTimeout(ctx, tierWriteTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, toTierResponse(st))
}
