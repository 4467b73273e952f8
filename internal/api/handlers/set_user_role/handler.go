package set_user_role

import (
	"errors"
	"net/http"

	"github.com/tutorlink/booking-service/internal/api/handlers"
	"github.com/tutorlink/booking-service/internal/api/middleware"
	"github.com/tutorlink/booking-service/internal/domain"
	accountsService "github.com/tutorlink/booking-service/internal/service/accounts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRole        = "некорректная роль"
	msgRoleAlreadySet     = "роль уже выбрана"
	msgProfileRequired    = "для роли тьютора обязательны specialty, experience и credentialUrl"
	msgAccountNotFound    = "аккаунт не найден"
)

type Handler struct {
	service AccountsService
	logger  Logger
}

func NewHandler(service AccountsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/accounts/role
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgAccountNotFound)
		return
	}

	var req SetUserRoleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /accounts/role - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var profile *accountsService.TutorProfile
	if domain.Role(req.Role) == domain.RoleTutor {
		profile = &accountsService.TutorProfile{
			Specialty:     req.Specialty,
			Experience:    req.Experience,
			CredentialURL: req.CredentialURL,
			Description:   req.Description,
		}
	}

	acc, err := h.service.SetRole(r.Context(), userID, domain.Role(req.Role), profile)
	if err != nil {
		switch {
		case errors.Is(err, accountsService.ErrInvalidRole):
			handlers.RespondBadRequest(w, msgInvalidRole)
		case errors.Is(err, accountsService.ErrRoleAlreadySet):
			h.logger.Warn("PATCH /accounts/role - Role already set: account_id=%s", userID)
			handlers.RespondError(w, http.StatusConflict, msgRoleAlreadySet)
		case errors.Is(err, accountsService.ErrProfileRequired):
			handlers.RespondBadRequest(w, msgProfileRequired)
		case errors.Is(err, accountsService.ErrAccountNotFound):
			handlers.RespondNotFound(w, msgAccountNotFound)
		default:
			h.logger.Error("PATCH /accounts/role - Failed to set role: account_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /accounts/role - Role set: account_id=%s, role=%s", userID, acc.Role)
	handlers.RespondJSON(w, http.StatusOK, FromAccount(acc))
}
