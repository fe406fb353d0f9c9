package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"
	"github.com/SergeyBogomolovv/shipment-tracker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type UserService interface {
	Register(ctx context.Context, reg entities.Registration) (entities.Session, error)
	Login(ctx context.Context, email, password string) (entities.Session, error)
	Profile(ctx context.Context, userID uuid.UUID) (entities.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch entities.ProfilePatch) (entities.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, change entities.PasswordChange) error
}

type UserHandler struct {
	logger   *slog.Logger
	auth     func(http.Handler) http.Handler
	validate *validator.Validate
	users    UserService
}

func NewUserHandler(logger *slog.Logger, auth func(http.Handler) http.Handler, users UserService) *UserHandler {
	return &UserHandler{
		logger:   logger.With(slog.String("handler", "user")),
		auth:     auth,
		validate: validator.New(),
		users:    users,
	}
}

func (h *UserHandler) Init(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/profile", h.Profile)
			r.Put("/profile", h.UpdateProfile)
			r.Put("/password", h.ChangePassword)
		})
	})
}

// Register регистрирует пользователя.
// @Summary      Регистрация
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      RegisterRequest  true  "Имя, email и пароль"
// @Success      201  {object}  AuthResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации или пользователь уже существует"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	session, err := h.users.Register(ctx, entities.Registration{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if errors.Is(err, entities.ErrEmailTaken) {
		utils.WriteError(w, "User already exists", http.StatusBadRequest)
		return
	}
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "register user")
		return
	}

	utils.WriteJSON(w, SessionToJSON(session), http.StatusCreated)
}

// Login выдает токен по email и паролю.
// @Summary      Вход
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Email и пароль"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  utils.ErrorResponse "Неверные учетные данные"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, msgInvalidBody, http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, "Please provide email and password", utils.ValidationFields(err))
		return
	}

	session, err := h.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "login")
		return
	}

	utils.WriteJSON(w, SessionToJSON(session), http.StatusOK)
}

// Profile возвращает профиль текущего пользователя.
// @Summary      Профиль
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  User
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      404  {object}  utils.ErrorResponse "Пользователь не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/profile [get]
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	user, err := h.users.Profile(ctx, userID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "get profile")
		return
	}

	utils.WriteJSON(w, UserEntityToJSON(user), http.StatusOK)
}

// UpdateProfile частично обновляет профиль.
// @Summary      Обновить профиль
// @Description  Пустые поля не меняются. Новый email проверяется на уникальность
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        profile  body      ProfileRequest  true  "Изменяемые поля"
// @Success      200  {object}  User
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации или email занят"
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      404  {object}  utils.ErrorResponse "Пользователь не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/profile [put]
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req ProfileRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	user, err := h.users.UpdateProfile(ctx, userID, entities.ProfilePatch{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Address: req.Address,
	})
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "update profile")
		return
	}

	res := UserEntityToJSON(user)
	res.CreatedAt, res.UpdatedAt = nil, nil
	utils.WriteJSON(w, res, http.StatusOK)
}

// ChangePassword меняет пароль.
// @Summary      Сменить пароль
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        password  body      PasswordRequest  true  "Текущий и новый пароль"
// @Success      200  {object}  utils.MessageResponse
// @Failure      400  {object}  utils.ErrorResponse "Неверный текущий пароль"
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /users/password [put]
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req PasswordRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	err := h.users.ChangePassword(ctx, userID, entities.PasswordChange{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "change password")
		return
	}

	utils.WriteMessage(w, "Password updated successfully", http.StatusOK)
}
