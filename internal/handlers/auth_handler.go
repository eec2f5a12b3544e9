package handlers

import (
	"log"

	"estatedesk-backend/internal/auth"
	"estatedesk-backend/internal/models"
	"estatedesk-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
)

type AuthHandler struct {
	users     repo.UserRepoInterface
	authority *auth.Authority
	google    *oauth2.Config
}

func NewAuthHandler(users repo.UserRepoInterface, authority *auth.Authority) *AuthHandler {
	return &AuthHandler{
		users:     users,
		authority: authority,
		google:    auth.GoogleOAuthConfig(),
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var dto struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if dto.Email == "" || dto.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}

	existing, err := h.users.GetUserByEmail(dto.Email)
	if err != nil {
		log.Println(err, "Error looking up user")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to register",
		})
	}
	if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Email already registered",
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Println(err, "Error hashing password")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to register",
		})
	}

	role := models.UserRole(dto.Role)
	if role != models.UserRoleBroker && role != models.UserRoleAdmin {
		role = models.UserRoleDeveloper
	}

	user := &models.User{
		Name:         dto.Name,
		Email:        dto.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := h.users.CreateUser(user); err != nil {
		log.Println(err, "Error creating user")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to register",
		})
	}

	if err := h.startSession(c, user.UUID); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user": user,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var dto struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user, err := h.users.GetUserByEmail(dto.Email)
	if err != nil {
		log.Println(err, "Error looking up user")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to log in",
		})
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	if err := h.startSession(c, user.UUID); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": user,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authority.Destroy(c.Cookies(auth.CookieName)); err != nil {
		log.Println(err, "Error destroying session")
	}
	c.ClearCookie(auth.CookieName)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged out",
	})
}

// GoogleLogin redirects the browser to Google's consent screen. The state
// value is checked on the way back.
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	state := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     "oauth_state",
		Value:    state,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})
	return c.Redirect(h.google.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
}

func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	if c.Query("state") == "" || c.Query("state") != c.Cookies("oauth_state") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid OAuth state",
		})
	}
	c.ClearCookie("oauth_state")

	info, err := auth.ExchangeGoogleCode(c.Context(), h.google, c.Query("code"))
	if err != nil {
		log.Println(err, "Error exchanging Google code")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Google sign-in failed",
		})
	}

	user, err := h.users.GetUserByEmail(info.Email)
	if err != nil {
		log.Println(err, "Error looking up user")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Google sign-in failed",
		})
	}
	if user == nil {
		user = &models.User{
			Name:  info.Name,
			Email: info.Email,
			Image: info.Picture,
			Role:  models.UserRoleDeveloper,
		}
		if err := h.users.CreateUser(user); err != nil {
			log.Println(err, "Error creating user")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Google sign-in failed",
			})
		}
	}

	if err := h.startSession(c, user.UUID); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": user,
	})
}

func (h *AuthHandler) startSession(c *fiber.Ctx, userID uuid.UUID) error {
	session, err := h.authority.IssueSession(userID)
	if err != nil {
		log.Println(err, "Error issuing session")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create session",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    session.Token,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
	})
	return nil
}
