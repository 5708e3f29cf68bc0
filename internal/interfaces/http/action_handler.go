package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-lite/internal/application/analytics"
	"github.com/jhoicas/inventario-lite/internal/application/auth"
	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/application/inventory"
	"github.com/jhoicas/inventario-lite/internal/domain"
)

// ActionHandler despacha el protocolo de acciones: una request por acción con
// payload plano {action, ...campos} y respuesta {success, message, ...extras}.
type ActionHandler struct {
	authUC *auth.AuthUseCase
	invUC  *inventory.InventoryUseCase
	dashUC *analytics.DashboardUseCase
	log    zerolog.Logger
}

// NewActionHandler construye el dispatcher.
func NewActionHandler(authUC *auth.AuthUseCase, invUC *inventory.InventoryUseCase, dashUC *analytics.DashboardUseCase, log zerolog.Logger) *ActionHandler {
	return &ActionHandler{authUC: authUC, invUC: invUC, dashUC: dashUC, log: log}
}

// Dispatch godoc
// @Summary      Despachar una acción
// @Description  Protocolo de una llamada por acción. Acciones públicas: signup, login, send_otp, reset_password, logout. El resto exige Bearer Token.
// @Tags         actions
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "action + payload plano"
// @Success      200   {object}  dto.Result
// @Router       /api/action [post]
func (h *ActionHandler) Dispatch(c *fiber.Ctx) error {
	var base struct {
		Action string `json:"action"`
	}
	// Body ilegible se trata igual que acción vacía: Unknown action
	_ = c.BodyParser(&base)

	// Acciones públicas (estado No autenticado del dispatcher)
	switch base.Action {
	case "signup":
		return h.signup(c)
	case "login":
		return h.login(c)
	case "send_otp":
		return h.sendOTP(c)
	case "reset_password":
		return h.resetPassword(c)
	case "logout":
		// Sin sesión de servidor: el cliente descarta su token.
		return c.JSON(dto.OK("Logged out"))
	}

	// Acciones protegidas: la identidad se resolvió una vez en el middleware
	// y se pasa explícita a cada caso de uso como actor.
	actor := GetEmail(c)
	switch base.Action {
	case "create_product", "list_products", "create_receipt", "create_delivery",
		"create_transfer", "create_adjustment", "get_history", "get_dashboard":
		if actor == "" {
			return c.JSON(dto.Fail("Not authenticated"))
		}
	default:
		return c.JSON(dto.Fail("Unknown action"))
	}

	switch base.Action {
	case "create_product":
		return h.createProduct(c, actor)
	case "list_products":
		return h.listProducts(c)
	case "create_receipt":
		return h.createReceipt(c, actor)
	case "create_delivery":
		return h.createDelivery(c, actor)
	case "create_transfer":
		return h.createTransfer(c, actor)
	case "create_adjustment":
		return h.createAdjustment(c, actor)
	case "get_history":
		return h.getHistory(c)
	default: // get_dashboard
		return h.getDashboard(c)
	}
}

// ── Auth ─────────────────────────────────────────────────────────────────────

func (h *ActionHandler) signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.JSON(dto.Fail("Provide email & password"))
	}
	if _, err := h.authUC.Signup(in); err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return c.JSON(dto.Fail("Provide email & password"))
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.JSON(dto.Fail("Email exists"))
		default:
			return h.internalError(c, "signup", err)
		}
	}
	return c.JSON(dto.OK("Account created"))
}

func (h *ActionHandler) login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.JSON(dto.Fail("Invalid credentials"))
	}
	out, err := h.authUC.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(dto.Fail("Invalid credentials"))
		}
		return h.internalError(c, "login", err)
	}
	return c.JSON(dto.LoginResponse{
		Result: dto.OK("Logged in"),
		User:   out.User,
		Token:  out.Token,
	})
}

func (h *ActionHandler) sendOTP(c *fiber.Ctx) error {
	var in dto.SendOTPRequest
	if err := c.BodyParser(&in); err != nil {
		return c.JSON(dto.Fail("Provide email"))
	}
	code, err := h.authUC.RequestReset(in.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return c.JSON(dto.Fail("Provide email"))
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(dto.Fail("User not found"))
		default:
			return h.internalError(c, "send_otp", err)
		}
	}
	return c.JSON(dto.OTPResponse{Result: dto.OK("OTP sent (demo)"), OTP: code})
}

func (h *ActionHandler) resetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.JSON(dto.Fail("Missing fields"))
	}
	if err := h.authUC.ResetPassword(in); err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return c.JSON(dto.Fail("Missing fields"))
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(dto.Fail("User not found"))
		case errors.Is(err, domain.ErrInvalidOTP):
			return c.JSON(dto.Fail("Invalid or expired OTP"))
		default:
			return h.internalError(c, "reset_password", err)
		}
	}
	return c.JSON(dto.OK("Password reset"))
}

// ── Catálogo ─────────────────────────────────────────────────────────────────

func (h *ActionHandler) createProduct(c *fiber.Ctx, actor string) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.JSON(dto.Fail("Name & SKU required"))
	}
	if in.Name == "" || in.SKU == "" {
		return c.JSON(dto.Fail("Name & SKU required"))
	}
	created, err := h.invUC.UpsertProduct(actor, in)
	if err != nil {
		return h.internalError(c, "create_product", err)
	}
	if created {
		return c.JSON(dto.OK("Product created"))
	}
	return c.JSON(dto.OK("Product updated"))
}

func (h *ActionHandler) listProducts(c *fiber.Ctx) error {
	var in dto.ListProductsRequest
	_ = c.BodyParser(&in)
	data, err := h.invUC.SearchProducts(in.Q)
	if err != nil {
		return h.internalError(c, "list_products", err)
	}
	return c.JSON(dto.ProductListResponse{Result: dto.OK("ok"), Data: data})
}

// ── Operaciones de stock ─────────────────────────────────────────────────────

func (h *ActionHandler) createReceipt(c *fiber.Ctx, actor string) error {
	var in dto.CreateReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.JSON(dto.Fail("No lines"))
	}
	if len(in.Lines) == 0 {
		return c.JSON(dto.Fail("No lines"))
	}
	if err := h.invUC.CreateReceipt(actor, in); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(dto.Fail("Invalid lines"))
		}
		return h.internalError(c, "create_receipt", err)
	}
	return c.JSON(dto.OK("Receipt created"))
}

func (h *ActionHandler) createDelivery(c *fiber.Ctx, actor string) error {
	var in dto.CreateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.JSON(dto.Fail("No lines"))
	}
	if len(in.Lines) == 0 {
		return c.JSON(dto.Fail("No lines"))
	}
	if err := h.invUC.CreateDelivery(actor, in); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(dto.Fail("Invalid lines"))
		}
		return h.internalError(c, "create_delivery", err)
	}
	return c.JSON(dto.OK("Delivery created"))
}

func (h *ActionHandler) createTransfer(c *fiber.Ctx, actor string) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.JSON(dto.Fail("Missing fields"))
	}
	if in.SKU == "" || in.From == "" || in.To == "" || in.Qty <= 0 {
		return c.JSON(dto.Fail("Missing fields"))
	}
	if err := h.invUC.CreateTransfer(actor, in); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(dto.Fail("Missing fields"))
		}
		return h.internalError(c, "create_transfer", err)
	}
	return c.JSON(dto.OK("Transfer logged"))
}

func (h *ActionHandler) createAdjustment(c *fiber.Ctx, actor string) error {
	var in dto.CreateAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.JSON(dto.Fail("SKU needed"))
	}
	if in.SKU == "" {
		return c.JSON(dto.Fail("SKU needed"))
	}
	if err := h.invUC.CreateAdjustment(actor, in); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(dto.Fail("SKU needed"))
		}
		return h.internalError(c, "create_adjustment", err)
	}
	return c.JSON(dto.OK("Stock adjusted"))
}

// ── Reportes ─────────────────────────────────────────────────────────────────

func (h *ActionHandler) getHistory(c *fiber.Ctx) error {
	data, err := h.dashUC.History()
	if err != nil {
		return h.internalError(c, "get_history", err)
	}
	return c.JSON(dto.HistoryResponse{Result: dto.OK("ok"), Data: data})
}

func (h *ActionHandler) getDashboard(c *fiber.Ctx) error {
	summary, err := h.dashUC.Summary()
	if err != nil {
		return h.internalError(c, "get_dashboard", err)
	}
	return c.JSON(dto.DashboardResponse{Result: dto.OK("ok"), DashboardSummary: *summary})
}

// internalError loguea el error real y responde un fallo genérico; el detalle
// (rutas de archivos incluidas) no debe llegar al cliente.
func (h *ActionHandler) internalError(c *fiber.Ctx, action string, err error) error {
	h.log.Error().Err(err).Str("action", action).Msg("acción fallida")
	return c.JSON(dto.Fail("Internal error"))
}
