package controller

import (
	"github.com/LucasRomanSaad/stoicChatBOT/internal/dto"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/pkg/logger"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/pkg/serverutils"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GuideController exposes the conversational endpoints.
type GuideController struct {
	guideService *service.GuideService
	log          logger.ILogger
}

func NewGuideController(guideService *service.GuideService, log logger.ILogger) *GuideController {
	return &GuideController{
		guideService: guideService,
		log:          log,
	}
}

func (c *GuideController) RegisterRoutes(router fiber.Router) {
	router.Post("/chat", c.Chat)
	router.Post("/generate-title", c.GenerateTitle)
}

func (c *GuideController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	resp, err := c.guideService.Chat(ctx.UserContext(), &req)
	if err != nil {
		c.log.Error("GuideController", "Chat request failed", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Answer generated", resp))
}

func (c *GuideController) GenerateTitle(ctx *fiber.Ctx) error {
	var req dto.TitleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	resp, err := c.guideService.GenerateTitle(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Title generated", resp))
}
