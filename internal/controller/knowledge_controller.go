package controller

import (
	"github.com/LucasRomanSaad/stoicChatBOT/internal/pkg/logger"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/pkg/serverutils"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/service"

	"github.com/gofiber/fiber/v2"
)

// KnowledgeController manages the knowledge base lifecycle: ingestion,
// stats, and cleanup.
type KnowledgeController struct {
	ingestionService *service.IngestionService
	retrievalService *service.RetrievalService
	log              logger.ILogger
}

func NewKnowledgeController(ingestionService *service.IngestionService, retrievalService *service.RetrievalService, log logger.ILogger) *KnowledgeController {
	return &KnowledgeController{
		ingestionService: ingestionService,
		retrievalService: retrievalService,
		log:              log,
	}
}

func (c *KnowledgeController) RegisterRoutes(router fiber.Router) {
	router.Post("/ingest", c.Ingest)
	router.Get("/stats", c.Stats)
	router.Post("/cleanup", c.Cleanup)
}

func (c *KnowledgeController) Ingest(ctx *fiber.Ctx) error {
	resp, err := c.ingestionService.Ingest(ctx.UserContext())
	if err != nil {
		c.log.Error("KnowledgeController", "Ingestion failed", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Ingestion completed", resp))
}

func (c *KnowledgeController) Stats(ctx *fiber.Ctx) error {
	resp, err := c.retrievalService.Stats(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Knowledge base stats", resp))
}

func (c *KnowledgeController) Cleanup(ctx *fiber.Ctx) error {
	resp, err := c.ingestionService.Cleanup(ctx.UserContext())
	if err != nil {
		c.log.Error("KnowledgeController", "Cleanup failed", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Cleanup completed", resp))
}
