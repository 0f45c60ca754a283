package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// internalError logs the cause and answers with a generic 500.
func (handler *Handler) internalError(c *fiber.Ctx, message string, err error) error {
	fields := []zap.Field{
		zap.String("path", utils.CopyString(c.Path())),
		zap.Error(err),
	}
	if userID, ok := currentUserID(c); ok {
		fields = append(fields, zap.Uint("user_id", userID))
	}
	handler.logger.Error(message, fields...)
	return apiError(c, fiber.StatusInternalServerError, message)
}

// ownedBody is a request body that may name its owner. Older clients still
// send userId; when present it must match the token user.
type ownedBody interface {
	bodyUserID() uint
}

// bindOwnedBody parses the body and returns the token user. A non-zero status
// means the request was rejected with the returned message.
func bindOwnedBody(c *fiber.Ctx, body ownedBody) (uint, int, string) {
	if err := c.BodyParser(body); err != nil {
		return 0, fiber.StatusBadRequest, "invalid request body"
	}

	userID, _ := currentUserID(c)
	if owner := body.bodyUserID(); owner != 0 && owner != userID {
		return 0, fiber.StatusForbidden, "access denied"
	}
	return userID, 0, ""
}
