package middleware

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

const accessLogFormat = "[${time}] ${locals:request_id} ${status} - ${latency} ${method} ${path}\n"

// AccessLogger writes one line per request to stdout.
func AccessLogger() fiber.Handler {
	return AccessLoggerWithWriter(os.Stdout)
}

func AccessLoggerWithWriter(w io.Writer) fiber.Handler {
	return logger.New(logger.Config{
		Format:     accessLogFormat,
		TimeFormat: "2006-01-02 15:04:05",
		Output:     w,
	})
}
