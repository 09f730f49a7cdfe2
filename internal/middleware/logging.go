package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging creates middleware that logs every handled update
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			fields := []zap.Field{
				zap.Int("update_id", c.Update().ID),
			}
			if sender := c.Sender(); sender != nil {
				fields = append(fields,
					zap.Int64("user_id", sender.ID),
					zap.String("username", sender.Username),
				)
			}
			if c.Callback() != nil {
				fields = append(fields, zap.String("kind", "callback"))
			} else if c.Message() != nil {
				fields = append(fields, zap.String("kind", "message"))
			}

			logger.Debug("Update received", fields...)

			if err := next(c); err != nil {
				logger.Error("Handler failed", append(fields, zap.Error(err))...)
				return err
			}
			return nil
		}
	}
}
