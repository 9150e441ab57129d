package notifier

import (
	"cryptopulse-dashboard/internal/types"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Interface delivers derived alerts somewhere a human might see them.
type Interface interface {
	SendAlert(alert types.Alert) error
}

// LogNotifier writes alerts to the application log.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (ln *LogNotifier) SendAlert(alert types.Alert) error {
	log.WithFields(log.Fields{
		"alert_id":   alert.ID,
		"asset":      alert.AssetName,
		"alert_type": alert.AlertType,
	}).Info(alert.Message)
	return nil
}

// TelegramNotifier pushes alerts to a single configured chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier falls back to the log notifier when the token is
// missing or the Telegram API rejects it, so alert delivery never blocks
// startup.
func NewTelegramNotifier(token string, chatID int64) Interface {
	if token == "" || chatID == 0 {
		log.Debug("no telegram credentials configured, alerts go to the log")
		return NewLogNotifier()
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Errorf("Failed to create telegram notifier: %v, falling back to log output", err)
		return NewLogNotifier()
	}

	log.Infof("Telegram notifier authorized as %s", bot.Self.UserName)
	return &TelegramNotifier{bot: bot, chatID: chatID}
}

func (tn *TelegramNotifier) SendAlert(alert types.Alert) error {
	text := fmt.Sprintf("🚨 *Price Alert*\n\n%s", alert.Message)

	msg := tgbotapi.NewMessage(tn.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := tn.bot.Send(msg); err != nil {
		return errors.Wrap(err, "send telegram alert")
	}
	return nil
}
