package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/matchahub/matcha_hub/pkg/logger"
)

// Announcer posts achievement unlocks to the community Telegram channel.
// It is optional: a nil *Announcer disables announcements, and every send
// is best-effort (failures are logged, never propagated).
type Announcer struct {
	bot       *tgbotapi.BotAPI
	channelID int64
}

func NewAnnouncer(botToken string, channelID int64) (*Announcer, error) {
	if botToken == "" {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telegram bot: %w", err)
	}
	return &Announcer{bot: bot, channelID: channelID}, nil
}

// AnnounceAchievement posts a short unlock message to the channel.
func (a *Announcer) AnnounceAchievement(displayName, achievementTitle string, rewardPoints int64) {
	if a == nil {
		return
	}

	text := fmt.Sprintf("🍵 %s unlocked \"%s\" (+%d points)", displayName, achievementTitle, rewardPoints)
	msg := tgbotapi.NewMessage(a.channelID, text)
	if _, err := a.bot.Send(msg); err != nil {
		logger.Warn("Failed to announce achievement", "achievement", achievementTitle, "error", err)
	}
}
