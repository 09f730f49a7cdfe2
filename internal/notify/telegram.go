package notify

import (
	tele "gopkg.in/telebot.v3"
)

// TelegramNotifier sends admin notifications to a fixed Telegram chat
type TelegramNotifier struct {
	bot  *tele.Bot
	chat tele.ChatID
}

// NewTelegramNotifier creates a notifier for the given chat id
func NewTelegramNotifier(bot *tele.Bot, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{
		bot:  bot,
		chat: tele.ChatID(chatID),
	}
}

// SendText sends a plain text message to the admin chat
func (n *TelegramNotifier) SendText(text string) error {
	_, err := n.bot.Send(n.chat, text)
	return err
}

// SendVideo forwards an uploaded video by its file id
func (n *TelegramNotifier) SendVideo(fileID string) error {
	video := &tele.Video{File: tele.File{FileID: fileID}}
	_, err := n.bot.Send(n.chat, video)
	return err
}

// SendVoice forwards an uploaded voice message by its file id
func (n *TelegramNotifier) SendVoice(fileID string) error {
	voice := &tele.Voice{File: tele.File{FileID: fileID}}
	_, err := n.bot.Send(n.chat, voice)
	return err
}
