package telegram

type MessageType int

const (
	MessageTypeUnknown     MessageType = -1
	MessageTypeWelcome     MessageType = 1
	MessageTypeHelp        MessageType = 2
	MessageTypeSubscribe   MessageType = 3
	MessageTypeUnsubscribe MessageType = 4
	MessageTypeNoDigest    MessageType = 5
)

func getMessageFromMessageType(messageType MessageType) string {
	switch messageType {
	case MessageTypeHelp:
		msg := "🤖 *AI News Digest* – справка 📢\n\n"
		msg += "Каждое утро бот присылает дайджест главных новостей об искусственном интеллекте и спот-цену золота.\n\n"
		msg += "📝 *Команды:*\n"
		msg += "✅ `/subscribe` – получать ежедневный дайджест.\n"
		msg += "❌ `/unsubscribe` – отписаться от рассылки.\n"
		msg += "📰 `/digest` – получить последний дайджест прямо сейчас.\n"
		msg += "💡 `/help` – показать эту справку.\n"

		return msg

	case MessageTypeSubscribe:
		msg := "🎉 *Подписка оформлена!* ✅\n\n"
		msg += "Теперь дайджест новостей ИИ будет приходить каждый день. 📰🚀\n\n"
		msg += "Передумаете – команда `/unsubscribe` всегда под рукой.\n"

		return msg

	case MessageTypeUnsubscribe:
		msg := "👋 *Вы отписались* ❌\n\n"
		msg += "Ежедневный дайджест больше не будет приходить. 😔\n\n"
		msg += "Вернуться можно в любой момент командой `/subscribe`. 🚀\n"

		return msg

	case MessageTypeNoDigest:
		msg := "⏳ *Дайджест ещё не собран*\n\n"
		msg += "Первый выпуск появится после ближайшего планового запуска. Загляните позже!\n"

		return msg

	case MessageTypeUnknown:
		msg := "😔 *Не понимаю эту команду*\n\n"
		msg += "Список того, что я умею, – по команде `/help`. 🤖\n"

		return msg

	default:
		msg := "👋 Привет! Я *AI News Digest* 🤖\n\n"
		msg += "Раз в день я собираю главные новости об искусственном интеллекте 📰 и добавляю спот-цену золота 🥇.\n\n"
		msg += "✅ *Хотите получать дайджест?* Отправьте `/subscribe`.\n"
		msg += "📰 *Нужен свежий выпуск сейчас?* Отправьте `/digest`.\n"
		msg += "💬 *Остальные команды* – `/help`.\n"

		return msg
	}
}
