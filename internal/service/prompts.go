package service

import (
	"hrbot/internal/domain"
)

// User-facing texts, kept verbatim from the original bot copy
const (
	textChooseLang    = "Iltimos, tilni tanlang / Пожалуйста, выберите язык:"
	textLangKeyboard  = "Tilni tanlang:"
	textNameUz        = "Ismingizni yozing. Namuna: Hojakbar Ravshanov"
	textNameRu        = "Напишите имя. Пример: Hojakbar Ravshanov"
	textPhone         = "Telefon raqamingizni yuboring."
	textRole          = "👍 Sizga qaysi lavozimda ishlash qulay?"
	textExperience    = "Bu sohаda nechi yillik tajribangiz bor? (raqam yoki matn)"
	textPrevPlace     = "Avval qayerlarda ishlagansiz?"
	textVideo         = "O'zingiz haqida 1 minutlik video xabar yuboring (doira shaklida selfi-video). Maks 60 soniya."
	textVoice         = "Video qabul qilindi. Endi ovozli xabar yuboring (o'zingiz haqida)."
	textBirth         = "Yoshingizni yozing. Namuna: 01.01.2000"
	textCity          = "Doimiy yashash manzilingizni yozing."
	textRussian       = "Rus tilini bilasizmi?"
	textMarriage      = "Yaqin 1 yil ichida uylanmasizmi yoki erga tegmayasmi?"
	textSalary        = "Qancha oylik taklif qilsak ishlagan bo'lar edingiz? Yozib qoldiring."
	textThanks        = "✅ Rahmat! Ma'lumotlaringiz qabul qilindi. Tez orada sizga murojaat qilamiz."
	textFallback      = "Iltimos, /start bilan boshlang yoki kerakli shaklda javob bering."
	textVideoNoteLong = "❌ Video juda uzun. Iltimos, 60s dan qisqaroq doira video yuboring."
	textVideoLong     = "❌ Video juda uzun. Maks 60s."
	textWantVideo     = "❌ Iltimos video yuboring."
	textWantVoice     = "❌ Iltimos ovozli xabar yuboring."
)

// entryPrompt is the message sent when the user enters a step.
// textRU, when set, replaces text for sessions that chose Russian.
type entryPrompt struct {
	text     string
	textRU   string
	keyboard domain.Keyboard
}

var entryPrompts = map[domain.Step]entryPrompt{
	domain.StepName:       {text: textNameUz, textRU: textNameRu},
	domain.StepPhone:      {text: textPhone},
	domain.StepRole:       {text: textRole, keyboard: domain.KeyboardRole},
	domain.StepExperience: {text: textExperience},
	domain.StepPrevPlace:  {text: textPrevPlace},
	domain.StepVideo:      {text: textVideo},
	domain.StepVoice:      {text: textVoice},
	domain.StepBirth:      {text: textBirth},
	domain.StepCity:       {text: textCity},
	domain.StepRussian:    {text: textRussian, keyboard: domain.KeyboardYesNo},
	domain.StepMarriage:   {text: textMarriage, keyboard: domain.KeyboardYesNo},
	domain.StepSalary:     {text: textSalary},
}

// promptFor returns the entry prompt for a step in the session's language
func promptFor(step domain.Step, lang string) domain.Prompt {
	p := entryPrompts[step]
	text := p.text
	if lang == "ru" && p.textRU != "" {
		text = p.textRU
	}
	return domain.Prompt{Text: text, Keyboard: p.keyboard}
}
