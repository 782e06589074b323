package pin

const (
	MinLen = 6
	MaxLen = 20

	// DefaultKey - ключ, под которым PIN лежит в хранилище
	DefaultKey = "pin_code"
	// DefaultFallback принимается при проверке, если PIN еще не задан
	DefaultFallback = "123456"
)

// Mode - режим отправки PIN
type Mode string

const (
	ModeVerify Mode = "verify"
	ModeCreate Mode = "create"
)

// Prompt - что должна показать форма поверх приложения
type Prompt string

const (
	PromptNone   Prompt = "none"
	PromptEnter  Prompt = "enter"
	PromptCreate Prompt = "create"
)

// GateState - состояние гейта на время жизни процесса, не сохраняется
type GateState struct {
	Authenticated   bool   `json:"authenticated"`
	PinRecordExists bool   `json:"pin_record_exists"`
	Prompt          Prompt `json:"prompt"`
}

// Locked возвращает true, если приложение закрыто до ввода PIN
func (s GateState) Locked() bool {
	return !s.Authenticated
}
