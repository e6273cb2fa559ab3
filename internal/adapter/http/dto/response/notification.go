package response

// Notification is the transient toast shown by the dashboard.
type Notification struct {
	Level   string `json:"tipo"`
	Message string `json:"mensagem"`
}

const (
	LevelSuccess = "sucesso"
	LevelError   = "erro"
	LevelWarning = "aviso"
)

func NewNotification(level, message string) *Notification {
	return &Notification{Level: level, Message: message}
}

// PromptAction is one button of a dismissible confirmation prompt.
type PromptAction struct {
	Label  string `json:"rotulo"`
	Method string `json:"metodo,omitempty"`
	Href   string `json:"href,omitempty"`
}

// ConfirmationPromptResponse asks the user to confirm a destructive action.
// "cancelar" carries no request; the prompt is simply dismissed.
type ConfirmationPromptResponse struct {
	Success bool           `json:"success"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Actions []PromptAction `json:"acoes"`
}
