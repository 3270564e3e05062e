package assistant

import "github.com/SakethSripada/DesktopDev/internal/assistant"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func toMessages(history []Message) []assistant.Message {
	messages := make([]assistant.Message, len(history))
	for i, m := range history {
		messages[i] = assistant.Message{Role: assistant.Role(m.Role), Content: m.Content}
	}
	return messages
}

// GenerateRequest asks for a completion of prompt, of the history, or both.
type GenerateRequest struct {
	Prompt              string    `json:"prompt"`
	ConversationHistory []Message `json:"conversationHistory"`
}

// ContinueRequest asks the model to extend its last answer.
type ContinueRequest struct {
	ConversationHistory []Message `json:"conversationHistory"`
}

type GenerateResponse struct {
	Response    string `json:"response"`
	IsContinued bool   `json:"isContinued"`
}

type ListFilesRequest struct {
	Path string `json:"path"`
}

type ListFilesResponse struct {
	Files []string `json:"files"`
}

type ReadFileRequest struct {
	ProjectPath string `json:"projectPath"`
	FilePath    string `json:"filePath"`
}

type ReadFileResponse struct {
	Content string `json:"content"`
}

type InsertCodeRequest struct {
	Path     string `json:"path"`
	FileName string `json:"fileName"`
	Code     string `json:"code"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
