package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// PasswordResetTemplate - имя шаблона письма с кодом сброса пароля
const PasswordResetTemplate = "password_reset"

const passwordResetHTML = `<html>
<body>
  <h2>Password reset</h2>
  <p>Your one-time code:</p>
  <p style="font-size:24px;font-weight:bold;letter-spacing:4px;">{{.Code}}</p>
  <p>The code expires in {{.TTLMinutes}} minutes. If you did not request a reset, ignore this email.</p>
</body>
</html>`

// TemplateManager реализует TemplateRenderer для управления шаблонами email
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager создает менеджер с предзагруженными встроенными шаблонами
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	// Встроенный шаблон всегда валиден, ошибку можно игнорировать
	_ = tm.AddTemplate(PasswordResetTemplate, passwordResetHTML)
	return tm
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// AddTemplate добавляет шаблон в менеджер
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}
