package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// CurrentUserKey - ключ, по которому middleware кладет *models.User в gin.Context
const CurrentUserKey = string(contextKey("current_user"))
