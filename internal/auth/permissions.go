package auth

import "jobhub_backend/internal/models"

// Чистые предикаты авторизации над парой (актор, ресурс).
// Отказ всегда терминальный 403 на уровне сервиса, тихой фильтрации нет.

// IsAdmin проверяет является ли пользователь администратором
func IsAdmin(user *models.User) bool {
	return user != nil && user.Role == models.UserRoleAdmin
}

// CanManageResource - владелец ресурса или админ
func CanManageResource(actor *models.User, ownerID string) bool {
	if actor == nil {
		return false
	}
	return IsAdmin(actor) || actor.ID == ownerID
}

// IsOwner - строго владелец, без админского обхода.
// Используется для откликов: их правит только сам откликнувшийся.
func IsOwner(actor *models.User, ownerID string) bool {
	return actor != nil && actor.ID == ownerID
}
