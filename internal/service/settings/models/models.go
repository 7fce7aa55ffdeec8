package models

// UpdateSettingRequest запрос на изменение настройки
type UpdateSettingRequest struct {
	Value string `json:"value" validate:"required"`
}

// SettingResponse ответ с настройкой
type SettingResponse struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	IsDefault bool   `json:"isDefault"` // значение не сохранено, используется значение по умолчанию
}
