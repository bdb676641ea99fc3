package models

// All перечисляет модели для автомиграции; порядок важен для внешних ключей.
func All() []interface{} {
	return []interface{}{&Venue{}, &Artist{}, &Show{}}
}
