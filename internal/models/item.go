package models

// Item es la unidad de recomendación: un club, evento o grupo
// normalizado al esquema común del corpus. Todos los campos de texto
// se rellenan con "" si faltan en la fuente, nunca quedan sin setear.
type Item struct {
	ID          int    `json:"id" bson:"clubId"`
	Name        string `json:"name" bson:"name"`
	Category    string `json:"category" bson:"category"`
	Contact     string `json:"contact" bson:"contact"`
	Description string `json:"description" bson:"description"`
}

// Soup es el texto que se vectoriza por ítem (no se expone por API).
func (it Item) Soup() string {
	return it.Name + " " + it.Category + " " + it.Description
}

// Profile es el perfil que manda el cliente a /recommend.
// Todos los campos son opcionales; vacío solo degrada el match.
type Profile struct {
	Year      string   `json:"year"`
	Classes   []string `json:"classes"`
	Interests string   `json:"interests"`
}

// RecItem es un ítem recomendado con su score de similitud (2 decimales).
type RecItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Contact     string  `json:"contact"`
	Description string  `json:"description"`
	MatchScore  float64 `json:"match_score"`
}
