package models

// Scope de un post: tablón general o espacio concreto.
// "course" se acepta como alias de "class" al crear/listar.
type PostDoc struct {
	PostID    int    `json:"postId" bson:"postId"`
	Scope     string `json:"scope" bson:"scope"` // school | class | club | group | subgroup
	ScopeID   string `json:"scopeId,omitempty" bson:"scopeId,omitempty"`
	Author    string `json:"author" bson:"author"`
	Title     string `json:"title" bson:"title"`
	Content   string `json:"content" bson:"content"`
	ImageURL  string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	CreatedAt string `json:"createdAt" bson:"createdAt"`
}

func ValidPostScope(s string) bool {
	switch s {
	case "school", "class", "club", "group", "subgroup":
		return true
	}
	return false
}
