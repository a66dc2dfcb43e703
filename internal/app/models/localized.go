package models

// LocalizedText holds the Arabic source text and its English rendering.
// En falls back to Ar when no translation is available.
type LocalizedText struct {
	Ar string `json:"ar" bson:"ar"`
	En string `json:"en" bson:"en"`
}

func NewLocalizedText(ar, en string) LocalizedText {
	if en == "" {
		en = ar
	}
	return LocalizedText{Ar: ar, En: en}
}
