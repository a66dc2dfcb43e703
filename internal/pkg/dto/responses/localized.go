package responses

type LocalizedText struct {
	Ar string `json:"ar"`
	En string `json:"en"`
}
