package constvars

const (
	RegexEmail        = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexTimeHHMM     = `^([0-1][0-9]|2[0-3]):[0-5][0-9]$`
	RegexDateYYYYMMDD = `^\d{4}-\d{2}-\d{2}$`
	RegexNumeric      = `^\d+$`
)
