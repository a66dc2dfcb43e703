package constvars

const (
	EmailResetPasswordSubject = "Reset your password"

	EmailSendBasicFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailSendHTMLFormat  = "To: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n"

	EmailResetPasswordBodyFormat = "Use the link below to reset your password. The link expires in %d minutes.\r\n\r\n%s"
)
