package domain

import "time"

// EmailTypeVerify identifica registros de verificação de e-mail.
const EmailTypeVerify = "VERIFY"

// EmailVerification registra um token de verificação emitido e o instante do envio.
// Existe no máximo um registro ativo por (UserID, EmailType).
type EmailVerification struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	EmailType    string    `db:"email_type"`
	AuthToken    string    `db:"auth_token"`
	SentDate     time.Time `db:"sent_date"`
	EmailCreated time.Time `db:"email_created"`
	EmailUpdated time.Time `db:"email_updated"`
}

// ExpiresAt retorna o último instante em que o token ainda é aceito.
func (v EmailVerification) ExpiresAt(expiry time.Duration) time.Time {
	return v.SentDate.Add(expiry)
}

// VerifyEmailEvent é publicado no broker para que o consumidor envie o e-mail.
type VerifyEmailEvent struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	AuthToken string `json:"auth_token"`
}
