package auth

import (
	"fmt"
	"net/smtp"
	"os"

	"dzairbox/config"
)

func sendMail(to, subject, body string) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")

	auth := smtp.PlainAuth("", from, password, host)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	return smtp.SendMail(host+":"+port, auth, from, []string{to}, message)
}

func SendVerificationEmail(to string, token string) error {
	link := fmt.Sprintf("%s/verify?token=%s", config.API_URL, token)
	body := fmt.Sprintf("Cliquez sur le lien suivant pour vérifier votre compte DzairBox :\n\n%s", link)
	return sendMail(to, "Vérifiez votre compte DzairBox", body)
}

func SendPasswordResetEmail(to string, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", config.APP_URL, token)
	body := fmt.Sprintf("Pour réinitialiser votre mot de passe DzairBox, suivez ce lien (valable 1 heure) :\n\n%s", link)
	return sendMail(to, "Réinitialisation de votre mot de passe", body)
}
