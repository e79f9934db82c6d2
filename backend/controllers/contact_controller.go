package controllers

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/gofiber/fiber/v2"

	"portfolio/backend/config"
	"portfolio/backend/utils"
)

type ContactController struct {
	Cfg    *config.Config
	Logger *log.Logger

	// sendMail is swapped out in tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewContactController(cfg *config.Config, logger *log.Logger) *ContactController {
	return &ContactController{Cfg: cfg, Logger: logger, sendMail: smtp.SendMail}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmitContact relays a contact form submission over SMTP.
func (cc *ContactController) SubmitContact(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return utils.BadRequest(c, "name, email and message are required")
	}

	if cc.Cfg.SMTPUser == "" || cc.Cfg.SMTPPass == "" {
		return utils.InternalServerError(c, "SMTP credentials not configured")
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", req.Name)
	body := fmt.Sprintf("New contact form submission from your portfolio:\n\nName: %s\nEmail: %s\nMessage:\n%s\n", req.Name, req.Email, req.Message)

	msg := []byte("To: " + cc.Cfg.ContactEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + cc.Cfg.SMTPUser + "\r\n" +
		"Reply-To: " + req.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", cc.Cfg.SMTPUser, cc.Cfg.SMTPPass, cc.Cfg.SMTPHost)
	addr := cc.Cfg.SMTPHost + ":" + cc.Cfg.SMTPPort

	if err := cc.sendMail(addr, auth, cc.Cfg.SMTPUser, []string{cc.Cfg.ContactEmail}, msg); err != nil {
		cc.Logger.Printf("error sending contact email: %v", err)
		return utils.InternalServerError(c, "failed to send message")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"message": "Thank you for your message! I'll get back to you soon.",
	})
}
