package utils

import (
	"bytes"
	"html/template"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// LeaveDecisionData feeds the decision email template.
type LeaveDecisionData struct {
	EmployeeName string
	LeaveType    string
	StartDate    string
	EndDate      string
	TotalDays    float64
	Status       string
	ApproverName string
	Comment      string
}

// AccrualDigestData feeds the daily accrual digest template.
type AccrualDigestData struct {
	EmployeeName string
	Lines        []AccrualDigestLine
}

type AccrualDigestLine struct {
	LeaveType string
	Earned    float64
	Remaining float64
}

// SendLeaveDecisionEmail notifies the employee of an approval/rejection.
// Sent async so the handler response is not delayed.
func SendLeaveDecisionEmail(to string, data LeaveDecisionData) {
	go sendTemplate(to, "Leave request "+data.Status, "templates/leave_decision.html", data)
}

// SendAccrualDigestEmail sends the daily balance digest.
func SendAccrualDigestEmail(to string, data AccrualDigestData) error {
	return sendTemplateSync(to, "Your leave balance update", "templates/accrual_digest.html", data)
}

func sendTemplate(to, subject, tmplPath string, data any) {
	if err := sendTemplateSync(to, subject, tmplPath, data); err != nil {
		log.Errorf("send mail to %s failed: %v", to, err)
	}
}

func sendTemplateSync(to, subject, tmplPath string, data any) error {
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		return err
	}
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return err
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD"))
	return d.DialAndSend(m)
}
