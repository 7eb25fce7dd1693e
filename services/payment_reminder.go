// services/payment_reminder.go
package services

import (
	"fmt"
	"os"

	"autoshop-backend/models"
	"autoshop-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// PaymentReminderService sends SMS reminders for closed car services that
// still have an outstanding balance.
type PaymentReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

func NewPaymentReminderService(db *gorm.DB) *PaymentReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &PaymentReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

// StartScheduler runs the reminder pass every day at 9 AM.
func (s *PaymentReminderService) StartScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 9 * * *", s.SendPaymentReminders); err != nil {
		logrus.WithError(err).Error("Failed to schedule payment reminders")
		return
	}

	c.Start()
	logrus.Info("Payment reminder scheduler started")
}

// SendPaymentReminders finds every closed car service whose payments do not
// cover the total and texts the owner the outstanding amount.
func (s *PaymentReminderService) SendPaymentReminders() {
	logrus.Info("Starting payment reminder processing...")

	var carServices []models.CarService
	if err := s.db.Where("car_out_date_time IS NOT NULL").Find(&carServices).Error; err != nil {
		logrus.WithError(err).Error("Failed to fetch car services")
		return
	}

	sent := 0
	for _, cs := range carServices {
		settlement := cs.Settlement()
		if settlement.IsSettled {
			continue
		}
		if !utils.ValidatePhone(cs.PhoneNo) {
			logrus.WithField("carPlate", cs.CarPlate).Warn("Skipping reminder, invalid phone number")
			continue
		}

		body := fmt.Sprintf(
			"Hi %s, your service for %s has an outstanding balance of $%s. Please arrange payment. Thank you!",
			cs.OwnerName, cs.CarPlate, settlement.Outstanding.StringFixed(2),
		)
		if err := s.sendSMS(cs.PhoneNo, body); err != nil {
			logrus.WithError(err).WithField("carPlate", cs.CarPlate).Error("Failed to send reminder")
			continue
		}
		sent++
	}

	logrus.WithField("sent", sent).Info("Payment reminder processing complete")
}

func (s *PaymentReminderService) sendSMS(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	_, err := s.client.Api.CreateMessage(params)
	return err
}
